package seqio

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"fasta", ">seq1\nACGT\n", FormatFASTA},
		{"fastq", "@read1\nACGT\n+\nIIII\n", FormatFASTQ},
		{"leading newlines", "\n\r\n>seq1\n", FormatFASTA},
		{"header only", "@", FormatFASTQ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := DetectFormat([]byte(tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if format != tt.want {
				t.Errorf("expected %v, got %v", tt.want, format)
			}
		})
	}
}

func TestDetectFormat_Empty(t *testing.T) {
	for _, data := range []string{"", "\n\n", "\r\n"} {
		_, err := DetectFormat([]byte(data))
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("DetectFormat(%q) error = %v, want ErrEmptyInput", data, err)
		}
	}
}

func TestDetectFormat_Unrecognized(t *testing.T) {
	_, err := DetectFormat([]byte("\nACGT"))
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Offset != 1 {
		t.Errorf("Offset = %d, want 1", pe.Offset)
	}
	if pe.Reason != `first byte 'A' is neither '>' nor '@'` {
		t.Errorf("Reason = %q", pe.Reason)
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatFASTA, "FASTA"},
		{FormatFASTQ, "FASTQ"},
		{FormatUnknown, "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
