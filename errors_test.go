package seqio

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name: "inside a record",
			err: &ParseError{
				Path:   "reads.fq",
				Kind:   KindQualityLengthMismatch,
				Record: 3,
				Offset: 120,
				Reason: "expected 4 quality values, found 3",
			},
			contains: []string{"reads.fq", "record 3", "offset 120", "quality length mismatch", "found 3"},
		},
		{
			name: "before the first record",
			err: &ParseError{
				Kind:   KindUnrecognizedFormat,
				Reason: "first byte 'A' is neither '>' nor '@'",
			},
			contains: []string{"stream", "offset 0", "unrecognized format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestParseError_Is(t *testing.T) {
	kinds := map[ErrorKind]error{
		KindEmptyInput:            ErrEmptyInput,
		KindUnrecognizedFormat:    ErrUnrecognizedFormat,
		KindTruncatedRecord:       ErrTruncatedRecord,
		KindInvalidHeaderLine:     ErrInvalidHeaderLine,
		KindInvalidSeparatorLine:  ErrInvalidSeparatorLine,
		KindQualityLengthMismatch: ErrQualityLengthMismatch,
	}

	for kind, sentinel := range kinds {
		err := error(&ParseError{Kind: kind})
		if !errors.Is(err, sentinel) {
			t.Errorf("%v: errors.Is(err, %v) = false", kind, sentinel)
		}
		for other, s := range kinds {
			if other != kind && errors.Is(err, s) {
				t.Errorf("%v also matches %v", kind, s)
			}
		}
	}
}

func TestReadError(t *testing.T) {
	err := error(&ReadError{Path: "x.fa", Offset: 42, Err: io.ErrUnexpectedEOF})

	if !errors.Is(err, ErrSourceRead) {
		t.Error("ReadError should match ErrSourceRead")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("ReadError should unwrap to the source error")
	}
	if errors.Is(err, ErrTruncatedRecord) {
		t.Error("ReadError should not match ErrTruncatedRecord")
	}

	msg := err.Error()
	for _, substr := range []string{"x.fa", "42 bytes", "unexpected EOF"} {
		if !strings.Contains(msg, substr) {
			t.Errorf("error message %q should contain %q", msg, substr)
		}
	}
}

func TestUnsupportedWriteError_Error(t *testing.T) {
	err := &UnsupportedWriteError{Format: FormatFASTQ, Reason: "record has no quality line"}

	msg := err.Error()
	if !strings.Contains(msg, "FASTQ") {
		t.Errorf("error should contain format, got: %s", msg)
	}
	if !strings.Contains(msg, "no quality line") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
}
