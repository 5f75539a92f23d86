package fasta

import (
	"errors"
	"io"
	"testing"

	"github.com/simonhull/seqio/internal/registry"
	"github.com/simonhull/seqio/internal/types"
)

type record struct {
	header string
	seq    string
}

// extractAll feeds input to a fresh extractor step bytes at a time, the way
// the reader refills its buffer, and collects every record.
func extractAll(t *testing.T, input string, step int) ([]record, error) {
	t.Helper()

	e := &extractor{}
	src := []byte(input)
	var buf []byte
	var out []record

	for range 10 * (len(input) + 2) {
		eof := len(src) == 0
		rec, n, err := e.Extract(buf, eof)
		switch {
		case errors.Is(err, types.ErrNeedMore):
			if eof {
				t.Fatal("ErrNeedMore returned at end of stream")
			}
			k := min(step, len(src))
			buf = append(buf, src[:k]...)
			src = src[k:]
			continue
		case err == io.EOF:
			return out, nil
		case err != nil:
			return out, err
		}
		if n <= 0 {
			t.Fatalf("record consumed %d bytes", n)
		}
		out = append(out, record{header: string(rec.Header), seq: string(rec.Seq)})
		buf = buf[n:]
	}
	t.Fatal("extractor did not terminate")
	return nil, nil
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []record
	}{
		{
			name:  "two records",
			input: ">test\nAGCT\n>test2\nGATC\n",
			want:  []record{{"test", "AGCT"}, {"test2", "GATC"}},
		},
		{
			name:  "wrapped sequence",
			input: ">test\nAGCT\nTCG\n>test2\nG",
			want:  []record{{"test", "AGCTTCG"}, {"test2", "G"}},
		},
		{
			name:  "crlf terminators",
			input: ">test\r\nAGCT\r\nTCG\r\n>test2\r\nG",
			want:  []record{{"test", "AGCTTCG"}, {"test2", "G"}},
		},
		{
			name:  "empty records",
			input: ">\n\n>shine\nAGGAGGU",
			want:  []record{{"", ""}, {"shine", "AGGAGGU"}},
		},
		{
			name:  "header followed by header",
			input: ">a\n>b\nAC\n",
			want:  []record{{"a", ""}, {"b", "AC"}},
		},
		{
			name:  "blank lines inside record",
			input: ">a desc\nAC\n\n\r\nGT\n\n>b\nTT\n",
			want:  []record{{"a desc", "ACGT"}, {"b", "TT"}},
		},
		{
			name:  "leading blank lines",
			input: "\n\r\n>a\nAC\n",
			want:  []record{{"a", "AC"}},
		},
		{
			name:  "header without terminator at end",
			input: ">a\nACGT\n>b",
			want:  []record{{"a", "ACGT"}, {"b", ""}},
		},
		{
			name:  "trailing blank lines",
			input: ">a\nACGT\n\n\n",
			want:  []record{{"a", "ACGT"}},
		},
		{
			name:  "at sign inside sequence",
			input: ">a\n@ACGT\n+\n",
			want:  []record{{"a", "@ACGT+"}},
		},
	}

	for _, tt := range tests {
		for _, step := range []int{1, 2, 3, 7, 1 << 20} {
			got, err := extractAll(t, tt.input, step)
			if err != nil {
				t.Fatalf("%s (step %d): unexpected error: %v", tt.name, step, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("%s (step %d): got %d records %v, want %d", tt.name, step, len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("%s (step %d): record %d = %+v, want %+v", tt.name, step, i, got[i], tt.want[i])
				}
			}
		}
	}
}

func TestExtract_InvalidHeader(t *testing.T) {
	_, err := extractAll(t, "ACGT\n>a\nAC\n", 4)
	if !errors.Is(err, types.ErrInvalidHeaderLine) {
		t.Fatalf("error = %v, want ErrInvalidHeaderLine", err)
	}
	var pe *types.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %T is not a *ParseError", err)
	}
	if pe.Offset != 0 {
		t.Errorf("Offset = %d, want 0", pe.Offset)
	}
}

func TestExtract_EmptyWindowAtEOF(t *testing.T) {
	e := &extractor{}
	_, n, err := e.Extract(nil, true)
	if err != io.EOF {
		t.Errorf("error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}
}

func TestExtract_FieldsAreCapped(t *testing.T) {
	e := &extractor{}
	buf := []byte(">a\nAC\nGT\n>b\nTT\n")
	rec, n, err := e.Extract(buf, true)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[n:]) != ">b\nTT\n" {
		t.Errorf("remaining window = %q", buf[n:])
	}

	// Appending to a field must not overwrite the next record.
	_ = append(rec.Seq, "XXXX"...)
	if string(buf[n:]) != ">b\nTT\n" {
		t.Errorf("append to Seq clobbered the window: %q", buf[n:])
	}
}

func TestRegistered(t *testing.T) {
	if registry.Get(types.FormatFASTA) == nil {
		t.Fatal("no extractor registered for FASTA")
	}
}
