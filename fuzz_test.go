package seqio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/simonhull/seqio"
)

var fuzzSeeds = []string{
	">a\nACGT\n",
	">a desc\r\nAC\r\nGT\r\n>b\n",
	">\n\n>b",
	"@r1\nACGT\n+\nIIII\n",
	"@r1\nAC\n+\nII\n@r2\n\n+\n\n",
	"@r1\nACGT\n+\nIII\n",
	"@r1\nACGT\n+\n",
	"\n\n\n",
	"ACGT",
}

// FuzzReader checks that any input either parses or fails with a known
// error, independent of how reads are split, and that FASTQ records keep
// their sequence and quality lengths equal.
func FuzzReader(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		whole, wholeErr := collect(bytes.NewReader(data))
		split, splitErr := collect(iotest.OneByteReader(bytes.NewReader(data)))

		if len(whole) != len(split) {
			t.Fatalf("record count differs: %d vs %d", len(whole), len(split))
		}
		for i := range whole {
			if whole[i] != split[i] {
				t.Fatalf("record %d differs: %+v vs %+v", i, whole[i], split[i])
			}
		}
		if (wholeErr == nil) != (splitErr == nil) {
			t.Fatalf("errors differ: %v vs %v", wholeErr, splitErr)
		}
		if wholeErr != nil && wholeErr.Error() != splitErr.Error() {
			t.Fatalf("errors differ: %v vs %v", wholeErr, splitErr)
		}

		if wholeErr != nil && !knownError(wholeErr) {
			t.Fatalf("unexpected error type: %v", wholeErr)
		}
	})
}

func collect(src io.Reader) ([]testRecord, error) {
	r, err := seqio.NewReader(src, seqio.WithChunkSize(3))
	if err != nil {
		return nil, err
	}

	var out []testRecord
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if rec.HasQuality() && len(rec.Qual) != len(rec.Seq) {
			return out, errors.New("quality length differs from sequence length")
		}
		out = append(out, testRecord{
			header:  string(rec.Header),
			seq:     string(rec.Seq),
			qual:    string(rec.Qual),
			hasQual: rec.HasQuality(),
		})
	}
}

func knownError(err error) bool {
	for _, sentinel := range []error{
		seqio.ErrEmptyInput,
		seqio.ErrUnrecognizedFormat,
		seqio.ErrTruncatedRecord,
		seqio.ErrInvalidHeaderLine,
		seqio.ErrInvalidSeparatorLine,
		seqio.ErrQualityLengthMismatch,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// FuzzFASTQ builds one FASTQ record from its parts and checks it parses
// back unchanged, or fails with the error its shape calls for.
func FuzzFASTQ(f *testing.F) {
	f.Add("r1", "ACGT", "IIII", false)
	f.Add("r1 desc", "", "", true)
	f.Add("r1", "AC", "I", false)
	f.Add("r1", "A", "II", true)

	f.Fuzz(func(t *testing.T, header, seq, qual string, crlf bool) {
		if strings.ContainsAny(header+seq+qual, "\r\n") {
			t.Skip()
		}
		nl := "\n"
		if crlf {
			nl = "\r\n"
		}
		input := "@" + header + nl + seq + nl + "+" + nl + qual + nl

		r, err := seqio.NewReader(strings.NewReader(input))
		if err != nil {
			t.Fatalf("NewReader failed: %v", err)
		}
		rec, err := r.Next()

		if len(seq) != len(qual) {
			if !errors.Is(err, seqio.ErrQualityLengthMismatch) {
				t.Fatalf("error = %v, want ErrQualityLengthMismatch", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(rec.Header) != header || string(rec.Seq) != seq || string(rec.Qual) != qual {
			t.Fatalf("record = %q/%q/%q", rec.Header, rec.Seq, rec.Qual)
		}
		if _, err := r.Next(); err != io.EOF {
			t.Fatalf("second Next() = %v, want io.EOF", err)
		}
	})
}
