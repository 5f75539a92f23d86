package seqio

import (
	"bytes"

	"github.com/simonhull/seqio/internal/buffer"
	"github.com/simonhull/seqio/internal/types"
)

// Record is one parsed FASTA or FASTQ entry.
//
// The fields are views into the Reader's buffer: no bytes are copied while
// parsing. They stay valid only until the next call to Reader.Next, which may
// refill, compact or reuse that memory. Use Clone to keep a record longer.
//
// The fields must not be modified. Appending to them is safe: their capacity
// ends with the field, so an append always reallocates.
type Record struct {
	// Header is the header line without its leading '>' or '@' and without
	// the line terminator.
	Header []byte

	// Seq is the sequence. For FASTA, wrapped lines are joined and line
	// terminators removed. No alphabet validation is performed.
	Seq []byte

	// Qual holds one quality byte per sequence byte for FASTQ records and is
	// nil for FASTA records.
	Qual []byte

	buf *buffer.Buffer
	gen uint64
}

func newRecord(rec types.Record, buf *buffer.Buffer) Record {
	return Record{
		Header: rec.Header,
		Seq:    rec.Seq,
		Qual:   rec.Qual,
		buf:    buf,
		gen:    buf.Generation(),
	}
}

// ID returns the identifier: the header up to the first space or tab.
func (r Record) ID() []byte {
	h := bytes.TrimLeft(r.Header, " \t")
	if i := bytes.IndexAny(h, " \t"); i >= 0 {
		return h[:i:i]
	}
	return h
}

// Description returns the header text after the identifier, with
// surrounding blanks removed. It is empty when the header has no description.
func (r Record) Description() []byte {
	h := bytes.TrimLeft(r.Header, " \t")
	i := bytes.IndexAny(h, " \t")
	if i < 0 {
		return nil
	}
	return bytes.Trim(h[i:], " \t\r")
}

// HasQuality reports whether the record came from a FASTQ stream.
func (r Record) HasQuality() bool {
	return r.Qual != nil
}

// Len returns the sequence length.
func (r Record) Len() int {
	return len(r.Seq)
}

// Valid reports whether the record's fields still refer to the bytes that
// were parsed. It turns false once the Reader moves on; cloned records are
// always valid.
func (r Record) Valid() bool {
	return r.buf == nil || r.buf.Generation() == r.gen
}

// Clone returns a copy of the record that owns its bytes. The three fields
// share a single allocation.
func (r Record) Clone() Record {
	data := make([]byte, 0, len(r.Header)+len(r.Seq)+len(r.Qual))

	data = append(data, r.Header...)
	header := data[:len(data):len(data)]

	data = append(data, r.Seq...)
	seq := data[len(header):len(data):len(data)]

	var qual []byte
	if r.Qual != nil {
		data = append(data, r.Qual...)
		qual = data[len(header)+len(seq) : len(data) : len(data)]
	}

	return Record{Header: header, Seq: seq, Qual: qual}
}
