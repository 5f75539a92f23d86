// Package fasta implements the FASTA record extractor.
//
// A record is a '>' header line followed by zero or more sequence lines. The
// sequence lines are joined in place, inside the record's own bytes, so the
// extracted sequence is a slice of the read buffer and no allocation happens
// per record.
package fasta

import (
	"io"

	"github.com/simonhull/seqio/internal/parsing"
	"github.com/simonhull/seqio/internal/registry"
	"github.com/simonhull/seqio/internal/types"
)

func init() {
	registry.Register(types.FormatFASTA, func() registry.Extractor {
		return &extractor{}
	})
}

type state uint8

const (
	awaitHeader state = iota
	inSequence
)

// extractor is the resumable FASTA state machine. All positions are
// relative to the start of the window passed to Extract.
type extractor struct {
	line     parsing.Cursor
	state    state
	hdrStart int
	hdrEnd   int
	seqStart int
	seqEnd   int // write position of the joined sequence
}

// Extract implements registry.Extractor.
func (e *extractor) Extract(buf []byte, eof bool) (types.Record, int, error) {
	if e.state == awaitHeader {
		if !e.line.SkipBlank(buf) {
			if eof {
				n := e.line.Start
				e.reset()
				return types.Record{}, n, io.EOF
			}
			return types.Record{}, 0, types.ErrNeedMore
		}
		if c := buf[e.line.Start]; c != '>' {
			return types.Record{}, 0, types.Malformed(types.KindInvalidHeaderLine, e.line.Start,
				"expected '>' at start of header, found %q", c)
		}

		eol := e.line.EOL(buf, eof)
		if eol < 0 {
			return types.Record{}, 0, types.ErrNeedMore
		}
		e.hdrStart = e.line.Start + 1
		e.hdrEnd = parsing.TrimCR(buf, e.hdrStart, eol)
		e.line.Next(buf, eol)
		e.seqStart = e.line.Start
		e.seqEnd = e.line.Start
		e.state = inSequence
	}

	for {
		if e.line.AtEnd(buf) {
			if eof {
				return e.finish(buf)
			}
			return types.Record{}, 0, types.ErrNeedMore
		}
		if buf[e.line.Start] == '>' {
			return e.finish(buf)
		}

		eol := e.line.EOL(buf, eof)
		if eol < 0 {
			return types.Record{}, 0, types.ErrNeedMore
		}
		end := parsing.TrimCR(buf, e.line.Start, eol)
		if e.seqEnd == e.line.Start {
			e.seqEnd = end
		} else {
			e.seqEnd += copy(buf[e.seqEnd:], buf[e.line.Start:end])
		}
		e.line.Next(buf, eol)
	}
}

// finish emits the record ending at the current line start, which is either
// the next header (left unconsumed) or the end of the stream.
func (e *extractor) finish(buf []byte) (types.Record, int, error) {
	rec := types.Record{
		Header: buf[e.hdrStart:e.hdrEnd:e.hdrEnd],
		Seq:    buf[e.seqStart:e.seqEnd:e.seqEnd],
	}
	n := e.line.Start
	e.reset()
	return rec, n, nil
}

func (e *extractor) reset() {
	*e = extractor{}
}
