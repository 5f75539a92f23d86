// Package fastq implements the FASTQ record extractor.
//
// A record is exactly four lines: an '@' header, one sequence line, a '+'
// separator and one quality line holding as many bytes as the sequence.
// Multi-line FASTQ is not accepted.
package fastq

import (
	"io"

	"github.com/simonhull/seqio/internal/parsing"
	"github.com/simonhull/seqio/internal/registry"
	"github.com/simonhull/seqio/internal/types"
)

func init() {
	registry.Register(types.FormatFASTQ, func() registry.Extractor {
		return &extractor{}
	})
}

type state uint8

const (
	awaitHeader state = iota
	awaitSequence
	awaitSeparator
	awaitQuality
)

// extractor is the resumable FASTQ state machine. All positions are
// relative to the start of the window passed to Extract.
type extractor struct {
	line     parsing.Cursor
	state    state
	hdrStart int
	hdrEnd   int
	seqStart int
	seqEnd   int
}

// Extract implements registry.Extractor.
func (e *extractor) Extract(buf []byte, eof bool) (types.Record, int, error) { //nolint:gocyclo // one case per record line
	for {
		switch e.state {
		case awaitHeader:
			if !e.line.SkipBlank(buf) {
				if eof {
					n := e.line.Start
					e.reset()
					return types.Record{}, n, io.EOF
				}
				return types.Record{}, 0, types.ErrNeedMore
			}
			switch c := buf[e.line.Start]; c {
			case '@':
			case '>':
				return types.Record{}, 0, types.Malformed(types.KindInvalidHeaderLine, e.line.Start,
					"found FASTA header '>' in FASTQ stream")
			default:
				return types.Record{}, 0, types.Malformed(types.KindInvalidHeaderLine, e.line.Start,
					"expected '@' at start of header, found %q", c)
			}

			eol := e.line.EOL(buf, false)
			if eol < 0 {
				if eof {
					return e.truncated("stream ended inside header line")
				}
				return types.Record{}, 0, types.ErrNeedMore
			}
			e.hdrStart = e.line.Start + 1
			e.hdrEnd = parsing.TrimCR(buf, e.hdrStart, eol)
			e.line.Next(buf, eol)
			e.state = awaitSequence

		case awaitSequence:
			eol := e.line.EOL(buf, false)
			if eol < 0 {
				if eof && e.line.AtEnd(buf) {
					return e.truncated("stream ended before sequence line")
				}
				if eof {
					return e.truncated("stream ended inside sequence line")
				}
				return types.Record{}, 0, types.ErrNeedMore
			}
			e.seqStart = e.line.Start
			e.seqEnd = parsing.TrimCR(buf, e.seqStart, eol)
			e.line.Next(buf, eol)
			e.state = awaitSeparator

		case awaitSeparator:
			if e.line.AtEnd(buf) {
				if eof {
					return e.truncated("stream ended before separator line")
				}
				return types.Record{}, 0, types.ErrNeedMore
			}
			if c := buf[e.line.Start]; c != '+' {
				return types.Record{}, 0, types.Malformed(types.KindInvalidSeparatorLine, e.line.Start,
					"expected '+' at start of separator, found %q", c)
			}
			eol := e.line.EOL(buf, eof)
			if eol < 0 {
				return types.Record{}, 0, types.ErrNeedMore
			}
			e.line.Next(buf, eol)
			e.state = awaitQuality

		case awaitQuality:
			return e.quality(buf, eof)
		}
	}
}

// quality scans the quality line and checks it against the sequence length.
func (e *extractor) quality(buf []byte, eof bool) (types.Record, int, error) {
	want := e.seqEnd - e.seqStart
	start := e.line.Start

	if e.line.AtEnd(buf) {
		if !eof {
			return types.Record{}, 0, types.ErrNeedMore
		}
		if want > 0 {
			return e.truncated("stream ended before quality line")
		}
		return e.finish(buf, start, start, len(buf))
	}

	eol := e.line.EOL(buf, eof)
	if eol < 0 {
		// Longer than the sequence plus an optional '\r' already: no
		// terminator can make it fit.
		if len(buf)-start > want+1 {
			return types.Record{}, 0, types.Malformed(types.KindQualityLengthMismatch, start,
				"expected %d quality values, found more", want)
		}
		return types.Record{}, 0, types.ErrNeedMore
	}

	end := parsing.TrimCR(buf, start, eol)
	switch got := end - start; {
	case got > want:
		return types.Record{}, 0, types.Malformed(types.KindQualityLengthMismatch, start,
			"expected %d quality values, found more", want)
	case got < want:
		return types.Record{}, 0, types.Malformed(types.KindQualityLengthMismatch, start,
			"expected %d quality values, found %d", want, got)
	}
	return e.finish(buf, start, end, min(eol+1, len(buf)))
}

func (e *extractor) finish(buf []byte, qualStart, qualEnd, n int) (types.Record, int, error) {
	rec := types.Record{
		Header: buf[e.hdrStart:e.hdrEnd:e.hdrEnd],
		Seq:    buf[e.seqStart:e.seqEnd:e.seqEnd],
		Qual:   buf[qualStart:qualEnd:qualEnd],
	}
	e.reset()
	return rec, n, nil
}

func (e *extractor) truncated(reason string) (types.Record, int, error) {
	return types.Record{}, 0, types.Malformed(types.KindTruncatedRecord, e.line.Start, "%s", reason)
}

func (e *extractor) reset() {
	*e = extractor{}
}
