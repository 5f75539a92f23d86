package seqio

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/simonhull/seqio/internal/buffer"
	"github.com/simonhull/seqio/internal/registry"
	"github.com/simonhull/seqio/internal/types"
)

// Reader yields the records of one FASTA or FASTQ stream, in order.
//
// A Reader is a pull iterator: it reads from its source only inside Next,
// and only as much as it needs to complete the next record. It holds one
// growable buffer sized by the largest record seen, not by the stream.
//
// The first error is terminal: Next keeps returning it. A Reader is not safe
// for concurrent use; parse several sources in parallel with one Reader
// each.
//
//	r, err := seqio.NewReader(os.Stdin)
//	if err != nil {
//		return err
//	}
//	for rec, err := range r.Records() {
//		if err != nil {
//			return err
//		}
//		fmt.Printf("%s\t%d\n", rec.ID(), rec.Len())
//	}
type Reader struct {
	src    io.Reader
	closer io.Closer
	buf    *buffer.Buffer
	ext    registry.Extractor
	logger *slog.Logger
	err    error // Sticky terminal error, io.EOF after the last record

	// Path is the name reported in errors (empty for anonymous streams).
	Path string

	read   int64 // Bytes read from src
	offset int64 // Stream offset of the first unconsumed byte
	count  int   // Records returned

	// Format is the format detected (or forced) when the Reader was created.
	Format Format

	eof bool
}

// NewReader creates a Reader over r and detects its format.
//
// Detection peeks at the first byte that is not a line terminator: '>'
// selects FASTA, '@' selects FASTQ. The peeked bytes remain part of the
// first record. Errors:
//
//   - ErrEmptyInput: r holds no bytes other than line terminators
//   - ErrUnrecognizedFormat: the first byte is anything else
//   - ErrSourceRead: reading r failed (the *ReadError wraps the cause)
//
// NewReader never interprets compression; wrap r in a decompressor first,
// or use Open.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	return newReader(r, applyOptions(opts))
}

func newReader(r io.Reader, options *readOptions) (*Reader, error) {
	rd := &Reader{
		src:    r,
		buf:    buffer.New(options.chunkSize),
		logger: options.logger,
		Path:   options.path,
	}

	format, err := rd.sniff(options.format)
	if err != nil {
		rd.logger.Debug("format detection failed", "path", rd.Path, "error", err)
		return nil, err
	}

	ext := registry.Get(format)
	if ext == nil {
		return nil, &ParseError{
			Path:   rd.Path,
			Kind:   KindUnrecognizedFormat,
			Reason: fmt.Sprintf("no extractor registered for format %s", format),
		}
	}

	rd.Format = format
	rd.ext = ext
	rd.logger.Debug("format detected",
		"path", rd.Path,
		"format", format.String(),
		"forced", options.format != FormatUnknown)
	return rd, nil
}

// sniff reads until the first meaningful byte is buffered and selects the
// format from it. Nothing is consumed.
func (r *Reader) sniff(forced Format) (Format, error) {
	for {
		data := r.buf.Unconsumed()
		format, offset, ok := types.Sniff(data)
		if ok {
			if forced != FormatUnknown {
				return forced, nil
			}
			if format == FormatUnknown {
				return FormatUnknown, &ParseError{
					Path:   r.Path,
					Kind:   KindUnrecognizedFormat,
					Offset: int64(offset),
					Reason: unrecognizedReason(data[offset]),
				}
			}
			return format, nil
		}
		if r.eof {
			return FormatUnknown, &ParseError{
				Path:   r.Path,
				Kind:   KindEmptyInput,
				Offset: int64(offset),
				Reason: "no record found",
			}
		}
		if err := r.fill(); err != nil {
			return FormatUnknown, err
		}
	}
}

func unrecognizedReason(c byte) string {
	return fmt.Sprintf("first byte %q is neither '>' nor '@'", c)
}

// fill reads once from the source. Exhaustion is recorded in r.eof and is
// not an error.
func (r *Reader) fill() error {
	grows := r.buf.Grows()
	n, err := r.buf.Fill(r.src)
	r.read += int64(n)

	if r.buf.Grows() != grows {
		r.logger.Debug("buffer grown",
			"path", r.Path,
			"capacity", r.buf.Cap(),
			"chunk", r.buf.ChunkSize(),
			"pending", r.buf.Len())
	}

	if errors.Is(err, io.EOF) {
		r.eof = true
		return nil
	}
	if err != nil {
		return &ReadError{
			Path:   r.Path,
			Offset: r.read,
			Err:    err,
		}
	}
	return nil
}

// Next returns the next record.
//
// It returns io.EOF once the stream ended cleanly. Any other error is
// terminal and returned again by every later call. The returned record is
// valid until the following call to Next.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}

	for {
		if r.buf.Len() == 0 && !r.eof {
			if err := r.fill(); err != nil {
				return r.fail(err)
			}
			continue
		}

		rec, n, err := r.ext.Extract(r.buf.Unconsumed(), r.eof)
		switch {
		case err == nil:
			r.buf.Consume(n)
			r.offset += int64(n)
			r.count++
			return newRecord(rec, r.buf), nil

		case errors.Is(err, types.ErrNeedMore):
			if r.eof {
				return r.fail(&ParseError{
					Kind:   KindTruncatedRecord,
					Offset: int64(r.buf.Len()),
					Reason: "stream ended inside record",
				})
			}
			if err := r.fill(); err != nil {
				return r.fail(err)
			}

		case errors.Is(err, io.EOF):
			r.buf.Consume(n)
			r.offset += int64(n)
			r.err = io.EOF
			return Record{}, io.EOF

		default:
			return r.fail(err)
		}
	}
}

// fail records err as terminal. Parse errors from the extractor carry
// offsets relative to the unconsumed window; they are rebased onto the
// stream here.
func (r *Reader) fail(err error) (Record, error) {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = r.Path
		pe.Record = r.count + 1
		pe.Offset += r.offset
	}

	r.err = err
	r.logger.Debug("parse failed",
		"path", r.Path,
		"record", r.count+1,
		"offset", r.offset,
		"error", err)
	return Record{}, err
}

// Records returns an iterator over the remaining records.
//
// Iteration stops after the last record or after yielding the first error.
// Breaking out of the loop early leaves the Reader positioned after the
// last yielded record.
func (r *Reader) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Record{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Err returns the terminal error, if any. It is nil while records remain
// and after a clean end of stream.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}
	return r.err
}

// Count returns the number of records returned so far.
func (r *Reader) Count() int {
	return r.count
}

// Offset returns the number of stream bytes consumed by returned records.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Close releases the source if the Reader owns it (see Open).
//
// After Close is called, the Reader should not be used.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
