package seqio

import (
	"bytes"
	"errors"
	"io"

	"github.com/valyala/bytebufferpool"
)

// flushThreshold is the buffered size at which Write hands bytes to the
// destination.
const flushThreshold = 64 << 10

var writePool bytebufferpool.Pool

// ErrWriterClosed is returned by Write after Close.
var ErrWriterClosed = errors.New("writer closed")

// WriterOption configures behavior when creating a Writer.
type WriterOption func(*writeOptions)

type writeOptions struct {
	lineWidth int // FASTA sequence line width (0 = one line)
}

func defaultWriteOptions() *writeOptions {
	return &writeOptions{}
}

// WithLineWidth wraps FASTA sequences every n bytes.
//
// The default, and any n <= 0, writes each sequence on a single line. FASTQ
// output is never wrapped.
func WithLineWidth(n int) WriterOption {
	return func(o *writeOptions) {
		if n < 0 {
			n = 0
		}
		o.lineWidth = n
	}
}

// Writer formats records as FASTA or FASTQ text.
//
// Output is buffered; call Flush or Close when done. Writer never closes
// the destination. The first write error is sticky.
type Writer struct {
	w      io.Writer
	buf    *bytebufferpool.ByteBuffer
	err    error
	format Format
	width  int
}

// NewWriter creates a Writer producing format on w.
//
// Returns UnsupportedWriteError if format is not FASTA or FASTQ.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (*Writer, error) {
	if format != FormatFASTA && format != FormatFASTQ {
		return nil, &UnsupportedWriteError{
			Format: format,
			Reason: "no writer for format",
		}
	}

	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Writer{
		w:      w,
		buf:    writePool.Get(),
		format: format,
		width:  options.lineWidth,
	}, nil
}

// Write appends one record.
//
// Writing a record to FASTQ requires a quality line as long as the
// sequence; FASTA output drops Qual. Headers must not contain line
// terminators. Violations return UnsupportedWriteError and write nothing.
func (w *Writer) Write(rec Record) error {
	if w.err != nil {
		return w.err
	}
	if w.buf == nil {
		return ErrWriterClosed
	}
	if err := checkWritable(rec, w.format); err != nil {
		return err
	}

	w.buf.B = appendRecord(w.buf.B, rec, w.format, w.width)
	if w.buf.Len() >= flushThreshold {
		return w.Flush()
	}
	return nil
}

// Flush writes any buffered output to the destination.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.buf == nil || w.buf.Len() == 0 {
		return nil
	}
	if _, err := w.w.Write(w.buf.B); err != nil {
		w.err = err
		return err
	}
	w.buf.Reset()
	return nil
}

// Close flushes buffered output and releases the Writer's buffer. It does
// not close the destination.
func (w *Writer) Close() error {
	if w.buf == nil {
		return w.err
	}
	err := w.Flush()
	writePool.Put(w.buf)
	w.buf = nil
	return err
}

// FormatRecord writes a single record to w in format with a single Write
// call and returns the number of bytes written.
func FormatRecord(w io.Writer, rec Record, format Format) (int, error) {
	if format != FormatFASTA && format != FormatFASTQ {
		return 0, &UnsupportedWriteError{Format: format, Reason: "no writer for format"}
	}
	if err := checkWritable(rec, format); err != nil {
		return 0, err
	}

	b := writePool.Get()
	defer writePool.Put(b)

	b.B = appendRecord(b.B, rec, format, 0)
	return w.Write(b.B)
}

func checkWritable(rec Record, format Format) error {
	if bytes.ContainsAny(rec.Header, "\r\n") {
		return &UnsupportedWriteError{Format: format, Reason: "header contains a line terminator"}
	}
	if format != FormatFASTQ {
		return nil
	}
	if rec.Qual == nil {
		return &UnsupportedWriteError{Format: format, Reason: "record has no quality line"}
	}
	if len(rec.Qual) != len(rec.Seq) {
		return &UnsupportedWriteError{Format: format, Reason: "quality length differs from sequence length"}
	}
	return nil
}

func appendRecord(dst []byte, rec Record, format Format, width int) []byte {
	dst = append(dst, format.Sentinel())
	dst = append(dst, rec.Header...)
	dst = append(dst, '\n')

	if format == FormatFASTQ {
		dst = append(dst, rec.Seq...)
		dst = append(dst, "\n+\n"...)
		dst = append(dst, rec.Qual...)
		return append(dst, '\n')
	}

	if width <= 0 {
		if len(rec.Seq) == 0 {
			return dst
		}
		dst = append(dst, rec.Seq...)
		return append(dst, '\n')
	}
	for seq := rec.Seq; len(seq) > 0; {
		n := min(width, len(seq))
		dst = append(dst, seq[:n]...)
		dst = append(dst, '\n')
		seq = seq[n:]
	}
	return dst
}
