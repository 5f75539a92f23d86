package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a stream could not be parsed.
type ErrorKind int

const (
	// KindEmptyInput is reported for a stream with no meaningful bytes.
	KindEmptyInput ErrorKind = iota + 1
	// KindUnrecognizedFormat is reported when the first byte is neither '>' nor '@'.
	KindUnrecognizedFormat
	// KindTruncatedRecord is reported when the stream ends mid-record.
	KindTruncatedRecord
	// KindInvalidHeaderLine is reported for a header without its sentinel byte.
	KindInvalidHeaderLine
	// KindInvalidSeparatorLine is reported for a FASTQ separator not starting with '+'.
	KindInvalidSeparatorLine
	// KindQualityLengthMismatch is reported when FASTQ sequence and quality lengths differ.
	KindQualityLengthMismatch
	// KindSourceRead is reported when the underlying reader fails.
	KindSourceRead
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrEmptyInput            = errors.New("empty input")
	ErrUnrecognizedFormat    = errors.New("unrecognized format")
	ErrTruncatedRecord       = errors.New("truncated record")
	ErrInvalidHeaderLine     = errors.New("invalid header line")
	ErrInvalidSeparatorLine  = errors.New("invalid separator line")
	ErrQualityLengthMismatch = errors.New("quality length mismatch")
	ErrSourceRead            = errors.New("source read error")
)

// ErrNeedMore is returned by extractors when the window ends before a
// record is complete and more data may still arrive.
var ErrNeedMore = errors.New("need more data")

// Sentinel returns the package-level error value matching the kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindUnrecognizedFormat:
		return ErrUnrecognizedFormat
	case KindTruncatedRecord:
		return ErrTruncatedRecord
	case KindInvalidHeaderLine:
		return ErrInvalidHeaderLine
	case KindInvalidSeparatorLine:
		return ErrInvalidSeparatorLine
	case KindQualityLengthMismatch:
		return ErrQualityLengthMismatch
	case KindSourceRead:
		return ErrSourceRead
	default:
		return nil
	}
}

// String returns the sentinel message for the kind.
func (k ErrorKind) String() string {
	if err := k.Sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned when the stream content is structurally invalid.
//
// Extractors fill Kind, Offset (relative to the window they were given) and
// Reason; the reader rebases Offset onto the stream and adds Path and Record.
type ParseError struct {
	Path   string
	Reason string
	Kind   ErrorKind
	Record int   // 1-based index of the record being parsed, 0 before the first
	Offset int64 // byte offset of the offending line
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "stream"
	}
	if e.Record > 0 {
		return fmt.Sprintf("%s: record %d at offset %d: %s: %s", path, e.Record, e.Offset, e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: at offset %d: %s: %s", path, e.Offset, e.Kind, e.Reason)
}

// Is reports whether target is the sentinel for the error's kind.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

// ReadError wraps a failure of the underlying source. The original error is
// available through errors.Unwrap, unchanged.
type ReadError struct {
	Err    error
	Path   string
	Offset int64 // bytes successfully read before the failure
}

func (e *ReadError) Error() string {
	path := e.Path
	if path == "" {
		path = "stream"
	}
	return fmt.Sprintf("%s: read failed after %d bytes: %v", path, e.Offset, e.Err)
}

// Unwrap returns the underlying source error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceRead.
func (e *ReadError) Is(target error) bool {
	return target == ErrSourceRead
}

// Malformed builds a ParseError for an extractor.
func Malformed(kind ErrorKind, offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:   kind,
		Offset: int64(offset),
		Reason: fmt.Sprintf(format, args...),
	}
}

// UnsupportedWriteError indicates a record cannot be written in a format.
type UnsupportedWriteError struct {
	Reason string
	Format Format
}

func (e *UnsupportedWriteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("write not supported for %s: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("write not supported for %s", e.Format)
}
