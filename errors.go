package seqio

import (
	"github.com/simonhull/seqio/internal/types"
)

// ParseError is an alias to types.ParseError.
// It reports structurally invalid input with the record index and offset.
type ParseError = types.ParseError

// ReadError is an alias to types.ReadError.
// It wraps a failure of the underlying source; errors.Unwrap returns it verbatim.
type ReadError = types.ReadError

// ErrorKind is an alias to types.ErrorKind.
type ErrorKind = types.ErrorKind

// UnsupportedWriteError is an alias to types.UnsupportedWriteError.
type UnsupportedWriteError = types.UnsupportedWriteError

// Re-export all error kinds.
const (
	KindEmptyInput            = types.KindEmptyInput
	KindUnrecognizedFormat    = types.KindUnrecognizedFormat
	KindTruncatedRecord       = types.KindTruncatedRecord
	KindInvalidHeaderLine     = types.KindInvalidHeaderLine
	KindInvalidSeparatorLine  = types.KindInvalidSeparatorLine
	KindQualityLengthMismatch = types.KindQualityLengthMismatch
	KindSourceRead            = types.KindSourceRead
)

// Sentinel errors for use with errors.Is. Every error returned by a Reader
// matches exactly one of them.
var (
	ErrEmptyInput            = types.ErrEmptyInput
	ErrUnrecognizedFormat    = types.ErrUnrecognizedFormat
	ErrTruncatedRecord       = types.ErrTruncatedRecord
	ErrInvalidHeaderLine     = types.ErrInvalidHeaderLine
	ErrInvalidSeparatorLine  = types.ErrInvalidSeparatorLine
	ErrQualityLengthMismatch = types.ErrQualityLengthMismatch
	ErrSourceRead            = types.ErrSourceRead
)
