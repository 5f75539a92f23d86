package seqio

import (
	"github.com/simonhull/seqio/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatFASTA   = types.FormatFASTA
	FormatFASTQ   = types.FormatFASTQ
)

// DetectFormat selects the format from the first meaningful byte of data:
// '>' is FASTA and '@' is FASTQ. Leading line terminators are skipped.
//
// It returns a *ParseError matching ErrEmptyInput when data holds no such
// byte, and one matching ErrUnrecognizedFormat for any other leading byte.
func DetectFormat(data []byte) (Format, error) {
	format, offset, ok := types.Sniff(data)
	if !ok {
		return FormatUnknown, &ParseError{
			Kind:   KindEmptyInput,
			Offset: int64(offset),
			Reason: "no record found",
		}
	}
	if format == FormatUnknown {
		return FormatUnknown, &ParseError{
			Kind:   KindUnrecognizedFormat,
			Offset: int64(offset),
			Reason: unrecognizedReason(data[offset]),
		}
	}
	return format, nil
}
