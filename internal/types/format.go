package types

// Format represents the detected sequence file format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatFASTA represents FASTA files ('>' headers, wrapped sequence lines).
	FormatFASTA
	// FormatFASTQ represents FASTQ files (four-line records with qualities).
	FormatFASTQ
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatFASTA:
		return "FASTA"
	case FormatFASTQ:
		return "FASTQ"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatFASTA:
		return []string{".fa", ".fasta", ".fna", ".ffn", ".faa", ".frn"}
	case FormatFASTQ:
		return []string{".fq", ".fastq"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// Sentinel returns the byte that opens every record header of the format,
// or 0 for FormatUnknown.
func (f Format) Sentinel() byte {
	switch f {
	case FormatFASTA:
		return '>'
	case FormatFASTQ:
		return '@'
	default:
		return 0
	}
}

// Sniff selects a format from the first meaningful byte of a stream.
//
// Leading line terminators are skipped. The returned offset is the index of
// the byte that decided the format; nothing is consumed, the caller keeps the
// bytes for the extractor.
//
// When data is exhausted without a decision, Sniff reports ok=false so the
// caller can read more. Callers that know the stream has ended should treat
// that as empty input.
func Sniff(data []byte) (format Format, offset int, ok bool) {
	for i, c := range data {
		switch c {
		case '\n', '\r':
			continue
		case '>':
			return FormatFASTA, i, true
		case '@':
			return FormatFASTQ, i, true
		default:
			return FormatUnknown, i, true
		}
	}
	return FormatUnknown, len(data), false
}
