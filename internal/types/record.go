// Package types provides the core data structures shared by the scanner and
// the format extractors: formats, extracted records and error kinds.
package types

// Record holds the fields of one extracted record as slices of the window
// the extractor was given. Qual is nil for FASTA.
type Record struct {
	Header []byte // header line without the sentinel and line terminator
	Seq    []byte
	Qual   []byte
}
