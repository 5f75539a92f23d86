// Package registry manages format-specific record extractors.
package registry

import (
	"github.com/simonhull/seqio/internal/types"
)

// Extractor is the interface every format state machine implements.
//
// Extract scans buf for one complete record. buf always starts at the first
// byte not yet consumed; between calls that returned types.ErrNeedMore the
// caller only appends to it, so an extractor may keep cursors into buf to
// resume scanning where it stopped. eof reports that buf holds every
// remaining byte of the stream.
//
// Extract returns one of:
//   - a record and the number of bytes it occupies, n > 0
//   - types.ErrNeedMore when the record is incomplete and eof is false
//   - io.EOF when only line terminators remain and eof is true (n is their count)
//   - a *types.ParseError with an Offset relative to buf
//
// Record fields alias buf. Extractors may rewrite bytes inside the record's
// own range but never outside of it.
type Extractor interface {
	Extract(buf []byte, eof bool) (rec types.Record, n int, err error)
}

// Factory creates a fresh extractor for one stream.
type Factory func() Extractor

// extractors maps formats to their extractor factories.
var extractors = make(map[types.Format]Factory)

// Register registers an extractor factory for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, factory Factory) {
	extractors[format] = factory
}

// Get returns a new extractor for a given format.
// Returns nil if no extractor is registered for the format.
func Get(format types.Format) Extractor {
	factory := extractors[format]
	if factory == nil {
		return nil
	}
	return factory()
}
