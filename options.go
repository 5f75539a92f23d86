package seqio

import (
	"log/slog"

	"github.com/simonhull/seqio/internal/buffer"
)

// DefaultChunkSize is the number of bytes requested from the source per read
// until a record larger than that forces the request size to grow.
const DefaultChunkSize = buffer.DefaultChunkSize

// Option configures behavior when creating a Reader.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	r, err := seqio.Open("reads.fq.gz",
//	    seqio.WithChunkSize(1<<20),
//	    seqio.WithLogger(slog.Default()),
//	)
type Option func(*readOptions)

// readOptions holds configuration for a Reader.
type readOptions struct {
	logger     *slog.Logger
	path       string // Name used in errors and log records
	chunkSize  int    // Initial read size in bytes
	format     Format // Forced format (FormatUnknown = sniff)
	decompress bool   // Open: detect and decode gzip/zstd
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		logger:     slog.New(slog.DiscardHandler),
		chunkSize:  DefaultChunkSize,
		format:     FormatUnknown,
		decompress: true,
	}
}

func applyOptions(opts []Option) *readOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithChunkSize sets the initial number of bytes requested per read.
//
// The request doubles while a single record is larger than the chunk, so
// this only tunes the common case. Values <= 0 select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *readOptions) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithFormat skips format detection and parses the stream as format.
//
// The first byte is no longer required to be '>' or '@'; a stream that does
// not start with the format's header byte fails with ErrInvalidHeaderLine
// on the first Next instead. Empty input is still reported as ErrEmptyInput.
func WithFormat(format Format) Option {
	return func(o *readOptions) {
		o.format = format
	}
}

// WithLogger sets the logger used for debug records about format
// detection, buffer growth and terminal errors.
//
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *readOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPath sets the name reported in errors and log records.
//
// Open sets it to the opened path automatically.
func WithPath(path string) Option {
	return func(o *readOptions) {
		o.path = path
	}
}

// WithoutDecompression makes Open pass the file bytes through unchanged,
// even when they start with a gzip or zstd signature.
func WithoutDecompression() Option {
	return func(o *readOptions) {
		o.decompress = false
	}
}
