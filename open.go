package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Stdin is the path Open treats as standard input.
const Stdin = "-"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Open opens a FASTA or FASTQ file and detects its format.
//
// The path "-" reads standard input. Gzip and zstd input is recognized by
// its magic bytes, not by the file extension, and decoded transparently
// unless WithoutDecompression is given.
//
// The returned Reader owns the file: always call Close.
//
// Example:
//
//	r, err := seqio.Open("reads.fq.gz")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
func Open(path string, opts ...Option) (*Reader, error) {
	options := applyOptions(opts)
	if options.path == "" {
		options.path = path
	}

	var f io.ReadCloser
	if path == Stdin {
		f = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		f = fh
	}

	src, err := decompress(f, options)
	if err != nil {
		f.Close()
		return nil, err
	}

	r, err := newReader(src, options)
	if err != nil {
		src.Close()
		return nil, err
	}
	r.closer = src
	return r, nil
}

// decompress wraps f in a decoder when it starts with a known compression
// signature. Closing the result closes f.
func decompress(f io.ReadCloser, options *readOptions) (io.ReadCloser, error) {
	if !options.decompress {
		return f, nil
	}

	br := bufio.NewReaderSize(f, len(zstdMagic)*1024)
	sig, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, &ReadError{Path: options.path, Err: err}
	}

	switch {
	case bytes.HasPrefix(sig, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, &ReadError{Path: options.path, Err: fmt.Errorf("gzip: %w", err)}
		}
		options.logger.Debug("decompressing", "path", options.path, "codec", "gzip")
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, f}}, nil

	case bytes.HasPrefix(sig, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, &ReadError{Path: options.path, Err: fmt.Errorf("zstd: %w", err)}
		}
		options.logger.Debug("decompressing", "path", options.path, "codec", "zstd")
		zrc := zr.IOReadCloser()
		return &multiReadCloser{Reader: zrc, closers: []io.Closer{zrc, f}}, nil
	}

	return &multiReadCloser{Reader: br, closers: []io.Closer{f}}, nil
}

// multiReadCloser closes every layer of a decoding stack, innermost last.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
