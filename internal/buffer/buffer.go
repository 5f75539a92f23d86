// Package buffer provides the growable byte region the scanner reads into.
package buffer

import (
	"errors"
	"io"
)

const (
	// DefaultChunkSize is the initial number of bytes requested per read.
	DefaultChunkSize = 64 * 1024

	// MaxChunkSize caps how far the per-read request grows. The buffer itself
	// has no cap: a single record of any size is held in full.
	MaxChunkSize = 64 << 20

	maxConsecutiveEmptyReads = 100
)

// ErrBadRead is returned when a source reports an impossible byte count.
var ErrBadRead = errors.New("buffer: source returned invalid count from Read")

// Buffer is a contiguous byte region with two cursors:
//
//	0 <= start <= end <= len(buf)
//
// Bytes in [start, end) have been read but not yet consumed. Bytes before
// start belong to records already handed out and are dropped on compaction.
type Buffer struct {
	buf   []byte
	start int
	end   int
	chunk int
	gen   uint64
	grows int
}

// New creates a Buffer that requests chunk bytes per read.
// A chunk <= 0 selects DefaultChunkSize.
func New(chunk int) *Buffer {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	if chunk > MaxChunkSize {
		chunk = MaxChunkSize
	}
	return &Buffer{
		buf:   make([]byte, chunk),
		chunk: chunk,
	}
}

// Fill performs one read from r into the free tail of the buffer, making room
// for at least one chunk first. When the unconsumed region already spans a
// whole chunk (a record larger than the chunk is being assembled) the chunk
// size doubles, up to MaxChunkSize.
//
// Fill returns the number of bytes appended and the error from r, if any.
// io.EOF is passed through unchanged; a source that keeps returning (0, nil)
// yields io.ErrNoProgress.
func (b *Buffer) Fill(r io.Reader) (int, error) {
	if b.Len() >= b.chunk && b.chunk < MaxChunkSize {
		b.chunk = min(b.chunk*2, MaxChunkSize)
	}
	b.reserve(b.chunk)

	for range maxConsecutiveEmptyReads {
		n, err := r.Read(b.buf[b.end:])
		if n < 0 || n > len(b.buf)-b.end {
			return 0, ErrBadRead
		}
		if n > 0 {
			b.end += n
			b.gen++
		}
		if n > 0 || err != nil {
			return n, err
		}
	}
	return 0, io.ErrNoProgress
}

// reserve guarantees n free bytes after end, compacting before growing.
func (b *Buffer) reserve(n int) {
	if len(b.buf)-b.end >= n {
		return
	}
	if b.start > 0 {
		b.Compact()
		if len(b.buf)-b.end >= n {
			return
		}
	}

	size := max(len(b.buf)*2, 1)
	for size-b.end < n {
		size *= 2
	}
	grown := make([]byte, size)
	copy(grown, b.buf[:b.end])
	b.buf = grown
	b.gen++
	b.grows++
}

// Consume marks n more bytes as consumed. n is clamped to the unconsumed
// length. When everything is consumed the cursors rewind to zero.
func (b *Buffer) Consume(n int) {
	if n <= 0 {
		return
	}
	b.start += min(n, b.end-b.start)
	if b.start == b.end {
		b.start, b.end = 0, 0
	}
	b.gen++
}

// Compact moves the unconsumed bytes to the front of the buffer and rebases
// both cursors. Slices previously returned by Unconsumed become invalid.
func (b *Buffer) Compact() {
	if b.start == 0 {
		return
	}
	n := copy(b.buf, b.buf[b.start:b.end])
	b.start, b.end = 0, n
	b.gen++
}

// Unconsumed returns the bytes in [start, end). The slice aliases the
// buffer and is valid until the next Fill, Consume or Compact.
func (b *Buffer) Unconsumed() []byte {
	return b.buf[b.start:b.end]
}

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return b.end - b.start
}

// Cap returns the current capacity of the buffer.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// ChunkSize returns the number of bytes the next Fill will make room for.
func (b *Buffer) ChunkSize() int {
	return b.chunk
}

// Grows returns how many times the backing array was reallocated.
func (b *Buffer) Grows() int {
	return b.grows
}

// Generation changes whenever previously returned slices may have been
// moved, released or overwritten: on every Consume, Compact, growth and on
// each Fill that stored bytes. Views record it to detect that they went stale.
func (b *Buffer) Generation() uint64 {
	return b.gen
}
