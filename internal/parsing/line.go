// Package parsing provides the resumable line cursor shared by the format
// extractors.
package parsing

import "bytes"

// Cursor walks the lines of a window that only grows between calls.
//
// Start is the first byte of the line being examined. The cursor remembers
// how far it already searched for a terminator, so a line split across
// refills is never scanned twice.
type Cursor struct {
	Start int
	pos   int
}

// SkipBlank moves Start past line terminators. It reports whether a
// non-terminator byte is available at Start.
func (c *Cursor) SkipBlank(buf []byte) bool {
	for c.Start < len(buf) && (buf[c.Start] == '\n' || buf[c.Start] == '\r') {
		c.Start++
	}
	c.pos = max(c.pos, c.Start)
	return c.Start < len(buf)
}

// EOL returns the index of the '\n' ending the current line, or -1 if buf
// ends first. With eof set, a missing terminator is reported as len(buf):
// the trailing bytes form the last line.
func (c *Cursor) EOL(buf []byte, eof bool) int {
	c.pos = max(c.pos, c.Start)
	if i := bytes.IndexByte(buf[c.pos:], '\n'); i >= 0 {
		c.pos += i
		return c.pos
	}
	c.pos = len(buf)
	if eof {
		return len(buf)
	}
	return -1
}

// Next moves the cursor to the line following the terminator at eol.
func (c *Cursor) Next(buf []byte, eol int) {
	c.Start = min(eol+1, len(buf))
	c.pos = c.Start
}

// AtEnd reports whether every byte of buf has been passed.
func (c *Cursor) AtEnd(buf []byte) bool {
	return c.Start >= len(buf)
}

// TrimCR returns the end of the line content in buf[start:eol], dropping a
// '\r' that precedes the terminator.
func TrimCR(buf []byte, start, eol int) int {
	if eol > start && buf[eol-1] == '\r' {
		return eol - 1
	}
	return eol
}
