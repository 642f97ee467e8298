// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"go4.org/mem"
)

// A Cursor is a forward-only read position over an immutable input buffer.
// The zero value is a cursor over empty input.
type Cursor struct {
	input mem.RO
	pos   int
}

// NewCursor constructs a cursor positioned at the start of input.
func NewCursor(input string) *Cursor { return &Cursor{input: mem.S(input)} }

// NewCursorBytes constructs a cursor positioned at the start of input.
// The caller must not modify input while the cursor is in use.
func NewCursorBytes(input []byte) *Cursor { return &Cursor{input: mem.B(input)} }

// Pos returns the current offset of c in its input.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the input in bytes.
func (c *Cursor) Len() int { return c.input.Len() }

// AtEnd reports whether c has consumed all its input.
func (c *Cursor) AtEnd() bool { return c.pos >= c.input.Len() }

// Peek returns the byte at the current position without advancing.
// It reports an error matching ErrOutOfRange if c is at the end of input.
func (c *Cursor) Peek() (byte, error) {
	if c.AtEnd() {
		return 0, posError{c.pos, ErrOutOfRange}
	}
	return c.input.At(c.pos), nil
}

// Advance returns the byte at the current position and advances past it.
// It reports an error matching ErrOutOfRange if c is at the end of input.
func (c *Cursor) Advance() (byte, error) {
	ch, err := c.Peek()
	if err != nil {
		return 0, err
	}
	c.pos++
	return ch, nil
}

// SkipWhitespace advances c past a run of space, tab, LF, and CR bytes.
// It stops without error at the end of input.
func (c *Cursor) SkipWhitespace() {
	for !c.AtEnd() && IsSpace(c.input.At(c.pos)) {
		c.pos++
	}
}

// HasPrefix reports whether the unconsumed input begins with lit.
func (c *Cursor) HasPrefix(lit string) bool {
	return mem.HasPrefix(c.input.SliceFrom(c.pos), mem.S(lit))
}

// Skip advances c by n bytes. It reports an error matching ErrOutOfRange,
// without moving, if fewer than n bytes remain.
func (c *Cursor) Skip(n int) error {
	if c.pos+n > c.input.Len() {
		return posError{c.input.Len(), ErrOutOfRange}
	}
	c.pos += n
	return nil
}

// ReadWhile consumes bytes for which f reports true, stopping at the first
// byte that does not match or at the end of input. It returns a view of the
// consumed bytes.
func (c *Cursor) ReadWhile(f func(byte) bool) mem.RO {
	start := c.pos
	for !c.AtEnd() && f(c.input.At(c.pos)) {
		c.pos++
	}
	return c.input.Slice(start, c.pos)
}

// Slice returns a view of the input between offsets pos and end.
func (c *Cursor) Slice(pos, end int) mem.RO { return c.input.Slice(pos, end) }

// LineCol returns the line and column of the given input offset.
func (c *Cursor) LineCol(pos int) LineCol {
	pos = min(pos, c.input.Len())
	lc := LineCol{Line: 1}
	for i := 0; i < pos; i++ {
		if c.input.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}

// Location returns the complete location of span in the input of c.
func (c *Cursor) Location(span Span) Location {
	return Location{Span: span, First: c.LineCol(span.Pos), Last: c.LineCol(span.End)}
}

// IsSpace reports whether ch is a JSON whitespace byte.
func IsSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

// IsDigit reports whether ch is an ASCII decimal digit.
func IsDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
