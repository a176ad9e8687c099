// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"io"

	"github.com/creachadair/jparse/internal/escape"
	"go4.org/mem"
)

// A Cursor is a single-lookahead reader over an immutable byte sequence.
// Read advances one byte at a time, and the byte most recently read remains
// available from Current until the next Read. That makes Current a one-byte
// pushback register: a parser that recognizes a token only upon seeing the
// byte that follows it can leave that byte current for its caller to
// re-examine, without the byte ever being read twice.
type Cursor struct {
	in  mem.RO
	pos int  // offset of the next unread byte
	eof bool // a Read has already reported io.EOF
}

// NewCursor constructs a cursor reading from data. The input is not copied;
// the caller must not modify it while the cursor is in use.
func NewCursor(data []byte) *Cursor { return &Cursor{in: mem.B(data)} }

// NewCursorString constructs a cursor reading from s.
func NewCursorString(s string) *Cursor { return &Cursor{in: mem.S(s)} }

// Read advances the cursor and returns the next byte of input together with
// its offset. At the end of input Read returns io.EOF with the input length
// as the offset.
func (c *Cursor) Read() (byte, int, error) {
	if c.pos >= c.in.Len() {
		c.eof = true
		return 0, c.pos, io.EOF
	}
	b := c.in.At(c.pos)
	c.pos++
	return b, c.pos - 1, nil
}

// Current returns the byte most recently returned by Read, without
// advancing. It reports false before the first Read and after a Read has
// returned io.EOF.
func (c *Cursor) Current() (byte, bool) {
	if c.eof || c.pos == 0 {
		return 0, false
	}
	return c.in.At(c.pos - 1), true
}

// Index returns the offset of the current byte, or the input length once the
// input is exhausted.
func (c *Cursor) Index() int {
	if c.eof {
		return c.in.Len()
	} else if c.pos == 0 {
		return 0
	}
	return c.pos - 1
}

// Slice returns a copy of the input bytes in the offset range lo ≤ i < hi.
func (c *Cursor) Slice(lo, hi int) []byte { return mem.Append(nil, c.span(lo, hi)) }

// Text returns the input in the offset range lo ≤ i < hi as a string. The
// range must be known to contain only ASCII; no validation is performed.
func (c *Cursor) Text(lo, hi int) string { return c.span(lo, hi).StringCopy() }

func (c *Cursor) span(lo, hi int) mem.RO { return c.in.SliceFrom(lo).SliceTo(hi - lo) }

// ReadQuoted decodes a string literal whose opening quotation mark has
// already been consumed, advancing the cursor through the closing quotation
// mark, which remains the current byte on success. Escape sequences are
// resolved, with adjacent \u escapes forming a surrogate pair combined into
// one rune, and the content is checked for valid UTF-8. Unescaped control
// bytes, illegal escapes, and an unterminated literal are errors.
func (c *Cursor) ReadQuoted() (string, error) {
	start := c.pos
	for {
		b, off, err := c.Read()
		if err == io.EOF {
			return "", syntaxErr(off, ErrUnterminated)
		}
		switch {
		case b == '"':
			dec, n, derr := escape.Unquote(c.span(start, off))
			if derr != nil {
				return "", syntaxErr(start+n, derr)
			}
			return string(dec), nil

		case b == '\\':
			// Skip the escaped byte so that a \" does not end the scan.
			// Unquote checks its legality.
			if _, _, err := c.Read(); err == io.EOF {
				return "", syntaxErr(c.pos, ErrUnterminated)
			}

		case b < ' ':
			return "", unexpectedByte(b, off)
		}
	}
}
