// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Errors reported by Unquote, intended to be surfaced to the caller
// unchanged. Use errors.Is to discriminate.
var (
	ErrInvalidEscape  = errors.New("invalid escape sequence")
	ErrInvalidUnicode = errors.New("invalid Unicode escape")
	ErrInvalidUTF8    = errors.New("invalid UTF-8 encoding")
)

// Unquote decodes a byte sequence containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Adjacent
// \u escapes encoding a valid surrogate pair are combined into a single
// rune. An illegal escape, an unpaired surrogate half, or content that is
// not valid UTF-8 is an error; when err != nil, off is the offset within src
// at which the problem was detected.
func Unquote(src mem.RO) (dec []byte, off int, err error) {
	dec = make([]byte, 0, src.Len())
	pos := 0 // offset of src[0] within the original input
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			if j := invalidUTF8(src); j >= 0 {
				return nil, pos + j, ErrInvalidUTF8
			}
			return mem.Append(dec, src), 0, nil
		}

		pre := src.SliceTo(i)
		if j := invalidUTF8(pre); j >= 0 {
			return nil, pos + j, ErrInvalidUTF8
		}
		dec = mem.Append(dec, pre)

		// src.At(i) is a backslash; decode one escape sequence.
		esc := pos + i
		src, pos = src.SliceFrom(i+1), pos+i+1
		if src.Len() == 0 {
			return nil, esc, fmt.Errorf("%w: incomplete escape", ErrInvalidEscape)
		}
		b := src.At(0)
		src, pos = src.SliceFrom(1), pos+1
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, n, uerr := decodeHexRune(src)
			if uerr != nil {
				return nil, esc, uerr
			}
			var buf [utf8.UTFMax]byte
			dec = append(dec, buf[:utf8.EncodeRune(buf[:], r)]...)
			src, pos = rest, pos+n
		default:
			return nil, esc, fmt.Errorf("%w: %q after backslash", ErrInvalidEscape, b)
		}
	}
}

// decodeHexRune decodes the four hex digits of a \u escape whose "\u" prefix
// has already been consumed. A high surrogate consumes a second, adjacent \u
// escape for the low half of the pair. It returns the decoded rune, the
// unconsumed remainder of src, and the number of bytes consumed.
func decodeHexRune(src mem.RO) (rune, mem.RO, int, error) {
	v, err := parseHex(src)
	if err != nil {
		return 0, src, 0, err
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, src.SliceFrom(4), 4, nil
	} else if r >= 0xdc00 {
		return 0, src, 0, fmt.Errorf("%w: unpaired low surrogate %04x", ErrInvalidUnicode, v)
	}

	// A high surrogate must be directly followed by a low surrogate escape.
	rest := src.SliceFrom(4)
	if rest.Len() < 2 || rest.At(0) != '\\' || rest.At(1) != 'u' {
		return 0, src, 0, fmt.Errorf("%w: unpaired high surrogate %04x", ErrInvalidUnicode, v)
	}
	w, err := parseHex(rest.SliceFrom(2))
	if err != nil {
		return 0, src, 0, err
	}
	c := utf16.DecodeRune(r, rune(w))
	if c == utf8.RuneError {
		return 0, src, 0, fmt.Errorf("%w: invalid surrogate pair %04x %04x", ErrInvalidUnicode, v, w)
	}
	return c, rest.SliceFrom(6), 10, nil
}

// parseHex decodes the first four bytes of data as hexadecimal digits.
func parseHex(data mem.RO) (int64, error) {
	if data.Len() < 4 {
		return 0, fmt.Errorf("%w: incomplete escape", ErrInvalidUnicode)
	}
	var v int64
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("%w: invalid hex digit %q", ErrInvalidUnicode, b)
		}
	}
	return v, nil
}

// invalidUTF8 returns the offset of the first byte of src that does not
// begin a valid UTF-8 encoding, or -1 if the whole input is valid.
func invalidUTF8(src mem.RO) int {
	off := 0
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		if r == utf8.RuneError && n <= 1 {
			return off
		}
		src = src.SliceFrom(n)
		off += n
	}
	return -1
}
