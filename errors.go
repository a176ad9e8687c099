// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"

	"github.com/creachadair/jparse/internal/escape"
)

// Categories of syntax errors reported by the parser. Every *SyntaxError
// wraps exactly one of these values; use errors.Is to discriminate.
var (
	// ErrUnexpectedByte: a byte violates the grammar at its position.
	ErrUnexpectedByte = errors.New("unexpected character")

	// ErrUnexpectedEOF: the input ended while a construct was incomplete.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrLeadingZero: the integer part of a number has a redundant leading
	// zero, e.g. "01" or "-00.5".
	ErrLeadingZero = errors.New("number has a leading zero")

	// ErrTooDeep: the nesting of arrays and objects exceeds MaxDepth.
	ErrTooDeep = errors.New("too deeply nested")

	// ErrUnterminated: a string was still open at the end of input.
	ErrUnterminated = errors.New("unterminated string")

	// String decoding failures, surfaced unchanged from the cursor.
	ErrInvalidEscape  = escape.ErrInvalidEscape
	ErrInvalidUnicode = escape.ErrInvalidUnicode
	ErrInvalidUTF8    = escape.ErrInvalidUTF8
)

// A SyntaxError reports the first violation of the JSON grammar found in the
// input, at the byte offset where it was detected. For an ErrUnexpectedEOF
// the offset is the length of the input.
type SyntaxError struct {
	Offset int   // byte offset of the violation, 0-based
	Err    error // the condition detected; wraps one of the Err* categories
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErr(off int, err error) error { return &SyntaxError{Offset: off, Err: err} }

func unexpectedByte(b byte, off int) error {
	return &SyntaxError{Offset: off, Err: fmt.Errorf("%w %q", ErrUnexpectedByte, b)}
}

func unexpectedEOF(off int) error {
	return &SyntaxError{Offset: off, Err: ErrUnexpectedEOF}
}
