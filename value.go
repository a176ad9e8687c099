// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"maps"
	"slices"
	"strings"

	"github.com/creachadair/jparse/internal/escape"
)

// A Value is a generic JSON value. The concrete type of a Value is one of
// Null, Bool, Number, String, Array, or Object.
//
// The parser does not retain the trees it returns, but arrays and objects
// share structure with their children; a caller that holds a tree should
// treat it as read-only.
type Value interface {
	// JSON renders the value as JSON source text.
	JSON() string
}

// Null represents the JSON null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// A Bool is a JSON Boolean constant.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is the unevaluated text of a JSON number. The text always matches
// the number grammar exactly as it appeared in the input; it is never
// converted to a machine type, so magnitude and precision are preserved.
type Number string

// JSON satisfies the Value interface.
func (n Number) JSON() string { return string(n) }

// A String is a JSON string value with all escape sequences resolved.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return escape.Quote(string(s)) }

// An Array is an ordered sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object maps member keys to values. Keys are unique by construction:
// when a document repeats a key, the value of its last occurrence wins.
type Object map[string]Value

// JSON satisfies the Value interface. Members are rendered in lexicographic
// key order so that the output is deterministic.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escape.Quote(key))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}
