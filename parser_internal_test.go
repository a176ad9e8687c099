// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"go4.org/mem"
)

func TestDepthRestored(t *testing.T) {
	// Container parsers must restore the depth counter on every exit path,
	// including failures partway through a container.
	inputs := []string{
		`[[1, 2], {"a": [true]}]`,
		`[[1, 2], {"a": [true`,
		`[1, [2, [3, [4]]]`,
		`{"a": {"b": [0]}}`,
		`{"a": {"b": [0`,
		`[{`,
		`[[[":-)"`,
	}
	for _, input := range inputs {
		p := &parser{c: &Cursor{in: mem.S(input)}}
		p.parseValue()
		if p.depth != 0 {
			t.Errorf("Input: %#q: depth after parse is %d, want 0", input, p.depth)
		}
	}
}

func TestUnbalancedDepthPanics(t *testing.T) {
	p := &parser{depth: 3}
	mtest.MustPanic(t, func() { p.checkBalanced() })
}
