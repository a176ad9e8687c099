// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jparse/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", "\"\\u0000\\u0001\\u0002\""},
		{`back\slash`, `"back\\slash"`},
		{`say "when"`, `"say \"when\""`},
		{"ünïcödé", `"ünïcödé"`},
		{"\U0001d11e", "\"\U0001d11e\""},
	}
	for _, test := range tests {
		if got := escape.Quote(test.input); got != test.want {
			t.Errorf("Quote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"no escapes here", "no escapes here"},
		{`a\"b\\c\/d`, `a"b\c/d`},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`A`, "A"},
		{`é`, "é"},
		{` `, " "},
		{`tail\n`, "tail\n"},
		{`\tlead`, "\tlead"},
		{`𝄞`, "\U0001d11e"},
		{`before 😀 after`, "before \U0001f600 after"},
		{"plain ünïcödé", "plain ünïcödé"},
	}
	for _, test := range tests {
		got, _, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", test.input, err)
		} else if string(got) != test.want {
			t.Errorf("Unquote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		off   int
	}{
		{`\`, escape.ErrInvalidEscape, 0},
		{`\q`, escape.ErrInvalidEscape, 0},
		{`ab\q`, escape.ErrInvalidEscape, 2},
		{`\u`, escape.ErrInvalidUnicode, 0},
		{`\u123`, escape.ErrInvalidUnicode, 0},
		{`\uXYZW`, escape.ErrInvalidUnicode, 0},
		{`ok\uXYZW`, escape.ErrInvalidUnicode, 2},
		{`\uD834`, escape.ErrInvalidUnicode, 0},
		{`\uD834\t`, escape.ErrInvalidUnicode, 0},
		{`\uD834\uD834`, escape.ErrInvalidUnicode, 0},
		{`\uDD1E`, escape.ErrInvalidUnicode, 0},
		{"\x80", escape.ErrInvalidUTF8, 0},
		{"ab\xffcd", escape.ErrInvalidUTF8, 2},
		{"ab\xc3\x28", escape.ErrInvalidUTF8, 2},
		{"pre\\npost\xfe", escape.ErrInvalidUTF8, 9},
	}
	for _, test := range tests {
		got, off, err := escape.Unquote(mem.S(test.input))
		if err == nil {
			t.Errorf("Unquote %#q: got %#q, want error", test.input, got)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("Unquote %#q: error %v, want %v", test.input, err, test.kind)
		}
		if off != test.off {
			t.Errorf("Unquote %#q: offset %d, want %d", test.input, off, test.off)
		}
	}
}
