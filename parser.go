// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// MaxDepth is the maximum nesting depth of arrays and objects the parser
// will accept.
const MaxDepth = 512

// Parse parses data as a single JSON document and returns its value tree.
// The document may be surrounded by whitespace, but any other byte outside
// it is an error. In case of error the result is nil and the error has
// concrete type *SyntaxError; no partial value is returned.
func Parse(data []byte) (Value, error) { return parse(mem.B(data)) }

// ParseString parses s as a single JSON document; see Parse.
func ParseString(s string) (Value, error) { return parse(mem.S(s)) }

func parse(in mem.RO) (Value, error) {
	p := &parser{c: &Cursor{in: in}}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	// A number has no terminator of its own, so the byte that ended it is
	// still current and has been checked by no one. At top level, only
	// whitespace may directly follow a bare number.
	if _, ok := v.(Number); ok {
		if b, ok := p.c.Current(); ok && !isSpace(b) {
			return nil, unexpectedByte(b, p.c.Index())
		}
	}
	for {
		b, off, err := p.c.Read()
		if err == io.EOF {
			break
		} else if !isSpace(b) {
			return nil, unexpectedByte(b, off)
		}
	}
	p.checkBalanced()
	return v, nil
}

// A parser is the state of one parse session: the input cursor and the
// container nesting depth. Sub-parsers share the session; nothing outlives
// the call to parse that created it.
type parser struct {
	c     *Cursor
	depth int
}

// enter records entry into a container whose opening byte is at off,
// reporting ErrTooDeep if the nesting limit would be exceeded. A successful
// enter must be paired with a deferred leave, so that the counter is
// restored on every exit path including failures.
func (p *parser) enter(off int) error {
	if p.depth >= MaxDepth {
		return syntaxErr(off, ErrTooDeep)
	}
	p.depth++
	return nil
}

func (p *parser) leave() { p.depth-- }

// checkBalanced verifies that every container parser restored the depth
// counter. A violation is a bug in the parser, not in the input.
func (p *parser) checkBalanced() {
	if p.depth != 0 {
		panic(fmt.Sprintf("jparse: depth is %d after top-level value", p.depth))
	}
}

// nextSig reads past whitespace and returns the next significant byte of
// input and its offset.
func (p *parser) nextSig() (byte, int, error) {
	for {
		b, off, err := p.c.Read()
		if err == io.EOF {
			return 0, off, unexpectedEOF(off)
		} else if !isSpace(b) {
			return b, off, nil
		}
	}
}

// parseValue parses a value beginning at the next significant byte.
func (p *parser) parseValue() (Value, error) {
	b, off, err := p.nextSig()
	if err != nil {
		return nil, err
	}
	return p.parseValueAt(b, off)
}

// parseValueAt dispatches on a significant byte b already read at offset
// off.
func (p *parser) parseValueAt(b byte, off int) (Value, error) {
	switch {
	case b == '"':
		s, err := p.c.ReadQuoted()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case b == '{':
		return p.parseObject(off)
	case b == '[':
		return p.parseArray(off)
	case b == 't':
		return p.parseLiteral("true", Bool(true))
	case b == 'f':
		return p.parseLiteral("false", Bool(false))
	case b == 'n':
		return p.parseLiteral("null", Null{})
	case b == '-' || isDigit(b):
		return p.parseNumber(b, off)
	}
	return nil, unexpectedByte(b, off)
}

// parseLiteral matches the remaining bytes of the constant lit, whose first
// byte has already been consumed, and returns v.
func (p *parser) parseLiteral(lit string, v Value) (Value, error) {
	for i := 1; i < len(lit); i++ {
		b, off, err := p.c.Read()
		if err == io.EOF {
			return nil, unexpectedEOF(off)
		} else if b != lit[i] {
			return nil, unexpectedByte(b, off)
		}
	}
	return v, nil
}

// The control-character classes of the number grammar. The class of the most
// recent grammar-significant byte decides which bytes may legally follow.
type numClass int

const (
	numOperand numClass = iota // integer digits, and the leading minus
	numDecimal                 // the decimal point
	numExpMark                 // the exponent marker e or E
	numExpSign                 // the sign after the exponent marker
)

// parseNumber recognizes a number whose first byte b was read at offset off
// and returns its exact source text. A number has no closing delimiter: it
// ends at the first whitespace, comma, close bracket, or close brace, which
// is left unconsumed as the cursor's current byte, or at end of input.
func (p *parser) parseNumber(b byte, off int) (Value, error) {
	var (
		class = numOperand
		ndig  int  // digits seen since the last class change
		zero  bool // the integer part begins with a zero
	)
	if b != '-' {
		ndig, zero = 1, b == '0'
	}

	start, end := off, off+1
	for {
		b, off, err := p.c.Read()
		if err == io.EOF {
			if ndig == 0 {
				return nil, unexpectedEOF(off)
			}
			return Number(p.c.Text(start, end)), nil
		}
		switch {
		case isDigit(b):
			if zero {
				return nil, syntaxErr(off, ErrLeadingZero)
			}
			zero = b == '0' && ndig == 0 && class == numOperand
			ndig++

		case b == '.':
			if ndig == 0 || class != numOperand {
				return nil, unexpectedByte(b, off)
			}
			class, ndig, zero = numDecimal, 0, false

		case b == 'e' || b == 'E':
			if ndig == 0 || class > numDecimal {
				return nil, unexpectedByte(b, off)
			}
			class, ndig, zero = numExpMark, 0, false

		case b == '+' || b == '-':
			if ndig != 0 || class != numExpMark {
				return nil, unexpectedByte(b, off)
			}
			class = numExpSign

		case isSpace(b) || b == ',' || b == ']' || b == '}':
			if ndig == 0 {
				return nil, unexpectedByte(b, off)
			}
			return Number(p.c.Text(start, off)), nil

		default:
			return nil, unexpectedByte(b, off)
		}
		end = off + 1
	}
}

// valueEnd describes what the parser found after a container element.
type valueEnd int

const (
	endSep   valueEnd = iota // a separator comma
	endClose                 // the container's closing byte
	endSpace                 // whitespace; a separator may still follow
)

// afterValue decides the transition out of a completed container element.
// A number leaves its terminating byte current, so it is examined directly
// without another read; every other shape consumes its own final byte, in
// which case the decision is deferred until more input is read.
func (p *parser) afterValue(v Value, close byte) (valueEnd, error) {
	if _, ok := v.(Number); !ok {
		return endSpace, nil
	}
	b, ok := p.c.Current()
	if !ok {
		return 0, unexpectedEOF(p.c.Index())
	}
	switch {
	case b == ',':
		return endSep, nil
	case b == close:
		return endClose, nil
	case isSpace(b):
		return endSpace, nil
	}
	return 0, unexpectedByte(b, p.c.Index())
}

// The states of the array parser.
type arrayState int

const (
	arrValueOrEnd arrayState = iota // before the first element
	arrValue                        // after a separator
	arrSepOrEnd                     // after an element
)

// parseArray recognizes an array whose opening bracket was read at offset
// off.
func (p *parser) parseArray(off int) (Value, error) {
	if err := p.enter(off); err != nil {
		return nil, err
	}
	defer p.leave()

	arr := Array{}
	st := arrValueOrEnd
	for {
		switch st {
		case arrValueOrEnd, arrValue:
			b, boff, err := p.nextSig()
			if err != nil {
				return nil, err
			}
			if b == ']' && st == arrValueOrEnd {
				return arr, nil // empty array
			}
			v, err := p.parseValueAt(b, boff)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)

			end, err := p.afterValue(v, ']')
			if err != nil {
				return nil, err
			}
			switch end {
			case endSep:
				st = arrValue
			case endClose:
				return arr, nil
			default:
				st = arrSepOrEnd
			}

		case arrSepOrEnd:
			b, boff, err := p.nextSig()
			if err != nil {
				return nil, err
			}
			switch b {
			case ',':
				st = arrValue
			case ']':
				return arr, nil
			default:
				return nil, unexpectedByte(b, boff)
			}
		}
	}
}

// The states of the object parser.
type objectState int

const (
	objKeyOrEnd objectState = iota // before the first member
	objKey                         // after a separator
	objColon                       // after a member key
	objValue                       // after a colon
	objSepOrEnd                    // after a member's value
)

// parseObject recognizes an object whose opening brace was read at offset
// off.
func (p *parser) parseObject(off int) (Value, error) {
	if err := p.enter(off); err != nil {
		return nil, err
	}
	defer p.leave()

	obj := Object{}
	var key string // the pending member key, valid in objColon and objValue
	st := objKeyOrEnd
	for {
		switch st {
		case objKeyOrEnd, objKey:
			b, boff, err := p.nextSig()
			if err != nil {
				return nil, err
			}
			if b == '}' && st == objKeyOrEnd {
				return obj, nil // empty object
			} else if b != '"' {
				return nil, unexpectedByte(b, boff)
			}
			key, err = p.c.ReadQuoted()
			if err != nil {
				return nil, err
			}
			st = objColon

		case objColon:
			b, boff, err := p.nextSig()
			if err != nil {
				return nil, err
			} else if b != ':' {
				return nil, unexpectedByte(b, boff)
			}
			st = objValue

		case objValue:
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			obj[key] = v // last key wins

			end, err := p.afterValue(v, '}')
			if err != nil {
				return nil, err
			}
			switch end {
			case endSep:
				st = objKey
			case endClose:
				return obj, nil
			default:
				st = objSepOrEnd
			}

		case objSepOrEnd:
			b, boff, err := p.nextSig()
			if err != nil {
				return nil, err
			}
			switch b {
			case ',':
				st = objKey
			case '}':
				return obj, nil
			default:
				return nil, unexpectedByte(b, boff)
			}
		}
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\r' || b == '\n' || b == '\t' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
