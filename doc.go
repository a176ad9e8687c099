// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a strict parser for JSON values.
//
// # Parsing
//
// Call Parse with a complete JSON document to obtain its value tree:
//
//	v, err := jparse.Parse(data)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The concrete type of a parsed Value is one of Null, Bool, Number, String,
// Array, or Object, corresponding to the shapes of the JSON grammar. Use a
// type switch to traverse the tree:
//
//	switch t := v.(type) {
//	case jparse.Object:
//	   log.Printf("Object with %d members", len(t))
//	case jparse.Array:
//	   log.Printf("Array with %d elements", len(t))
//	case jparse.Number:
//	   log.Printf("Number written as %s", t)
//	}
//
// Numbers are not converted to a machine type: a Number holds the exact,
// validated source text of the literal, so values of arbitrary size and
// precision survive parsing unchanged. Strings are fully unescaped. An
// Object is a plain map from member key to value; if a document repeats a
// key, the value of the last occurrence wins.
//
// # Errors
//
// The parser validates its input strictly and stops at the first violation
// of the grammar. Errors have concrete type *SyntaxError and report the byte
// offset of the offending input along with a category that can be tested
// with errors.Is:
//
//	if _, err := jparse.ParseString("01"); errors.Is(err, jparse.ErrLeadingZero) {
//	   log.Print("numbers may not have redundant leading zeroes")
//	}
//
// No partial value is ever returned: a malformed byte invalidates the whole
// document.
//
// # Limits
//
// Nesting of arrays and objects is bounded at MaxDepth levels, and inputs
// that exceed the bound are rejected with ErrTooDeep. A parse runs
// synchronously to completion; separate calls share no state and may run
// concurrently on independent inputs.
package jparse
