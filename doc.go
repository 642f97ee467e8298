// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements the input side of a small JSON parser: a cursor
// over the source text, source locations, and the errors reported when the
// input is malformed.
//
// The value model and the recursive-descent parser that builds it live in
// package ast:
//
//	v, err := ast.Parse(text)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Cursors
//
// A Cursor holds an immutable input buffer and a forward-only read position.
// Peek and Advance report an error matching ErrOutOfRange when the input is
// exhausted:
//
//	c := jparse.NewCursor(text)
//	c.SkipWhitespace()
//	if ch, err := c.Peek(); errors.Is(err, jparse.ErrOutOfRange) {
//	   log.Print("No more input")
//	} else {
//	   log.Printf("Next byte: %q", ch)
//	}
//
// # Errors
//
// Parsing reports one of two kinds of failure. A read past the end of the
// input (an unterminated string, a truncated object) reports an error for
// which errors.Is(err, ErrOutOfRange) is true. A violated structural
// expectation (an unrecognized value, a missing ":" after an object key)
// reports an error of concrete type *SyntaxError, which carries the offset
// and line/column position of the offending input.
//
// # Strings
//
// String literals support a restricted set of escapes: \" \\ \n \r and \t.
// Any other escaped character, including the 'u' of a Unicode escape, stands
// for itself. Quote produces standard JSON string text for output.
package jparse
