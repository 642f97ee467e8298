// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"strconv"

	"github.com/creachadair/jparse"

	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit used by a Parser whose MaxDepth is 0.
const DefaultMaxDepth = 10000

// A Parser carries settings for parsing JSON text into values.
// A zero value is ready for use with default settings.
type Parser struct {
	// MaxDepth is the maximum nesting depth of objects and arrays. If zero,
	// DefaultMaxDepth is used; if negative, nesting is unlimited.
	MaxDepth int

	// StrictLiterals, if true, rejects a true, false, or null constant that is
	// immediately followed by another name character, as in "nullable".
	// By default the constant is matched by its prefix alone and the rest of
	// the input is left for whatever parses next.
	StrictLiterals bool

	// RequireEOF, if true, rejects any non-whitespace input that follows the
	// first complete value. By default trailing input is ignored.
	RequireEOF bool
}

// Parse parses a single value from the front of text with default settings.
func Parse(text string) (Value, error) {
	var p Parser
	return p.Parse(text)
}

// ParseBytes parses a single value from the front of data with default
// settings.
func ParseBytes(data []byte) (Value, error) {
	var p Parser
	return p.ParseBytes(data)
}

// Parse parses a single value from the front of text using the settings from
// p. If the input is malformed, no value is returned; the error either
// matches jparse.ErrOutOfRange or has concrete type *jparse.SyntaxError.
func (p Parser) Parse(text string) (Value, error) {
	return p.parse(jparse.NewCursor(text))
}

// ParseBytes parses a single value from the front of data using the settings
// from p. The contents of data are copied and need not outlive the call.
func (p Parser) ParseBytes(data []byte) (Value, error) {
	return p.parse(jparse.NewCursorBytes(data))
}

func (p Parser) parse(c *jparse.Cursor) (_ Value, err error) {
	ps := &parseState{c: c, maxDepth: p.MaxDepth, strict: p.StrictLiterals}
	if ps.maxDepth == 0 {
		ps.maxDepth = DefaultMaxDepth
	}
	defer recoverParseError(&err)

	v := ps.parseValue(0)
	if p.RequireEOF {
		c.SkipWhitespace()
		if ch, err := c.Peek(); err == nil {
			panic(ps.syntaxError(c.Pos(), nil, "unexpected %q after value", ch))
		}
	}
	return v, nil
}

// parseState is the state of a single parse. Failures unwind the recursion by
// panicking with a *jparse.SyntaxError or a rangeError, which are recovered
// at the top level by recoverParseError.
type parseState struct {
	c        *jparse.Cursor
	maxDepth int
	strict   bool
}

type rangeError struct{ error }

func (r rangeError) Unwrap() error { return r.error }

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *jparse.SyntaxError:
			*errp = err
		case rangeError:
			*errp = err.error
		default:
			panic(perr)
		}
	}
}

func (ps *parseState) syntaxError(pos int, err error, msg string, args ...any) *jparse.SyntaxError {
	return jparse.NewSyntaxError(ps.c, pos, err, msg, args...)
}

func (ps *parseState) peek() byte {
	ch, err := ps.c.Peek()
	if err != nil {
		panic(rangeError{err})
	}
	return ch
}

func (ps *parseState) advance() byte {
	ch, err := ps.c.Advance()
	if err != nil {
		panic(rangeError{err})
	}
	return ch
}

// parseValue consumes a single value of any kind. The depth is the number of
// objects and arrays enclosing the value.
func (ps *parseState) parseValue(depth int) Value {
	ps.c.SkipWhitespace()
	pos := ps.c.Pos()
	switch ch := ps.peek(); {
	case ch == '"':
		return String(ps.parseString())
	case ch == '{':
		return ps.parseObject(depth + 1)
	case ch == '[':
		return ps.parseArray(depth + 1)
	case ch == '-' || jparse.IsDigit(ch):
		return ps.parseNumber()
	case ps.c.HasPrefix("true"):
		ps.parseLiteral("true")
		return Bool(true)
	case ps.c.HasPrefix("false"):
		ps.parseLiteral("false")
		return Bool(false)
	case ps.c.HasPrefix("null"):
		ps.parseLiteral("null")
		return Null{}
	default:
		panic(ps.syntaxError(pos, nil, "unexpected %q", ch))
	}
}

// parseLiteral consumes the constant name, which the caller has already
// matched at the current position.
func (ps *parseState) parseLiteral(name string) {
	if err := ps.c.Skip(len(name)); err != nil {
		panic(rangeError{err})
	}
	if !ps.strict {
		return
	}
	if ch, err := ps.c.Peek(); err == nil && isNameByte(ch) {
		panic(ps.syntaxError(ps.c.Pos(), nil, "unexpected %q after %s", ch, name))
	}
}

// parseString consumes a quoted string and returns its decoded text.
// Precondition: the next byte is '"'.
func (ps *parseState) parseString() string {
	ps.advance()
	start := ps.c.Pos()
	for {
		switch ps.advance() {
		case '\\':
			ps.advance() // the escaped byte, whatever it is
		case '"':
			end := ps.c.Pos() - 1
			s, err := jparse.Unescape(ps.c.Slice(start, end))
			if err != nil {
				panic(ps.syntaxError(start, err, "invalid string: %v", err))
			}
			return s
		}
	}
}

// parseKey consumes the quoted key of an object member.
func (ps *parseState) parseKey() string {
	if ch := ps.peek(); ch != '"' {
		panic(ps.syntaxError(ps.c.Pos(), nil, "expected string key, got %q", ch))
	}
	return ps.parseString()
}

// parseNumber consumes a run of digits, decimal points, and minus signs, and
// returns the integer denoted by its longest leading integer prefix. Thus
// "3.14" is 3 and "-007" is -7.
func (ps *parseState) parseNumber() Number {
	ps.c.SkipWhitespace()
	pos := ps.c.Pos()
	text := ps.c.ReadWhile(isNumberByte)
	z, err := leadingInt(text)
	if err != nil {
		panic(ps.syntaxError(pos, err, "invalid number %q", text.StringCopy()))
	}
	return Number(z)
}

// parseObject consumes an object and its members.
// Precondition: the next byte is '{'.
func (ps *parseState) parseObject(depth int) *Object {
	ps.checkDepth(depth)
	ps.advance()
	obj := &Object{members: make(map[string]Value)}
	for {
		ps.c.SkipWhitespace()
		if ps.peek() == '}' {
			break
		}
		key := ps.parseKey()
		ps.c.SkipWhitespace()
		if pos := ps.c.Pos(); ps.advance() != ':' {
			panic(ps.syntaxError(pos, nil, "expected ':' after key %q", key))
		}
		obj.set(key, ps.parseValue(depth))
		ps.skipComma()
	}
	ps.advance()
	return obj
}

// parseArray consumes an array and its elements.
// Precondition: the next byte is '['.
func (ps *parseState) parseArray(depth int) Array {
	ps.checkDepth(depth)
	ps.advance()
	arr := Array{}
	for {
		ps.c.SkipWhitespace()
		if ps.peek() == ']' {
			break
		}
		arr = append(arr, ps.parseValue(depth))
		ps.skipComma()
	}
	ps.advance()
	return arr
}

// skipComma consumes a single comma following an element, if one is present.
// A missing separator is not an error here; a doubled one fails when the
// next element is parsed.
func (ps *parseState) skipComma() {
	ps.c.SkipWhitespace()
	if ch, err := ps.c.Peek(); err == nil && ch == ',' {
		ps.c.Advance()
	}
}

func (ps *parseState) checkDepth(depth int) {
	if ps.maxDepth > 0 && depth > ps.maxDepth {
		panic(ps.syntaxError(ps.c.Pos(), jparse.ErrDepthLimit,
			"nesting depth exceeds %d", ps.maxDepth))
	}
}

var errNoDigits = errors.New("no leading integer")

// leadingInt parses the longest prefix of text consisting of an optional sign
// followed by decimal digits, ignoring the remainder.
func leadingInt(text mem.RO) (int64, error) {
	n := 0
	if n < text.Len() && (text.At(n) == '-' || text.At(n) == '+') {
		n++
	}
	digits := n
	for n < text.Len() && jparse.IsDigit(text.At(n)) {
		n++
	}
	if n == digits {
		return 0, errNoDigits
	}
	z, err := strconv.ParseInt(text.SliceTo(n).StringCopy(), 10, 64)
	if err != nil {
		return 0, err.(*strconv.NumError).Err
	}
	return z, nil
}

func isNumberByte(ch byte) bool { return ch == '-' || ch == '.' || jparse.IsDigit(ch) }

func isNameByte(ch byte) bool {
	return ch == '_' || jparse.IsDigit(ch) || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
