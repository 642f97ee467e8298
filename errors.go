// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is reported when a read is attempted at or past the end
	// of the input.
	ErrOutOfRange = errors.New("unexpected end of input")

	// ErrDepthLimit is wrapped by a SyntaxError when nesting exceeds the
	// configured maximum depth.
	ErrDepthLimit = errors.New("maximum nesting depth exceeded")
)

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

// Offset reports the input offset of err, if err or an error it wraps
// carries one. Otherwise it returns -1.
func Offset(err error) int {
	var pe posError
	if errors.As(err, &pe) {
		return pe.pos
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Offset
	}
	return -1
}

// SyntaxError is the concrete type of errors reported for input that violates
// a structural expectation of the grammar.
type SyntaxError struct {
	Offset   int
	Location LineCol
	Message  string

	err error
}

// NewSyntaxError constructs a SyntaxError at offset pos in the input of c.
// If err != nil, the result wraps it.
func NewSyntaxError(c *Cursor, pos int, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Offset:   pos,
		Location: c.LineCol(pos),
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
