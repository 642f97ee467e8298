// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unquote when the input ends with a backslash
// that has no following character.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Unquote decodes a byte slice containing the body of a string literal. The
// input must have the enclosing double quotation marks already removed.
//
// The escapes \" \\ \n \r and \t are replaced by the characters they denote.
// Any other escaped character, including 'u', stands for itself: "\q" decodes
// to "q" and "\u0041" decodes to "u0041".
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}

		// The escaped character may be a multibyte rune, which passes through
		// intact along with the rest of the text.
		switch b := src.At(0); b {
		case 'n':
			dec = append(dec, '\n')
			src = src.SliceFrom(1)
		case 'r':
			dec = append(dec, '\r')
			src = src.SliceFrom(1)
		case 't':
			dec = append(dec, '\t')
			src = src.SliceFrom(1)
		default:
			dec = append(dec, b)
			src = src.SliceFrom(1)
		}
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}
