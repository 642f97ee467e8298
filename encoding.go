// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"strings"

	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unescape decodes the body of a string literal, without its enclosing
// quotation marks. Only the escapes \" \\ \n \r \t are translated; any other
// escaped character stands for itself. Unescape reports an error if src ends
// with an incomplete escape.
func Unescape(src mem.RO) (string, error) {
	dec, err := escape.Unquote(src)
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Unquote decodes a quoted string literal. Double quotation marks are
// removed, and escape sequences are replaced as described for Unescape.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return Unescape(mem.S(src[1 : len(src)-1]))
}
