// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/google/go-cmp/cmp"
)

func TestCursor(t *testing.T) {
	c := jparse.NewCursor(" \t{\r\n x")

	c.SkipWhitespace()
	if got := c.Pos(); got != 2 {
		t.Errorf("Pos after SkipWhitespace: got %d, want 2", got)
	}
	if ch, err := c.Peek(); err != nil || ch != '{' {
		t.Errorf("Peek: got (%q, %v), want '{'", ch, err)
	}
	if ch, err := c.Advance(); err != nil || ch != '{' {
		t.Errorf("Advance: got (%q, %v), want '{'", ch, err)
	}
	c.SkipWhitespace()
	if ch, err := c.Advance(); err != nil || ch != 'x' {
		t.Errorf("Advance: got (%q, %v), want 'x'", ch, err)
	}
	if !c.AtEnd() {
		t.Error("AtEnd: got false, want true")
	}

	// Whitespace skipping stops quietly at the end.
	c.SkipWhitespace()

	if ch, err := c.Peek(); !errors.Is(err, jparse.ErrOutOfRange) {
		t.Errorf("Peek at end: got (%q, %v), want %v", ch, err, jparse.ErrOutOfRange)
	}
	if ch, err := c.Advance(); !errors.Is(err, jparse.ErrOutOfRange) {
		t.Errorf("Advance at end: got (%q, %v), want %v", ch, err, jparse.ErrOutOfRange)
	} else if got := jparse.Offset(err); got != 7 {
		t.Errorf("Offset: got %d, want 7", got)
	}
}

func TestCursorEmpty(t *testing.T) {
	for _, c := range []*jparse.Cursor{
		new(jparse.Cursor),
		jparse.NewCursor(""),
		jparse.NewCursorBytes(nil),
	} {
		c.SkipWhitespace()
		if _, err := c.Peek(); !errors.Is(err, jparse.ErrOutOfRange) {
			t.Errorf("Peek: got %v, want %v", err, jparse.ErrOutOfRange)
		}
		if c.HasPrefix("x") {
			t.Error("HasPrefix: got true, want false")
		}
	}
}

func TestCursorPrefix(t *testing.T) {
	c := jparse.NewCursor("nullable")
	if !c.HasPrefix("null") {
		t.Error(`HasPrefix("null"): got false, want true`)
	}
	if c.HasPrefix("nullables") {
		t.Error(`HasPrefix("nullables"): got true, want false`)
	}
	if err := c.Skip(4); err != nil {
		t.Fatalf("Skip(4): unexpected error: %v", err)
	}
	if err := c.Skip(5); !errors.Is(err, jparse.ErrOutOfRange) {
		t.Errorf("Skip(5): got %v, want %v", err, jparse.ErrOutOfRange)
	}
	if got := c.Pos(); got != 4 {
		t.Errorf("Pos after failed Skip: got %d, want 4", got)
	}
	if got := c.ReadWhile(func(b byte) bool { return b != 'l' }).StringCopy(); got != "ab" {
		t.Errorf("ReadWhile: got %q, want %q", got, "ab")
	}
	if got := c.Slice(0, 4).StringCopy(); got != "null" {
		t.Errorf("Slice: got %q, want %q", got, "null")
	}
}

func TestCursorLocation(t *testing.T) {
	c := jparse.NewCursor("{\n  \"a\": 1,\n  \"b\"\n}")
	tests := []struct {
		span jparse.Span
		want string
	}{
		{jparse.Span{Pos: 0, End: 1}, "1:0-1"},
		{jparse.Span{Pos: 4, End: 7}, "2:2-5"},
		{jparse.Span{Pos: 14, End: 19}, "3:2-4:1"},
		{jparse.Span{Pos: 100, End: 100}, "4:1-1"},
	}
	for _, tc := range tests {
		got := c.Location(tc.span).String()
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Location %v (-want, +got):\n%s", tc.span, diff)
		}
	}
}
