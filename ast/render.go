// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EmptyKeyMarker is written by the renderer in place of an empty object key.
const EmptyKeyMarker = "NaN"

// A Renderer carries the settings for rendering values as human-readable
// text. A zero value is ready for use with default settings.
//
// The rendered form is for diagnostics only. String contents are written
// without escaping, so the output is not in general valid JSON; use the JSON
// method of a Value for that.
type Renderer struct {
	// Indent is the text used for each level of nesting. If empty, two
	// spaces are used.
	Indent string
}

func (r Renderer) indent() string {
	if r.Indent == "" {
		return "  "
	}
	return r.Indent
}

// Render writes a human-readable representation of v to w with default
// settings.
func Render(w io.Writer, v Value) error {
	var r Renderer
	return r.Render(w, v)
}

// RenderToString renders v to a string with default settings.
// In case of error in rendering, it returns an empty string.
func RenderToString(v Value) string {
	var sb strings.Builder
	if Render(&sb, v) != nil {
		return ""
	}
	return sb.String()
}

// Render writes a human-readable representation of v to w using the
// settings from r. Objects are written one member per line in key order and
// arrays one element per line, each nested level indented. It reports an
// error if v or any value nested within it is nil.
func (r Renderer) Render(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	if err := r.renderValue(bw, v, ""); err != nil {
		return err
	}
	return bw.Flush()
}

func (r Renderer) renderValue(w *bufio.Writer, v Value, indent string) error {
	switch t := v.(type) {
	case *Object:
		if t.Len() == 0 {
			w.WriteString("{}")
			return nil
		}
		w.WriteString("{\n")
		inner := indent + r.indent()
		for key, elt := range t.All() {
			w.WriteString(inner)
			if key == "" {
				w.WriteString(EmptyKeyMarker)
			} else {
				w.WriteString(`"` + key + `"`)
			}
			w.WriteString(": ")
			if err := r.renderValue(w, elt, inner); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			w.WriteByte('\n')
		}
		w.WriteString(indent + "}")

	case Array:
		if len(t) == 0 {
			w.WriteString("[]")
			return nil
		}
		w.WriteString("[\n")
		inner := indent + r.indent()
		for i, elt := range t {
			w.WriteString(inner)
			if err := r.renderValue(w, elt, inner); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
			w.WriteByte('\n')
		}
		w.WriteString(indent + "]")

	case String:
		w.WriteString(`"` + string(t) + `"`)
	case Number, Bool, Null:
		w.WriteString(t.JSON())
	case nil:
		return errors.New("nil value")
	default:
		return fmt.Errorf("unknown value type %T", v)
	}
	return nil
}
