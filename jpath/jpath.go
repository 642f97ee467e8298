// Package jpath implements a minimal JSONPath expression language for
// selecting values from a parsed JSON tree.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = INDEX ["," INDEX ...]

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
  (subset: no slices, scripts, or filters)
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", t, err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

// MustParse parses s as a JSONPath expression, and panics if it is invalid.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member, Recur:
			if s.Quoted {
				fmt.Fprintf(&buf, "%s'%s'", s.Op, s.Name)
			} else {
				fmt.Fprint(&buf, s.Op, s.Name)
			}
		case Index:
			parts := make([]string, len(s.Index))
			for i, z := range s.Index {
				parts[i] = strconv.Itoa(z)
			}
			fmt.Fprintf(&buf, "[%s]", strings.Join(parts, ","))
		case Select:
			if s.Quoted {
				fmt.Fprintf(&buf, "['%s']", s.Name)
			} else {
				fmt.Fprintf(&buf, "[%s]", s.Name)
			}
		}
	}
	return buf.String()
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Recur, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		return Step{Op: Member, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var out Step
		var u string
		if m := indexRE.FindStringSubmatch(t); m != nil {
			out.Op = Index
			for _, z := range strings.Split(m[1], ",") {
				v, err := strconv.Atoi(z)
				if err != nil {
					return Step{}, t, fmt.Errorf("invalid index: %w", err)
				}
				out.Index = append(out.Index, v)
			}
			u = t[len(m[0]):]
		} else {
			name, quoted, rest, err := parseName(t)
			if err != nil {
				return Step{}, t, fmt.Errorf("invalid value: %w", err)
			}
			out = Step{Op: Select, Name: name, Quoted: quoted}
			u = rest
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return out, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (name string, quoted bool, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return "*", false, t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], false, s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], true, s[len(m[0]):], nil
	}
	return "", false, s, errors.New("invalid name")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+(?:,-?\d+)*)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // member lookup: .name
	Recur             // recursive member lookup: ..name
	Index             // array index lookup: [i,j,...]
	Select            // bracketed member lookup: [name] or ['name']
)

var opText = map[Op]string{
	Invalid: "invalid",
	Member:  ".",
	Recur:   "..",
	Index:   "index",
	Select:  "select",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op     Op
	Name   string // for Member, Recur, Select; "*" is a wildcard unless Quoted
	Quoted bool   // whether Name was written in single quotes
	Index  []int  // for Index; negative offsets count from the end
}

// IsWildcard reports whether s matches every member or element.
func (s Step) IsWildcard() bool { return s.Name == "*" && !s.Quoted }
