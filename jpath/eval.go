package jpath

import "github.com/creachadair/jparse/ast"

// Eval evaluates e against root and returns the values it selects, in
// document order. Steps that name a missing key or an out-of-range index, or
// that do not apply to the kind of value reached, select nothing.
func Eval(root ast.Value, e Expr) []ast.Value {
	cur := []ast.Value{root}
	for _, step := range e {
		var next []ast.Value
		for _, v := range cur {
			next = step.apply(next, v)
		}
		cur = next
	}
	return cur
}

// apply appends to out the values selected by s from v.
func (s Step) apply(out []ast.Value, v ast.Value) []ast.Value {
	switch s.Op {
	case Member, Select:
		return s.selectChildren(out, v)
	case Recur:
		walk(v, func(u ast.Value) { out = s.selectChildren(out, u) })
		return out
	case Index:
		arr, ok := v.(ast.Array)
		if !ok {
			return out
		}
		for _, i := range s.Index {
			if i < 0 {
				i += len(arr)
			}
			if i >= 0 && i < len(arr) {
				out = append(out, arr[i])
			}
		}
		return out
	default:
		return out
	}
}

func (s Step) selectChildren(out []ast.Value, v ast.Value) []ast.Value {
	switch t := v.(type) {
	case *ast.Object:
		if s.IsWildcard() {
			for _, elt := range t.All() {
				out = append(out, elt)
			}
		} else if elt, ok := t.Find(s.Name); ok {
			out = append(out, elt)
		}
	case ast.Array:
		if s.IsWildcard() {
			out = append(out, t...)
		}
	}
	return out
}

// walk calls f for v and each of its descendants in preorder.
func walk(v ast.Value, f func(ast.Value)) {
	f(v)
	switch t := v.(type) {
	case *ast.Object:
		for _, elt := range t.All() {
			walk(elt, f)
		}
	case ast.Array:
		for _, elt := range t {
			walk(elt, f)
		}
	}
}
