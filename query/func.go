package query

import (
	"slices"

	"github.com/creachadair/jparse/ast"
)

// Exists returns a selection that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(v ast.Value) bool {
		_, err := q.eval(v)
		return err == nil
	}
}

// Is returns a selection that reports true if its argument has one of the
// given kinds.
func Is(kinds ...ast.Kind) Selection {
	return func(v ast.Value) bool { return v != nil && slices.Contains(kinds, v.Kind()) }
}

// IsNot returns a selection that reports true if its argument has none of the
// given kinds. A nil value is never selected.
func IsNot(kinds ...ast.Kind) Selection {
	return func(v ast.Value) bool { return v != nil && !slices.Contains(kinds, v.Kind()) }
}

// Map constructs a mapping from f. Values whose concrete type is not T are
// passed through unmodified.
func Map[T, U ast.Value](f func(T) U) Mapping {
	return func(v ast.Value) ast.Value {
		if w, ok := v.(T); ok {
			return f(w)
		}
		return v
	}
}

// Filter constructs a selection that keeps each value of concrete type T for
// which f reports true. Values of any other type are discarded.
func Filter[T ast.Value](f func(T) bool) Selection {
	return func(v ast.Value) bool {
		w, ok := v.(T)
		return ok && f(w)
	}
}
