package main

import (
	"fmt"

	"github.com/creachadair/jparse/ast"
	"github.com/creachadair/jparse/query"
)

// routesQuery selects the "path" member of each object in the "routes" array.
// Entries of the array that are not objects are skipped.
var routesQuery = query.Path("routes", query.Is(ast.ObjectKind), query.Each("path"))

// routePaths returns the "path" string of each object in the "routes" array
// of the root object v, in order.
func routePaths(v ast.Value) ([]string, error) {
	rv, err := query.Eval(v, routesQuery)
	if err != nil {
		return nil, err
	}
	rs := rv.(ast.Array)
	out := make([]string, 0, len(rs))
	for i, r := range rs {
		p, err := ast.As[ast.String](r)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		out = append(out, string(p))
	}
	return out, nil
}
