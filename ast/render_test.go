// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jparse/ast"
	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`null`, `null`},
		{`-7`, `-7`},
		{`"plain"`, `"plain"`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`[1, true]`, "[\n  1\n  true\n]"},
		{`{"b": 2, "a": "x"}`, "{\n  \"a\": \"x\"\n  \"b\": 2\n}"},
		{`{"": 0}`, "{\n  NaN: 0\n}"},
		{`{"a": {"": []}, "b": [{}]}`, `{
  "a": {
    NaN: []
  }
  "b": [
    {}
  ]
}`},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		got := ast.RenderToString(v)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Render %#q (-want, +got):\n%s", tc.input, diff)
		}
	}
}

func TestRendererIndent(t *testing.T) {
	v := mustParse(t, `{"list": [1, {"k": null}]}`)
	var sb strings.Builder
	r := ast.Renderer{Indent: "\t"}
	if err := r.Render(&sb, v); err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	const want = "{\n\t\"list\": [\n\t\t1\n\t\t{\n\t\t\t\"k\": null\n\t\t}\n\t]\n}"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Render (-want, +got):\n%s", diff)
	}
}

func TestRenderRaw(t *testing.T) {
	// Rendering is for display: string contents are written as decoded.
	v := ast.NewObject(ast.Field("say \"hi\"", "line\nbreak"))
	got := ast.RenderToString(v)
	const want = "{\n  \"say \"hi\"\": \"line\nbreak\"\n}"
	if got != want {
		t.Errorf("Render: got %q, want %q", got, want)
	}
}

func TestRenderNil(t *testing.T) {
	tests := []ast.Value{
		nil,
		ast.Array{ast.Number(1), nil},
		ast.NewObject(ast.Member{Key: "a", Value: ast.Array{nil}}),
	}
	for _, v := range tests {
		var sb strings.Builder
		if err := ast.Render(&sb, v); err == nil {
			t.Errorf("Render %v: got %q, want error", v, sb.String())
		} else {
			t.Logf("Got expected error: %v", err)
		}
		if got := ast.RenderToString(v); got != "" {
			t.Errorf("RenderToString %v: got %q, want empty", v, got)
		}
	}
}
