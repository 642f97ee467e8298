// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jparse/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, `null`},
		{ast.Bool(true), `true`},
		{ast.Bool(false), `false`},
		{ast.Number(-25), `-25`},
		{ast.String(""), `""`},
		{ast.String("a\"b\nc"), `"a\"b\nc"`},
		{ast.String("\x01<>"), `"\u0001<>"`},
		{ast.Array{}, `[]`},
		{ast.Array{ast.Number(1), ast.Null{}, ast.String("x")}, `[1,null,"x"]`},
		{ast.NewObject(), `{}`},
		{ast.NewObject(
			ast.Field("z", 1),
			ast.Field("a", []any{true, "q"}),
			ast.Field("", nil),
		), `{"":null,"a":[true,"q"],"z":1}`},
	}
	for _, tc := range tests {
		if got := tc.input.JSON(); got != tc.want {
			t.Errorf("JSON %v: got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  ast.Kind
		name  string
	}{
		{ast.NewObject(), ast.ObjectKind, "object"},
		{ast.Array{}, ast.ArrayKind, "array"},
		{ast.String("x"), ast.StringKind, "string"},
		{ast.Number(0), ast.NumberKind, "number"},
		{ast.Bool(false), ast.BoolKind, "boolean"},
		{ast.Null{}, ast.NullKind, "null"},
	}
	for _, tc := range tests {
		if got := tc.input.Kind(); got != tc.want {
			t.Errorf("Kind %v: got %v, want %v", tc.input, got, tc.want)
		} else if s := got.String(); s != tc.name {
			t.Errorf("Kind %v: got name %q, want %q", tc.input, s, tc.name)
		}
	}
	if s := ast.Kind(100).String(); s != "invalid kind" {
		t.Errorf("Invalid kind: got %q", s)
	}
}

func TestObject(t *testing.T) {
	obj := ast.NewObject(
		ast.Field("b", 2),
		ast.Field("a", 1),
		ast.Field("b", 3),
	)
	if n := obj.Len(); n != 2 {
		t.Errorf("Len: got %d, want 2", n)
	}
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	t.Run("Get", func(t *testing.T) {
		v, err := obj.Get("b")
		if err != nil {
			t.Fatalf("Get b: unexpected error: %v", err)
		}
		if v != ast.Number(3) {
			t.Errorf("Get b: got %v, want 3", v)
		}
	})

	t.Run("KeyNotFound", func(t *testing.T) {
		v, err := obj.Get("c")
		var kerr *ast.KeyNotFoundError
		if !errors.As(err, &kerr) {
			t.Fatalf("Get c: got %v, %v; want *KeyNotFoundError", v, err)
		}
		if kerr.Key != "c" {
			t.Errorf("Key: got %q, want c", kerr.Key)
		}
		t.Logf("Got expected error: %v", err)
	})

	t.Run("All", func(t *testing.T) {
		var keys []string
		for key := range obj.All() {
			keys = append(keys, key)
			break
		}
		if diff := cmp.Diff([]string{"a"}, keys); diff != "" {
			t.Errorf("All (-want, +got):\n%s", diff)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		var nobj *ast.Object
		if n := nobj.Len(); n != 0 {
			t.Errorf("Len: got %d, want 0", n)
		}
		if _, ok := nobj.Find("a"); ok {
			t.Error("Find on nil object reported a member")
		}
		if _, err := nobj.Get("a"); err == nil {
			t.Error("Get on nil object: got nil error")
		}
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b ast.Value
		want bool
	}{
		{nil, nil, true},
		{nil, ast.Null{}, false},
		{ast.Null{}, ast.Null{}, true},
		{ast.Number(1), ast.Number(1), true},
		{ast.Number(1), ast.String("1"), false},
		{ast.Bool(true), ast.Bool(false), false},
		{ast.Array{}, ast.Array{}, true},
		{ast.Array{ast.Number(1)}, ast.Array{ast.Number(2)}, false},
		{ast.Array{ast.Number(1)}, ast.Array{ast.Number(1), ast.Number(1)}, false},
		{ast.NewObject(), ast.NewObject(), true},
		{ast.NewObject(), ast.Array{}, false},
		{
			ast.NewObject(ast.Field("a", []any{1, map[string]any{"b": true}})),
			ast.NewObject(ast.Field("a", []any{1, map[string]any{"b": true}})),
			true,
		},
		{
			ast.NewObject(ast.Field("a", 1)),
			ast.NewObject(ast.Field("b", 1)),
			false,
		},
	}
	for _, tc := range tests {
		if got := ast.Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAs(t *testing.T) {
	if s, err := ast.As[ast.String](ast.String("ok")); err != nil || s != "ok" {
		t.Errorf("As string: got %q, %v; want ok", s, err)
	}
	if _, err := ast.As[*ast.Object](ast.NewObject()); err != nil {
		t.Errorf("As object: unexpected error: %v", err)
	}

	_, err := ast.As[ast.Array](ast.Number(5))
	var terr *ast.TypeError
	if !errors.As(err, &terr) {
		t.Fatalf("As array: got %v, want *TypeError", err)
	}
	if terr.Want != ast.ArrayKind || terr.Got != ast.NumberKind {
		t.Errorf("TypeError: got want=%v got=%v", terr.Want, terr.Got)
	}
	t.Logf("Got expected error: %v", err)

	if _, err := ast.As[ast.Bool](nil); err == nil {
		t.Error("As nil: got nil error")
	}
}

func TestToValue(t *testing.T) {
	got := ast.ToValue(map[string]any{
		"s": "x",
		"n": int64(4),
		"a": []any{nil, false},
		"v": ast.Number(7),
	})
	want := ast.NewObject(
		ast.Field("s", ast.String("x")),
		ast.Field("n", ast.Number(4)),
		ast.Field("a", ast.Array{ast.Null{}, ast.Bool(false)}),
		ast.Field("v", ast.Number(7)),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToValue (-want, +got):\n%s", diff)
	}

	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(3.5) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestJSONInvalidUTF8(t *testing.T) {
	for _, text := range []string{"a\xffb", "\xe2\x80", "ok\xc3", "\xed\xa0\x80"} {
		v := ast.String(text)
		w, err := ast.Parse(v.JSON())
		if err != nil {
			t.Fatalf("Parse %q: unexpected error: %v", v.JSON(), err)
		}
		if !ast.Equal(v, w) {
			t.Errorf("Round trip %q: got %q", text, w)
		}
	}
}
