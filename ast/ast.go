// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of tagged JSON values, and a recursive-descent
// parser that constructs such trees from JSON source.
//
// A Value has exactly one of six kinds. The concrete types are *Object,
// Array, String, Number, Bool, and Null; no other type implements Value, so a
// type switch over these six is exhaustive:
//
//	switch t := v.(type) {
//	case *ast.Object:
//	   r, err := t.Get("routes")
//	   // ...
//	case ast.Array:
//	case ast.String:
//	case ast.Number:
//	case ast.Bool:
//	case ast.Null:
//	}
//
// Trees are read-only once constructed. Each Object and Array exclusively owns
// its children.
package ast

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jparse"
)

// Kind is the discriminator of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	ObjectKind Kind = iota // object: {...}
	ArrayKind              // array: [...]
	StringKind             // string: "..."
	NumberKind             // number: integer
	BoolKind               // constant: true or false
	NullKind               // constant: null
)

var kindStr = [...]string{
	ObjectKind: "object",
	ArrayKind:  "array",
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "boolean",
	NullKind:   "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports which of the six kinds of value this is.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

// An Object is a collection of key-value members with unique keys.
// Members are visited in ascending order of key.
type Object struct {
	members map[string]Value
}

// NewObject constructs an object from the given members. If more than one
// member has the same key, the last one wins.
func NewObject(ms ...Member) *Object {
	o := &Object{members: make(map[string]Value, len(ms))}
	for _, m := range ms {
		o.set(m.Key, m.Value)
	}
	return o
}

// Kind satisfies the Value interface.
func (*Object) Kind() Kind { return ObjectKind }

func (*Object) isValue() {}

func (o *Object) set(key string, v Value) {
	if o.members == nil {
		o.members = make(map[string]Value)
	}
	o.members[key] = v
}

// Len reports the number of members in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the value of the member of o with the given key. If no such
// member exists, Get reports an error of type *KeyNotFoundError.
func (o *Object) Get(key string) (Value, error) {
	if v, ok := o.Find(key); ok {
		return v, nil
	}
	return nil, &KeyNotFoundError{Key: key}
}

// Find returns the value of the member of o with the given key, and reports
// whether it was present.
func (o *Object) Find(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.members[key]
	return v, ok
}

// Keys returns the keys of o in ascending order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(o.members))
}

// All is an iterator over the members of o in ascending order of key.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range o.Keys() {
			if !yield(key, o.members[key]) {
				return
			}
		}
	}
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	if o.Len() == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for key, v := range o.All() {
		if sb.Len() > 1 {
			sb.WriteByte(',')
		}
		sb.WriteString(jparse.Quote(key))
		sb.WriteByte(':')
		sb.WriteString(v.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equal reports whether o and p have the same keys with equal values.
func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for key, v := range o.All() {
		w, ok := p.Find(key)
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", o.Len()) }

// A Member is a single key-value pair, used to construct objects.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be a type accepted by ToValue.
func Field(key string, value any) Member {
	return Member{Key: key, Value: ToValue(value)}
}

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(a[0].JSON())
	for _, elt := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value with its escapes already decoded.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

func (String) isValue() {}

// JSON satisfies the Value interface.
func (s String) JSON() string { return jparse.Quote(string(s)) }

// A Number is an integer value.
type Number int64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

func (Number) isValue() {}

// Int64 returns the value of z as an int64.
func (z Number) Int64() int64 { return int64(z) }

// JSON satisfies the Value interface.
func (z Number) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

func (Bool) isValue() {}

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

func (Null) isValue() {}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// Equal reports whether a and b are structurally equal: the same kind, with
// equal keys and values for objects and equal elements for arrays.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch t := a.(type) {
	case *Object:
		u, ok := b.(*Object)
		return ok && t.Equal(u)
	case Array:
		u, ok := b.(Array)
		return ok && slices.EqualFunc(t, u, Equal)
	default:
		return a == b
	}
}

// As returns v as a value of concrete type T. If v has a different type, As
// reports an error of type *TypeError.
func As[T Value](v Value) (T, error) {
	t, ok := v.(T)
	if ok {
		return t, nil
	}
	var zero T
	if v == nil {
		return zero, errors.New("nil value")
	}
	want, ok := any(zero).(Value)
	if !ok {
		return zero, fmt.Errorf("invalid value %T", v)
	}
	return zero, &TypeError{Want: want.Kind(), Got: v.Kind()}
}

// ToValue converts a string, int, int64, bool, nil, []any, map[string]any,
// or Value into a Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case bool:
		return Bool(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		o := &Object{members: make(map[string]Value, len(t))}
		for key, elt := range t {
			o.set(key, ToValue(elt))
		}
		return o
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
