/*
Package pjson is a thin, order-preserving JSON object model.

Style documents are order-sensitive: rules render in document order,
and the value dictionary is built from top-level keys in document
order. The encoding/json map type discards key order, so this package
walks the token stream of json-iterator instead and records keys as
they appear.

Scalar values are exposed in their raw textual form: a JSON number 5
reads as "5", a boolean as "true"/"false". Style properties are raw
strings throughout the model, conversion happens late (see package
builder).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pjson

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.pjson'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.pjson")
}

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotAnObject flags input whose top-level value is not an object.
var ErrNotAnObject = errors.New("document is not a JSON object")

// ValueKind is an enum type for JSON value types.
type ValueKind uint8

const (
	InvalidKind ValueKind = iota
	StringKind
	NumberKind
	BoolKind
	NullKind
	ObjectKind
	ArrayKind
)

// Value is one JSON value.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	obj  *Obj
	arr  []Value
}

// Kind returns the JSON type of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsScalar is true for strings, numbers, booleans and null.
func (v Value) IsScalar() bool {
	switch v.kind {
	case StringKind, NumberKind, BoolKind, NullKind:
		return true
	}
	return false
}

// Text returns the raw textual form of a scalar value. Numbers are
// rendered without exponent and without trailing zeros, null as the
// empty string. For objects and arrays Text returns "".
func (v Value) Text() string {
	switch v.kind {
	case StringKind:
		return v.str
	case NumberKind:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// Number returns the numeric value; false if the value is no number.
func (v Value) Number() (float64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	return v.num, true
}

// Object returns the object value; false if the value is no object.
func (v Value) Object() (*Obj, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.obj, true
}

// Array returns the array elements; false if the value is no array.
func (v Value) Array() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.arr, true
}

// Obj is a JSON object with its keys in document order.
type Obj struct {
	keys   []string
	fields map[string]Value
}

// Parse reads a JSON object from text.
func Parse(text string) (*Obj, error) {
	iter := jsoniter.ParseString(jsonConfig, text)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, ErrNotAnObject
	}
	v := readValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("JSON object cannot be read: %w", iter.Error)
	}
	tracer().Debugf("parsed JSON object with %d key(s)", len(v.obj.keys))
	return v.obj, nil
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return Value{kind: StringKind, str: iter.ReadString()}
	case jsoniter.NumberValue:
		return Value{kind: NumberKind, num: iter.ReadFloat64()}
	case jsoniter.BoolValue:
		return Value{kind: BoolKind, b: iter.ReadBool()}
	case jsoniter.NilValue:
		iter.ReadNil()
		return Value{kind: NullKind}
	case jsoniter.ObjectValue:
		obj := &Obj{fields: make(map[string]Value)}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			if _, dup := obj.fields[key]; !dup {
				obj.keys = append(obj.keys, key)
			}
			obj.fields[key] = readValue(it)
			return it.Error == nil
		})
		return Value{kind: ObjectKind, obj: obj}
	case jsoniter.ArrayValue:
		var arr []Value
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			arr = append(arr, readValue(it))
			return it.Error == nil
		})
		return Value{kind: ArrayKind, arr: arr}
	}
	iter.Skip()
	return Value{}
}

// Keys returns the object's keys in document order.
func (o *Obj) Keys() []string {
	if o == nil {
		return nil
	}
	k := make([]string, len(o.keys))
	copy(k, o.keys)
	return k
}

// Len returns the number of keys.
func (o *Obj) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Has is a predicate wether the object has a key.
func (o *Obj) Has(key string) bool {
	_, ok := o.Field(key)
	return ok
}

// Field returns the value for a key.
func (o *Obj) Field(key string) (Value, bool) {
	if o == nil || o.fields == nil {
		return Value{}, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Object returns the object value for a key.
func (o *Obj) Object(key string) (*Obj, bool) {
	v, ok := o.Field(key)
	if !ok {
		return nil, false
	}
	return v.Object()
}

// Array returns the array value for a key.
func (o *Obj) Array(key string) ([]Value, bool) {
	v, ok := o.Field(key)
	if !ok {
		return nil, false
	}
	return v.Array()
}

// StringOr returns the scalar text for a key, or def if the key is
// absent or not scalar.
func (o *Obj) StringOr(key string, def string) string {
	v, ok := o.Field(key)
	if !ok || !v.IsScalar() {
		return def
	}
	return v.Text()
}

// Number returns the numeric value for a key. Numeric strings count
// as numbers; style documents are lax about quoting.
func (o *Obj) Number(key string) (float64, bool) {
	v, ok := o.Field(key)
	if !ok {
		return 0, false
	}
	if f, isNum := v.Number(); isNum {
		return f, true
	}
	if v.kind == StringKind {
		if f, err := strconv.ParseFloat(v.str, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
