// File: value.go
// Title: Erased Value Implementation
// Description: Implements the tagged union Value type with typed
//              constructors, generic boxing, and fallible narrowing back
//              to concrete native types.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

package value

import (
	"fmt"
	"strconv"
)

// Value is an immutable erased value: one native value plus the tag
// identifying its type. The zero Value carries TagInvalid and narrows
// to nothing.
type Value struct {
	tag Tag
	i   int
	f   float64
	s   string
	b   bool
}

// Int boxes an int.
func Int(v int) Value { return Value{tag: TagInt, i: v} }

// Float boxes a float64.
func Float(v float64) Value { return Value{tag: TagFloat, f: v} }

// String boxes a string.
func String(v string) Value { return Value{tag: TagString, s: v} }

// Bool boxes a bool.
func Bool(v bool) Value { return Value{tag: TagBool, b: v} }

// Box erases a native value of any supported type.
func Box[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case int:
		return Int(x)
	case float64:
		return Float(x)
	case string:
		return String(x)
	case bool:
		return Bool(x)
	default:
		return Value{}
	}
}

// Tag returns the type tag of the value.
func (v Value) Tag() Tag { return v.tag }

// IsValid reports whether the value carries a supported type.
func (v Value) IsValid() bool { return v.tag.Valid() }

// NarrowError reports a failed narrowing attempt.
type NarrowError struct {
	Want Tag
	Got  Tag
}

// Error implements the error interface.
func (e *NarrowError) Error() string {
	return fmt.Sprintf("cannot narrow %s value to %s", e.Got, e.Want)
}

// As narrows the value to the requested native type. It fails with a
// *NarrowError unless the value's tag matches the requested type
// exactly.
func As[T Scalar](v Value) (T, error) {
	var out T
	want := TagFor[T]()
	if v.tag != want {
		return out, &NarrowError{Want: want, Got: v.tag}
	}
	switch p := any(&out).(type) {
	case *int:
		*p = v.i
	case *float64:
		*p = v.f
	case *string:
		*p = v.s
	case *bool:
		*p = v.b
	}
	return out, nil
}

// AsInt narrows to int.
func (v Value) AsInt() (int, error) { return As[int](v) }

// AsFloat narrows to float64.
func (v Value) AsFloat() (float64, error) { return As[float64](v) }

// AsString narrows to string.
func (v Value) AsString() (string, error) { return As[string](v) }

// AsBool narrows to bool.
func (v Value) AsBool() (bool, error) { return As[bool](v) }

// Interface returns the boxed native value as an any, or nil for the
// zero Value. Intended for logging and rendering, not for dispatch.
func (v Value) Interface() any {
	switch v.tag {
	case TagInt:
		return v.i
	case TagFloat:
		return v.f
	case TagString:
		return v.s
	case TagBool:
		return v.b
	default:
		return nil
	}
}

// Equal reports whether two values have the same tag and the same
// native value.
func (v Value) Equal(o Value) bool {
	if v.tag != o.tag {
		return false
	}
	switch v.tag {
	case TagInt:
		return v.i == o.i
	case TagFloat:
		return v.f == o.f
	case TagString:
		return v.s == o.s
	case TagBool:
		return v.b == o.b
	default:
		return true
	}
}

// String renders the value for display.
func (v Value) String() string {
	switch v.tag {
	case TagInt:
		return strconv.Itoa(v.i)
	case TagFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TagString:
		return v.s
	case TagBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}
