// File: tag.go
// Title: Type Tag Definitions
// Description: Defines the closed enumeration of type tags for supported
//              native value types and the compile-time mapping from Go
//              types to tags.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

package value

// Tag identifies one of the supported native value types. The zero
// value is TagInvalid so that uninitialized tags never match a real
// type.
type Tag uint8

// Supported type tags. The set is closed: adding a tag requires
// touching the Scalar constraint, Box, and As in lockstep.
const (
	TagInvalid Tag = iota
	TagInt
	TagFloat
	TagString
	TagBool
)

// String returns the stable lowercase name of the tag. These names are
// part of the catalog format and of error messages, so they must not
// change between releases.
func (t Tag) String() string {
	switch t {
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagString:
		return "string"
	case TagBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Valid reports whether the tag names a supported type.
func (t Tag) Valid() bool {
	return t > TagInvalid && t <= TagBool
}

// ParseTag resolves a stable tag name back to its Tag. Unknown names
// yield TagInvalid and false.
func ParseTag(name string) (Tag, bool) {
	switch name {
	case "int":
		return TagInt, true
	case "float":
		return TagFloat, true
	case "string":
		return TagString, true
	case "bool":
		return TagBool, true
	default:
		return TagInvalid, false
	}
}

// Scalar constrains a type parameter to the closed set of native types
// the dispatch core supports.
type Scalar interface {
	int | float64 | string | bool
}

// TagFor returns the tag corresponding to the type parameter.
func TagFor[T Scalar]() Tag {
	var zero T
	switch any(zero).(type) {
	case int:
		return TagInt
	case float64:
		return TagFloat
	case string:
		return TagString
	case bool:
		return TagBool
	default:
		return TagInvalid
	}
}
