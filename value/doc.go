// File: doc.go
// Title: Value Package Documentation
// Description: Package documentation for the erased value and type tag
//              system used throughout the engine-wrapper dispatch core.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

// Package value implements the closed tagged union that the dispatch
// core uses to move values across the static/dynamic boundary.
//
// A Value carries exactly one of the supported native types (int,
// float64, string, bool) together with a Tag identifying it. Narrowing
// a Value back to a concrete type is fallible and succeeds only when
// the tags match exactly; there is no implicit coercion between tags,
// so an int value never narrows to float64 and vice versa.
//
// The package deliberately avoids reflect. Tags form a stable, closed
// enumeration so that wrappers and registries can compare and report
// types without depending on Go's runtime type names.
//
// Typical usage:
//
//	v := value.Int(42)
//	n, err := value.As[int](v)    // n == 42, err == nil
//	s, err := value.As[string](v) // err: cannot narrow int value to string
//
// Box is the generic counterpart of the typed constructors and is what
// the wrapper package uses to erase native method results:
//
//	v := value.Box(3.14) // tag: float
package value
