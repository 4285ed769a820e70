// File: doc.go
// Title: Wrapper Package Documentation
// Description: Package documentation for the generic adapter that binds
//              a native Go method to the named-argument Command contract.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

// Package wrapper adapts one receiver and one of its methods, of fixed
// native signature, to the command.Command contract.
//
// A Wrapper is driven by a specification table: parameter names,
// parameter type tags, an all-or-nothing default set, the return tag,
// and an invoke closure that calls the bound method with fully typed
// values. The arity-indexed constructors Bind0 through Bind4 build the
// table from a method value at compile time:
//
//	calc := &Calculator{}
//	w, err := wrapper.Bind2(calc, (*Calculator).Multiply,
//		command.IntArg("a", 0), command.IntArg("b", 0))
//
// When defaults are supplied they establish the parameter names, in the
// supplied order, and every default is type-checked at construction. A
// wrapper is therefore either fully valid or never comes into
// existence; no call-time surprise can originate from a bad default.
//
// The wrapper holds the receiver by pointer and never copies or frees
// it. The receiver must outlive the wrapper and every engine the
// wrapper is registered in; this is a caller-held contract, enforced
// only by a nil check at bind time.
//
// Methods of arity above four go through BindFunc with a hand-built
// Spec table; the mechanics are identical.
package wrapper
