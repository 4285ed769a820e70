// File: register.go
// Title: Convenience Method Registration
// Description: Package-level generic helpers that bind a receiver method
//              through the wrapper package and register the result in one
//              step. Construction failures propagate unchanged.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

package engine

import (
	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/value"
	"github.com/zhitkovns/engine-wrapper/wrapper"
)

// These helpers are package-level functions rather than Engine methods
// because Go methods cannot carry their own type parameters.

// Register0 binds and registers a no-argument method.
func Register0[T any, R value.Scalar](e *Engine, name string, recv *T, method func(*T) R) error {
	w, err := wrapper.Bind0(recv, method)
	if err != nil {
		return err
	}
	return e.Register(name, w)
}

// Register1 binds and registers a one-argument method.
func Register1[T any, A1 value.Scalar, R value.Scalar](e *Engine, name string, recv *T, method func(*T, A1) R, defaults ...command.Arg) error {
	w, err := wrapper.Bind1(recv, method, defaults...)
	if err != nil {
		return err
	}
	return e.Register(name, w)
}

// Register2 binds and registers a two-argument method.
func Register2[T any, A1, A2 value.Scalar, R value.Scalar](e *Engine, name string, recv *T, method func(*T, A1, A2) R, defaults ...command.Arg) error {
	w, err := wrapper.Bind2(recv, method, defaults...)
	if err != nil {
		return err
	}
	return e.Register(name, w)
}

// Register3 binds and registers a three-argument method.
func Register3[T any, A1, A2, A3 value.Scalar, R value.Scalar](e *Engine, name string, recv *T, method func(*T, A1, A2, A3) R, defaults ...command.Arg) error {
	w, err := wrapper.Bind3(recv, method, defaults...)
	if err != nil {
		return err
	}
	return e.Register(name, w)
}

// Register4 binds and registers a four-argument method.
func Register4[T any, A1, A2, A3, A4 value.Scalar, R value.Scalar](e *Engine, name string, recv *T, method func(*T, A1, A2, A3, A4) R, defaults ...command.Arg) error {
	w, err := wrapper.Bind4(recv, method, defaults...)
	if err != nil {
		return err
	}
	return e.Register(name, w)
}
