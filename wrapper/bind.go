// File: bind.go
// Title: Arity-Indexed Bind Constructors
// Description: Compile-time generic constructors that bind a receiver
//              pointer and a method value of fixed signature to a
//              specification-table Wrapper. One constructor per arity,
//              zero through four; higher arities go through BindFunc.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

package wrapper

import (
	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/value"
)

// Method values are passed as method expressions, e.g.
// (*Calculator).Multiply. Value-receiver methods work through the same
// expressions since (*T).Method derefs the receiver, so mutating and
// read-only methods share one set of constructors.

func nilReceiverError() error {
	return command.NewError(command.CodeConfiguration, "wrapper: receiver cannot be nil")
}

func nilMethodError() error {
	return command.NewError(command.CodeConfiguration, "wrapper: method cannot be nil")
}

// narrow extracts a typed value at a call position. Execute has already
// matched the tag, so a failure here means a hand-built Spec lied about
// its ParamTags.
func narrow[A value.Scalar](v value.Value, pos int, names []string) (A, error) {
	a, err := value.As[A](v)
	if err != nil {
		name := ""
		if pos < len(names) {
			name = names[pos]
		}
		return a, command.NewError(command.CodeTypeMismatch,
			"bound value does not match native argument type").
			WithParam(name).
			WithTypes(value.TagFor[A](), v.Tag()).
			WithCause(err)
	}
	return a, nil
}

// BindFunc builds a Wrapper from an explicit specification table. It is
// the escape hatch for arities beyond four and for callables that are
// not methods; the Bind constructors are the preferred entry points.
func BindFunc(spec Spec, defaults ...command.Arg) (*Wrapper, error) {
	return New(spec, defaults)
}

// Bind0 binds a no-argument method.
func Bind0[T any, R value.Scalar](recv *T, method func(*T) R) (*Wrapper, error) {
	if recv == nil {
		return nil, nilReceiverError()
	}
	if method == nil {
		return nil, nilMethodError()
	}
	return New(Spec{
		ReturnTag: value.TagFor[R](),
		Invoke: func(_ []value.Value) (value.Value, error) {
			return value.Box(method(recv)), nil
		},
	}, nil)
}

// Bind1 binds a one-argument method.
func Bind1[T any, A1 value.Scalar, R value.Scalar](recv *T, method func(*T, A1) R, defaults ...command.Arg) (*Wrapper, error) {
	if recv == nil {
		return nil, nilReceiverError()
	}
	if method == nil {
		return nil, nilMethodError()
	}
	var w *Wrapper
	var err error
	w, err = New(Spec{
		ParamTags: []value.Tag{value.TagFor[A1]()},
		ReturnTag: value.TagFor[R](),
		Invoke: func(in []value.Value) (value.Value, error) {
			a1, err := narrow[A1](in[0], 0, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			return value.Box(method(recv, a1)), nil
		},
	}, defaults)
	return w, err
}

// Bind2 binds a two-argument method.
func Bind2[T any, A1, A2 value.Scalar, R value.Scalar](recv *T, method func(*T, A1, A2) R, defaults ...command.Arg) (*Wrapper, error) {
	if recv == nil {
		return nil, nilReceiverError()
	}
	if method == nil {
		return nil, nilMethodError()
	}
	var w *Wrapper
	var err error
	w, err = New(Spec{
		ParamTags: []value.Tag{value.TagFor[A1](), value.TagFor[A2]()},
		ReturnTag: value.TagFor[R](),
		Invoke: func(in []value.Value) (value.Value, error) {
			a1, err := narrow[A1](in[0], 0, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			a2, err := narrow[A2](in[1], 1, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			return value.Box(method(recv, a1, a2)), nil
		},
	}, defaults)
	return w, err
}

// Bind3 binds a three-argument method.
func Bind3[T any, A1, A2, A3 value.Scalar, R value.Scalar](recv *T, method func(*T, A1, A2, A3) R, defaults ...command.Arg) (*Wrapper, error) {
	if recv == nil {
		return nil, nilReceiverError()
	}
	if method == nil {
		return nil, nilMethodError()
	}
	var w *Wrapper
	var err error
	w, err = New(Spec{
		ParamTags: []value.Tag{value.TagFor[A1](), value.TagFor[A2](), value.TagFor[A3]()},
		ReturnTag: value.TagFor[R](),
		Invoke: func(in []value.Value) (value.Value, error) {
			a1, err := narrow[A1](in[0], 0, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			a2, err := narrow[A2](in[1], 1, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			a3, err := narrow[A3](in[2], 2, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			return value.Box(method(recv, a1, a2, a3)), nil
		},
	}, defaults)
	return w, err
}

// Bind4 binds a four-argument method.
func Bind4[T any, A1, A2, A3, A4 value.Scalar, R value.Scalar](recv *T, method func(*T, A1, A2, A3, A4) R, defaults ...command.Arg) (*Wrapper, error) {
	if recv == nil {
		return nil, nilReceiverError()
	}
	if method == nil {
		return nil, nilMethodError()
	}
	var w *Wrapper
	var err error
	w, err = New(Spec{
		ParamTags: []value.Tag{value.TagFor[A1](), value.TagFor[A2](), value.TagFor[A3](), value.TagFor[A4]()},
		ReturnTag: value.TagFor[R](),
		Invoke: func(in []value.Value) (value.Value, error) {
			a1, err := narrow[A1](in[0], 0, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			a2, err := narrow[A2](in[1], 1, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			a3, err := narrow[A3](in[2], 2, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			a4, err := narrow[A4](in[3], 3, w.paramNames)
			if err != nil {
				return value.Value{}, err
			}
			return value.Box(method(recv, a1, a2, a3, a4)), nil
		},
	}, defaults)
	return w, err
}
