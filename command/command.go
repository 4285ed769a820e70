// File: command.go
// Title: Command Contract and Named Arguments
// Description: Defines the Command interface, the named-argument list
//              convention, and the Info introspection snapshot.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

package command

import (
	"github.com/zhitkovns/engine-wrapper/value"
)

// Arg is one named argument of a call: a name paired with an erased
// value. An argument list is an ordered []Arg; names must be unique
// within one call, which executors enforce before anything else.
type Arg struct {
	Name  string
	Value value.Value
}

// Named pairs a name with an already erased value.
func Named(name string, v value.Value) Arg {
	return Arg{Name: name, Value: v}
}

// IntArg builds an int argument.
func IntArg(name string, v int) Arg { return Arg{Name: name, Value: value.Int(v)} }

// FloatArg builds a float argument.
func FloatArg(name string, v float64) Arg { return Arg{Name: name, Value: value.Float(v)} }

// StringArg builds a string argument.
func StringArg(name string, v string) Arg { return Arg{Name: name, Value: value.String(v)} }

// BoolArg builds a bool argument.
func BoolArg(name string, v bool) Arg { return Arg{Name: name, Value: value.Bool(v)} }

// Command is the invocable capability contract. Execute performs the
// full named-argument reconciliation and runs the underlying operation
// at most once; the accessors are pure and stable for the lifetime of
// the command.
type Command interface {
	// Execute runs the command against the given argument list and
	// returns the erased result. Argument validation completes before
	// the underlying operation runs; on error the operation has not
	// been invoked.
	Execute(args []Arg) (value.Value, error)

	// ParamNames returns the parameter names in positional order.
	ParamNames() []string

	// ParamTypes returns the parameter type tags, positionally aligned
	// with ParamNames.
	ParamTypes() []value.Tag

	// ReturnType returns the type tag of the command's result.
	ReturnType() value.Tag
}

// Info is a read-only snapshot of a command's specification as held by
// a registry. Name is filled in by the registry that produced the
// snapshot.
type Info struct {
	Name       string
	ParamNames []string
	ParamTypes []value.Tag
	ReturnType value.Tag
}

// Describe snapshots a command's specification. The returned slices
// are copies; mutating them does not affect the command.
func Describe(cmd Command) Info {
	names := cmd.ParamNames()
	tags := cmd.ParamTypes()
	info := Info{
		ParamNames: make([]string, len(names)),
		ParamTypes: make([]value.Tag, len(tags)),
		ReturnType: cmd.ReturnType(),
	}
	copy(info.ParamNames, names)
	copy(info.ParamTypes, tags)
	return info
}
