// File: wrapper.go
// Title: Specification-Table Adapter Core
// Description: Implements the table-driven Wrapper that performs name
//              resolution, default substitution, and type-checked
//              extraction on every call before invoking the bound method
//              exactly once.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-10 v0.1.0: Initial table-driven wrapper implementation

package wrapper

import (
	"fmt"

	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/value"
)

// Spec is the specification table a Wrapper is built from. ParamTags
// lists the native argument types in method-signature order; Invoke
// receives exactly len(ParamTags) values whose tags match ParamTags
// positionally and must call the underlying method once.
type Spec struct {
	ParamTags []value.Tag
	ReturnTag value.Tag
	Invoke    func(args []value.Value) (value.Value, error)
}

// Wrapper binds one receiver method to the command.Command contract.
// Construct through the Bind functions or New; the zero Wrapper is not
// usable.
type Wrapper struct {
	paramNames []string
	paramTags  []value.Tag
	defaults   []value.Value // empty, or exactly one per parameter
	returnTag  value.Tag
	invoke     func(args []value.Value) (value.Value, error)
}

// New builds a Wrapper from a specification table and an optional
// default set. Construction is all-or-nothing: any failure returns a
// CONFIGURATION error and no wrapper.
//
// When defaults are non-empty they must contain exactly one entry per
// parameter; their names establish the parameter names, in the supplied
// order, which is assumed to be method-signature order. When defaults
// are empty, names are synthesized as param1..paramN.
func New(spec Spec, defaults []command.Arg) (*Wrapper, error) {
	if spec.Invoke == nil {
		return nil, command.NewError(command.CodeConfiguration, "wrapper: invoke function cannot be nil")
	}
	if !spec.ReturnTag.Valid() {
		return nil, command.NewError(command.CodeConfiguration, "wrapper: return type tag is invalid")
	}
	for i, tag := range spec.ParamTags {
		if !tag.Valid() {
			return nil, command.Errorf(command.CodeConfiguration,
				"wrapper: parameter type tag at position %d is invalid", i)
		}
	}

	arity := len(spec.ParamTags)

	w := &Wrapper{
		paramTags: make([]value.Tag, arity),
		returnTag: spec.ReturnTag,
		invoke:    spec.Invoke,
	}
	copy(w.paramTags, spec.ParamTags)

	switch {
	case len(defaults) > 0:
		if len(defaults) != arity {
			return nil, command.Errorf(command.CodeConfiguration,
				"wrapper: defaults must cover all %d parameters or none, got %d", arity, len(defaults))
		}
		w.paramNames = make([]string, arity)
		w.defaults = make([]value.Value, arity)
		for i, def := range defaults {
			w.paramNames[i] = def.Name
			if def.Value.Tag() != w.paramTags[i] {
				return nil, command.NewError(command.CodeConfiguration,
					"wrapper: default value type mismatch").
					WithParam(def.Name).
					WithTypes(w.paramTags[i], def.Value.Tag())
			}
			w.defaults[i] = def.Value
		}

	case arity > 0:
		w.paramNames = make([]string, arity)
		for i := range w.paramNames {
			w.paramNames[i] = fmt.Sprintf("param%d", i+1)
		}
	}

	return w, nil
}

// Execute reconciles the named arguments against the parameter
// specification and invokes the bound method exactly once. Any
// validation failure aborts before the method runs.
func (w *Wrapper) Execute(args []command.Arg) (value.Value, error) {
	// Duplicate names are rejected before anything else, even when the
	// duplicated values are identical.
	seen := make(map[string]struct{}, len(args))
	for _, a := range args {
		if _, dup := seen[a.Name]; dup {
			return value.Value{}, command.NewError(command.CodeDuplicateArgument,
				"duplicate argument name").WithParam(a.Name)
		}
		seen[a.Name] = struct{}{}
	}

	if len(w.paramNames) == 0 {
		return w.invoke(nil)
	}

	bound := make([]value.Value, len(w.paramNames))
	for i, name := range w.paramNames {
		found := false
		for _, a := range args {
			if a.Name != name {
				continue
			}
			if a.Value.Tag() != w.paramTags[i] {
				return value.Value{}, command.NewError(command.CodeTypeMismatch,
					"argument value does not match declared parameter type").
					WithParam(name).
					WithTypes(w.paramTags[i], a.Value.Tag())
			}
			bound[i] = a.Value
			found = true
			break
		}
		if !found {
			if len(w.defaults) == 0 {
				return value.Value{}, command.NewError(command.CodeMissingArgument,
					"required argument not provided and no default value").WithParam(name)
			}
			bound[i] = w.defaults[i]
		}
	}

	return w.invoke(bound)
}

// ParamNames returns the parameter names in positional order. The
// returned slice is a copy.
func (w *Wrapper) ParamNames() []string {
	names := make([]string, len(w.paramNames))
	copy(names, w.paramNames)
	return names
}

// ParamTypes returns the parameter type tags, positionally aligned
// with ParamNames. The returned slice is a copy.
func (w *Wrapper) ParamTypes() []value.Tag {
	tags := make([]value.Tag, len(w.paramTags))
	copy(tags, w.paramTags)
	return tags
}

// ReturnType returns the type tag of the bound method's result.
func (w *Wrapper) ReturnType() value.Tag {
	return w.returnTag
}

// Arity returns the number of parameters of the bound method.
func (w *Wrapper) Arity() int {
	return len(w.paramTags)
}

// HasDefaults reports whether the wrapper carries a default set.
func (w *Wrapper) HasDefaults() bool {
	return len(w.defaults) > 0
}
