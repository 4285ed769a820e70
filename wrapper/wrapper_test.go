// File: wrapper_test.go
// Title: Wrapper Unit Tests
// Description: Tests for wrapper construction rules (default sets, name
//              synthesis, eager default validation) and invocation
//              semantics (name resolution, defaulting, duplicate and
//              missing arguments, type checking, single invocation).
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

package wrapper

import (
	"testing"

	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/value"
)

// subject is the test receiver; calls counts method invocations so
// tests can assert the exactly-once property.
type subject struct {
	calls  int
	stored int
}

func (s *subject) Mul(a, b int) int { s.calls++; return a * b }

func (s *subject) Double(a int) int { s.calls++; return a * 2 }

func (s *subject) Answer() int { s.calls++; return 42 }

func (s *subject) Join(a, b string) string { s.calls++; return a + b }

func (s *subject) Sum3(a, b, c int) int { s.calls++; return a + b + c }

func (s *subject) Sum4(a, b, c, d int) int { s.calls++; return a + b + c + d }

func (s *subject) SetStored(v int) int { s.calls++; s.stored = v; return v }

func mustInt(t *testing.T, v value.Value, err error) int {
	t.Helper()
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	n, err := v.AsInt()
	if err != nil {
		t.Fatalf("result is not int: %v", err)
	}
	return n
}

func TestBind2WithDefaults(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Mul,
		command.IntArg("a", 0), command.IntArg("b", 0))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	v, err := w.Execute([]command.Arg{
		command.IntArg("a", 4), command.IntArg("b", 5),
	})
	got := mustInt(t, v, err)
	if got != 20 {
		t.Errorf("multiply(4, 5) = %d, want 20", got)
	}
	if subj.calls != 1 {
		t.Errorf("method invoked %d times, want 1", subj.calls)
	}
}

func TestBind2DefaultSubstitution(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Mul,
		command.IntArg("a", 10), command.IntArg("b", 20))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	tests := []struct {
		name string
		args []command.Arg
		want int
	}{
		{"both supplied", []command.Arg{command.IntArg("a", 3), command.IntArg("b", 7)}, 21},
		{"one defaulted", []command.Arg{command.IntArg("a", 5)}, 100},
		{"all defaulted", nil, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := w.Execute(tt.args)
			if got := mustInt(t, v, err); got != tt.want {
				t.Errorf("multiply = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBind2SynthesizedNames(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Mul)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	names := w.ParamNames()
	if len(names) != 2 || names[0] != "param1" || names[1] != "param2" {
		t.Fatalf("ParamNames = %v, want [param1 param2]", names)
	}

	// Without defaults every parameter is required.
	_, err = w.Execute(nil)
	if !command.IsCode(err, command.CodeMissingArgument) {
		t.Fatalf("execute({}) error = %v, want MISSING_ARGUMENT", err)
	}

	_, err = w.Execute([]command.Arg{command.IntArg("param1", 5)})
	if !command.IsCode(err, command.CodeMissingArgument) {
		t.Fatalf("execute({param1}) error = %v, want MISSING_ARGUMENT", err)
	}
	var de *command.Error
	if de = err.(*command.Error); de.Param() != "param2" {
		t.Errorf("missing argument names %q, want param2", de.Param())
	}
	if subj.calls != 0 {
		t.Errorf("method ran %d times on failed calls, want 0", subj.calls)
	}
}

func TestConstructionErrors(t *testing.T) {
	subj := &subject{}

	tests := []struct {
		name string
		bind func() (*Wrapper, error)
	}{
		{
			name: "nil receiver",
			bind: func() (*Wrapper, error) {
				return Bind2[subject, int, int, int](nil, (*subject).Mul)
			},
		},
		{
			name: "nil method",
			bind: func() (*Wrapper, error) {
				return Bind2[subject, int, int, int](subj, nil)
			},
		},
		{
			name: "partial default set",
			bind: func() (*Wrapper, error) {
				return Bind2(subj, (*subject).Mul, command.IntArg("a", 0))
			},
		},
		{
			name: "oversized default set",
			bind: func() (*Wrapper, error) {
				return Bind1(subj, (*subject).Double,
					command.IntArg("a", 0), command.IntArg("b", 0))
			},
		},
		{
			name: "default value type mismatch",
			bind: func() (*Wrapper, error) {
				return Bind2(subj, (*subject).Mul,
					command.IntArg("a", 0), command.StringArg("b", "zero"))
			},
		},
		{
			name: "nil invoke in spec",
			bind: func() (*Wrapper, error) {
				return BindFunc(Spec{ReturnTag: value.TagInt})
			},
		},
		{
			name: "invalid return tag in spec",
			bind: func() (*Wrapper, error) {
				return BindFunc(Spec{
					Invoke: func([]value.Value) (value.Value, error) { return value.Int(0), nil },
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.bind()
			if !command.IsCode(err, command.CodeConfiguration) {
				t.Fatalf("error = %v, want CONFIGURATION", err)
			}
			if w != nil {
				t.Error("failed construction returned a usable wrapper")
			}
		})
	}
}

func TestDefaultMismatchNamesParameter(t *testing.T) {
	subj := &subject{}
	_, err := Bind2(subj, (*subject).Mul,
		command.IntArg("a", 0), command.FloatArg("b", 0))

	var de *command.Error
	ok := false
	if de, ok = err.(*command.Error); !ok {
		t.Fatalf("error = %T, want *command.Error", err)
	}
	if de.Code() != command.CodeConfiguration {
		t.Errorf("code = %v, want CONFIGURATION", de.Code())
	}
	if de.Param() != "b" {
		t.Errorf("param = %q, want b", de.Param())
	}
	if de.Expected() != value.TagInt || de.Actual() != value.TagFloat {
		t.Errorf("tags = (%v, %v), want (int, float)", de.Expected(), de.Actual())
	}
}

func TestDuplicateArgument(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Mul,
		command.IntArg("a", 0), command.IntArg("b", 0))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	// Identical duplicated values still fail.
	_, err = w.Execute([]command.Arg{
		command.IntArg("a", 1), command.IntArg("a", 1), command.IntArg("b", 3),
	})
	if !command.IsCode(err, command.CodeDuplicateArgument) {
		t.Fatalf("error = %v, want DUPLICATE_ARGUMENT", err)
	}
	if subj.calls != 0 {
		t.Error("method ran despite duplicate argument")
	}
}

func TestArgumentTypeMismatch(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Mul,
		command.IntArg("a", 0), command.IntArg("b", 0))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	_, err = w.Execute([]command.Arg{
		command.StringArg("a", "not a number"), command.IntArg("b", 5),
	})
	if !command.IsCode(err, command.CodeTypeMismatch) {
		t.Fatalf("error = %v, want TYPE_MISMATCH", err)
	}

	de := err.(*command.Error)
	if de.Param() != "a" {
		t.Errorf("param = %q, want a", de.Param())
	}
	if de.Expected() != value.TagInt {
		t.Errorf("expected tag = %v, want int", de.Expected())
	}
	if subj.calls != 0 {
		t.Error("method ran despite type mismatch")
	}
}

func TestBind0(t *testing.T) {
	subj := &subject{}
	w, err := Bind0(subj, (*subject).Answer)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	if len(w.ParamNames()) != 0 || w.Arity() != 0 {
		t.Errorf("zero-arity wrapper reports parameters: %v", w.ParamNames())
	}
	v, execErr := w.Execute(nil)
	if got := mustInt(t, v, execErr); got != 42 {
		t.Errorf("answer() = %d, want 42", got)
	}

	// Stray arguments are ignored for zero-arity methods, but
	// duplicates are still rejected first.
	v, execErr = w.Execute([]command.Arg{command.IntArg("x", 1)})
	if got := mustInt(t, v, execErr); got != 42 {
		t.Errorf("answer(x=1) = %d, want 42", got)
	}
	_, err = w.Execute([]command.Arg{command.IntArg("x", 1), command.IntArg("x", 2)})
	if !command.IsCode(err, command.CodeDuplicateArgument) {
		t.Errorf("error = %v, want DUPLICATE_ARGUMENT", err)
	}
}

func TestUnknownArgumentsIgnored(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Mul,
		command.IntArg("a", 0), command.IntArg("b", 0))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	v, err := w.Execute([]command.Arg{
		command.IntArg("a", 4), command.IntArg("b", 5), command.IntArg("c", 9),
	})
	got := mustInt(t, v, err)
	if got != 20 {
		t.Errorf("multiply with stray arg = %d, want 20", got)
	}
}

func TestHigherArities(t *testing.T) {
	subj := &subject{}

	w3, err := Bind3(subj, (*subject).Sum3,
		command.IntArg("a", 1), command.IntArg("b", 2), command.IntArg("c", 3))
	if err != nil {
		t.Fatalf("bind3 failed: %v", err)
	}
	v3, err := w3.Execute(nil)
	if got := mustInt(t, v3, err); got != 6 {
		t.Errorf("sum3() = %d, want 6", got)
	}

	w4, err := Bind4(subj, (*subject).Sum4)
	if err != nil {
		t.Fatalf("bind4 failed: %v", err)
	}
	names := w4.ParamNames()
	if len(names) != 4 || names[3] != "param4" {
		t.Errorf("ParamNames = %v, want synthesized param1..param4", names)
	}
	v4, err := w4.Execute([]command.Arg{
		command.IntArg("param1", 1), command.IntArg("param2", 2),
		command.IntArg("param3", 3), command.IntArg("param4", 4),
	})
	got := mustInt(t, v4, err)
	if got != 10 {
		t.Errorf("sum4(1,2,3,4) = %d, want 10", got)
	}
}

func TestStringMethod(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Join,
		command.StringArg("a", ""), command.StringArg("b", ""))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	v, err := w.Execute([]command.Arg{
		command.StringArg("a", "Hello, "), command.StringArg("b", "World"),
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if s, _ := v.AsString(); s != "Hello, World" {
		t.Errorf("join = %q, want %q", s, "Hello, World")
	}
	if w.ReturnType() != value.TagString {
		t.Errorf("ReturnType = %v, want string", w.ReturnType())
	}
}

func TestMutatingMethod(t *testing.T) {
	subj := &subject{}
	w, err := Bind1(subj, (*subject).SetStored, command.IntArg("value", 0))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	v, execErr := w.Execute([]command.Arg{command.IntArg("value", 9)})
	if got := mustInt(t, v, execErr); got != 9 {
		t.Errorf("set-stored = %d, want 9", got)
	}
	if subj.stored != 9 {
		t.Errorf("receiver stored = %d, want 9", subj.stored)
	}
}

func TestIntrospectionCopies(t *testing.T) {
	subj := &subject{}
	w, err := Bind2(subj, (*subject).Mul,
		command.IntArg("a", 0), command.IntArg("b", 0))
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	names := w.ParamNames()
	names[0] = "mutated"
	if w.ParamNames()[0] != "a" {
		t.Error("ParamNames leaked internal slice")
	}

	tags := w.ParamTypes()
	tags[0] = value.TagBool
	if w.ParamTypes()[0] != value.TagInt {
		t.Error("ParamTypes leaked internal slice")
	}

	if !w.HasDefaults() {
		t.Error("HasDefaults = false for defaulted wrapper")
	}
}
