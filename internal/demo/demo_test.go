// File: demo_test.go
// Title: Demo Receiver Integration Tests
// Description: Dispatches the demo calculator through a live engine and
//              checks parity with direct method calls.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package demo

import (
	"math"
	"testing"

	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/engine"
)

func newSession(t *testing.T) (*engine.Engine, *Calculator) {
	t.Helper()
	e := engine.New()
	calc := NewCalculator(5)
	if err := Register(e, calc); err != nil {
		t.Fatalf("demo registration failed: %v", err)
	}
	return e, calc
}

func TestRegisterWiresAllCommands(t *testing.T) {
	e, _ := newSession(t)

	want := []string{
		"add", "answer", "concat", "describe", "divide",
		"double", "multiply", "multiply-stored", "set-stored", "stored",
	}
	got := e.List()
	if len(got) != len(want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatchParity(t *testing.T) {
	e, calc := newSession(t)

	// Dispatching with fully supplied arguments returns the same value
	// as calling the method directly in positional order.
	direct := calc.Multiply(6, 7)
	dispatched, err := engine.ExecuteAs[int](e, "multiply",
		command.IntArg("a", 6), command.IntArg("b", 7))
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if dispatched != direct {
		t.Errorf("dispatched = %d, direct = %d", dispatched, direct)
	}

	s, err := engine.ExecuteAs[string](e, "concat",
		command.StringArg("a", "foo"), command.StringArg("b", "bar"))
	if err != nil {
		t.Fatalf("concat failed: %v", err)
	}
	if s != calc.Concat("foo", "bar") {
		t.Errorf("concat = %q", s)
	}
}

func TestStatefulDispatch(t *testing.T) {
	e, calc := newSession(t)

	if _, err := engine.ExecuteAs[int](e, "set-stored", command.IntArg("value", 12)); err != nil {
		t.Fatalf("set-stored failed: %v", err)
	}
	if calc.Stored() != 12 {
		t.Errorf("receiver stored = %d, want 12", calc.Stored())
	}

	got, err := engine.ExecuteAs[int](e, "multiply-stored", command.IntArg("factor", 3))
	if err != nil {
		t.Fatalf("multiply-stored failed: %v", err)
	}
	if got != 36 {
		t.Errorf("multiply-stored = %d, want 36", got)
	}

	// Defaulted factor.
	got, err = engine.ExecuteAs[int](e, "multiply-stored")
	if err != nil {
		t.Fatalf("multiply-stored with default failed: %v", err)
	}
	if got != 12 {
		t.Errorf("multiply-stored default = %d, want 12", got)
	}
}

func TestDivide(t *testing.T) {
	e, _ := newSession(t)

	got, err := engine.ExecuteAs[float64](e, "divide",
		command.FloatArg("a", 9), command.FloatArg("b", 2))
	if err != nil {
		t.Fatalf("divide failed: %v", err)
	}
	if got != 4.5 {
		t.Errorf("divide = %g, want 4.5", got)
	}

	// Defaulted divisor is 1.
	got, err = engine.ExecuteAs[float64](e, "divide", command.FloatArg("a", 7))
	if err != nil {
		t.Fatalf("divide with default failed: %v", err)
	}
	if got != 7 {
		t.Errorf("divide default = %g, want 7", got)
	}

	got, err = engine.ExecuteAs[float64](e, "divide",
		command.FloatArg("a", 1), command.FloatArg("b", 0))
	if err != nil {
		t.Fatalf("divide by zero failed: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("divide by zero = %g, want +Inf", got)
	}
}

func TestDescribe(t *testing.T) {
	e, calc := newSession(t)

	s, err := engine.ExecuteAs[string](e, "describe")
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	if s != calc.Describe() {
		t.Errorf("describe = %q, direct = %q", s, calc.Describe())
	}
}
