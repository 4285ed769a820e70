// File: demo.go
// Title: Demo Receiver
// Description: A sample receiver with arithmetic and string methods,
//              plus the wiring that registers its methods as commands.
//              Used by the ewsh shell and by integration-style tests.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package demo

import (
	"fmt"
	"math"

	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/engine"
)

// Calculator is a stateful demo receiver. Engines hold it by borrowed
// reference, so the Calculator must outlive every engine it is
// registered in.
type Calculator struct {
	stored int
}

// NewCalculator creates a calculator with an initial stored value.
func NewCalculator(stored int) *Calculator {
	return &Calculator{stored: stored}
}

// Multiply returns a*b.
func (c *Calculator) Multiply(a, b int) int { return a * b }

// Add returns a+b.
func (c *Calculator) Add(a, b int) int { return a + b }

// Double returns a*2.
func (c *Calculator) Double(a int) int { return a * 2 }

// Answer returns the canonical no-argument result.
func (c *Calculator) Answer() int { return 42 }

// Divide returns a/b; division by zero yields +/-Inf per float64
// semantics rather than failing.
func (c *Calculator) Divide(a, b float64) float64 {
	if b == 0 {
		return math.Inf(int(math.Copysign(1, a)))
	}
	return a / b
}

// Concat returns a+b.
func (c *Calculator) Concat(a, b string) string { return a + b }

// SetStored replaces the stored value and returns it.
func (c *Calculator) SetStored(v int) int {
	c.stored = v
	return c.stored
}

// Stored returns the stored value.
func (c Calculator) Stored() int { return c.stored }

// MultiplyStored returns stored*factor without mutating the receiver.
func (c Calculator) MultiplyStored(factor int) int { return c.stored * factor }

// Describe renders the receiver state.
func (c Calculator) Describe() string {
	return fmt.Sprintf("calculator with stored value %d", c.stored)
}

// Register wires the calculator's methods into the engine under their
// demo command names. Some commands carry full default sets, some
// none, so the shell can demonstrate both calling conventions.
func Register(e *engine.Engine, calc *Calculator) error {
	if err := engine.Register2(e, "multiply", calc, (*Calculator).Multiply,
		command.IntArg("a", 0), command.IntArg("b", 0)); err != nil {
		return err
	}
	if err := engine.Register2(e, "add", calc, (*Calculator).Add,
		command.IntArg("a", 0), command.IntArg("b", 0)); err != nil {
		return err
	}
	if err := engine.Register1(e, "double", calc, (*Calculator).Double); err != nil {
		return err
	}
	if err := engine.Register0(e, "answer", calc, (*Calculator).Answer); err != nil {
		return err
	}
	if err := engine.Register2(e, "divide", calc, (*Calculator).Divide,
		command.FloatArg("a", 0), command.FloatArg("b", 1)); err != nil {
		return err
	}
	if err := engine.Register2(e, "concat", calc, (*Calculator).Concat,
		command.StringArg("a", ""), command.StringArg("b", "")); err != nil {
		return err
	}
	if err := engine.Register1(e, "set-stored", calc, (*Calculator).SetStored,
		command.IntArg("value", 0)); err != nil {
		return err
	}
	if err := engine.Register0(e, "stored", calc, (*Calculator).Stored); err != nil {
		return err
	}
	if err := engine.Register1(e, "multiply-stored", calc, (*Calculator).MultiplyStored,
		command.IntArg("factor", 1)); err != nil {
		return err
	}
	return engine.Register0(e, "describe", calc, (*Calculator).Describe)
}
