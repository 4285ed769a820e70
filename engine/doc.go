// File: doc.go
// Title: Engine Package Documentation
// Description: Package documentation for the command registry and
//              dispatch entry point.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

// Package engine implements the name-to-command registry and the
// uniform dispatch entry point of the engine-wrapper core.
//
// An Engine is a plain, explicitly constructed object; multiple
// engines with disjoint command sets may coexist in one process. The
// engine exclusively owns the commands registered into it: Clear drops
// them all, and re-registering under a live name is rejected rather
// than updated in place.
//
//	eng := engine.New()
//	err := engine.Register2(eng, "multiply", calc, (*Calculator).Multiply,
//		command.IntArg("a", 0), command.IntArg("b", 0))
//	res, err := eng.Execute("multiply", command.IntArg("a", 4), command.IntArg("b", 5))
//	n, err := engine.ExecuteAs[int](eng, "multiply", command.IntArg("a", 4), command.IntArg("b", 5))
//
// The internal map is guarded by an RWMutex so that introspection does
// not race with registration, but the engine performs no call-level
// orchestration: execution is a plain call-stack operation and callers
// that share one engine across goroutines must serialize registration
// against invocation themselves.
package engine
