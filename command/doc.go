// File: doc.go
// Title: Command Package Documentation
// Description: Package documentation for the command capability contract,
//              named arguments, and the shared error vocabulary.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24

// Package command defines the capability contract that every invocable
// thing in the dispatch core satisfies, the named-argument calling
// convention, and the coded error vocabulary shared by wrappers and
// engines.
//
// A Command executes against an ordered list of named arguments and
// returns an erased value. Beyond execution it exposes a read-only
// parameter specification (names, type tags, return tag) so that
// registries can introspect commands without knowing their concrete
// type. The wrapper package supplies the canonical implementation;
// custom implementations are equally acceptable to the engine.
//
// Errors carry a Code from a small closed set. Callers branch on codes
// through IsCode rather than string matching:
//
//	if command.IsCode(err, command.CodeNotFound) { ... }
package command
