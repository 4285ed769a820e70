// File: doc.go
// Title: Catalog Package Documentation
// Description: Package documentation for YAML command catalogs.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

// Package catalog serializes the human-facing view of an engine's
// command set: names, parameter specifications, return types, plus
// free-form descriptions and usage examples maintained alongside the
// dispatch tables.
//
// A Document can be exported from a live engine, saved as YAML, loaded
// back, and verified against an engine to detect drift between the
// documented catalog and the commands actually registered.
package catalog
