// File: main.go
// Title: ewsh Entry Point
// Description: Entry point for the ewsh interactive shell.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package main

import (
	"os"

	"github.com/zhitkovns/engine-wrapper/internal/shell"
)

func main() {
	if err := shell.Execute(); err != nil {
		os.Exit(1)
	}
}
