// File: render.go
// Title: Table Rendering
// Description: Renders command listings and parameter specifications as
//              terminal tables.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/zhitkovns/engine-wrapper/command"
)

// renderList writes one row per command: name, signature, return type.
func renderList(w io.Writer, infos []command.Info) {
	if len(infos) == 0 {
		_, _ = fmt.Fprintln(w, "(no commands registered)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Command", "Parameters", "Returns"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, signature(info), info.ReturnType.String()})
	}
	t.Render()
}

// renderInfo writes the full parameter specification of one command.
func renderInfo(w io.Writer, info command.Info) {
	_, _ = fmt.Fprintf(w, "%s -> %s\n", info.Name, info.ReturnType)
	if len(info.ParamNames) == 0 {
		_, _ = fmt.Fprintln(w, "(no parameters)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Parameter", "Type"})
	for i, name := range info.ParamNames {
		t.AppendRow(table.Row{i + 1, name, info.ParamTypes[i].String()})
	}
	t.Render()
}

func signature(info command.Info) string {
	parts := make([]string, len(info.ParamNames))
	for i, name := range info.ParamNames {
		parts[i] = fmt.Sprintf("%s %s", name, info.ParamTypes[i])
	}
	return strings.Join(parts, ", ")
}
