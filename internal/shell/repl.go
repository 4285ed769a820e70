// File: repl.go
// Title: Interactive REPL
// Description: Runs the readline-backed REPL: scans command lines,
//              dispatches them through the engine, and renders results
//              and dot-commands.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func runREPL(cmd *cobra.Command, sess *session) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sess.cfg.Prompt,
		HistoryFile:     sess.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("shell: failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "engine-wrapper shell")
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := sess.handleDotCommand(out, line); quit {
				return nil
			}
			continue
		}

		name, args, err := ScanLine(line)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}

		result, err := sess.eng.Execute(name, args...)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		_, _ = fmt.Fprintln(out, result.String())
	}
}

// handleDotCommand processes REPL meta commands; it reports whether
// the loop should terminate.
func (s *session) handleDotCommand(out io.Writer, line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintln(out, "  NAME key=value ...   execute a command")
		_, _ = fmt.Fprintln(out, "  .list                list registered commands")
		_, _ = fmt.Fprintln(out, "  .info NAME           show a command's parameters")
		_, _ = fmt.Fprintln(out, "  .quit                exit the shell")

	case ".list":
		renderList(out, s.infos())

	case ".info":
		if len(parts) != 2 {
			_, _ = fmt.Fprintln(out, "Usage: .info NAME")
			break
		}
		info, err := s.eng.Info(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
			break
		}
		renderInfo(out, info)

	default:
		_, _ = fmt.Fprintf(out, "Unknown command %s, try .help\n", parts[0])
	}
	return false
}
