// File: shell.go
// Title: ewsh Command Tree
// Description: Builds the cobra command tree for the ewsh shell: the
//              interactive REPL plus one-shot list, info, exec, and
//              catalog subcommands over a demo-populated engine.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package shell

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zhitkovns/engine-wrapper/catalog"
	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/engine"
	"github.com/zhitkovns/engine-wrapper/internal/demo"
)

// session carries the state shared by the subcommands of one shell
// invocation.
type session struct {
	cfg    Config
	eng    *engine.Engine
	calc   *demo.Calculator
	logger *zap.Logger
}

// New builds the ewsh root command.
func New() *cobra.Command {
	var configPath string
	sess := &session{}

	root := &cobra.Command{
		Use:   "ewsh",
		Short: "Interactive shell over the engine-wrapper command dispatcher",
		Long: "ewsh hosts a dispatch engine populated with the demo calculator\n" +
			"commands and lets you invoke them with named arguments.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return sess.init(configPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if sess.logger != nil {
				_ = sess.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to ewsh.toml")

	root.AddCommand(newRunCmd(sess))
	root.AddCommand(newListCmd(sess))
	root.AddCommand(newInfoCmd(sess))
	root.AddCommand(newExecCmd(sess))
	root.AddCommand(newCatalogCmd(sess))
	return root
}

// Execute runs the shell and reports failure through the exit code.
func Execute() error {
	root := New()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (s *session) init(configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg

	logConfig := zap.NewProductionConfig()
	if cfg.Verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("shell: failed to build logger: %w", err)
	}
	s.logger = logger

	s.eng = engine.New(engine.Options{Logger: logger})
	s.calc = demo.NewCalculator(0)
	return demo.Register(s.eng, s.calc)
}

func (s *session) infos() []command.Info {
	var infos []command.Info
	for _, name := range s.eng.List() {
		if info, err := s.eng.Info(name); err == nil {
			infos = append(infos, info)
		}
	}
	return infos
}

func newRunCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, sess)
		},
	}
}

func newListCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderList(cmd.OutOrStdout(), sess.infos())
			return nil
		},
	}
}

func newInfoCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show a command's parameter specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := sess.eng.Info(args[0])
			if err != nil {
				return err
			}
			renderInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newExecCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "exec NAME [key=value ...]",
		Short: "Execute one command and print its result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			var callArgs []command.Arg
			for _, raw := range args[1:] {
				_, parsed, err := ScanLine(name + " " + raw)
				if err != nil {
					return err
				}
				callArgs = append(callArgs, parsed...)
			}
			result, err := sess.eng.Execute(name, callArgs...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}

func newCatalogCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Export the command catalog as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := catalog.Export(sess.eng)
			return doc.Save(cmd.OutOrStdout())
		},
	}
}
