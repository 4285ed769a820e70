// File: engine.go
// Title: Command Registry and Dispatch Engine
// Description: Implements the Engine that owns named commands and
//              provides registration, invocation, and introspection with
//              structured logging of every mutation and dispatch.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-10 v0.1.0: Initial registry implementation

package engine

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/value"
)

// Engine owns a name-to-command mapping and dispatches named-argument
// calls to the matching command. Construct with New; the zero Engine is
// not usable.
type Engine struct {
	commands map[string]command.Command
	logger   *zap.Logger
	id       string
	mutex    sync.RWMutex
}

// Options configures engine behavior.
type Options struct {
	// Logger for registry and dispatch events (optional, defaults to a
	// no-op logger).
	Logger *zap.Logger
}

// New creates a new engine. Each engine carries a unique instance ID
// in its log fields so that logs from coexisting engines stay
// distinguishable.
func New(opts ...Options) *Engine {
	logger := zap.NewNop()
	if len(opts) > 0 && opts[0].Logger != nil {
		logger = opts[0].Logger
	}

	id := uuid.NewString()
	e := &Engine{
		commands: make(map[string]command.Command),
		logger: logger.With(
			zap.String("component", "engine"),
			zap.String("engineID", id),
		),
		id: id,
	}

	e.logger.Debug("engine initialized")
	return e
}

// ID returns the engine's unique instance ID.
func (e *Engine) ID() string { return e.id }

// Register transfers ownership of a command into the engine under the
// given name. The name must be non-empty and not already present; the
// first registration under a name stays active when a later one is
// rejected.
func (e *Engine) Register(name string, cmd command.Command) error {
	if isBlank(name) {
		return command.NewError(command.CodeValidation, "command name cannot be empty")
	}
	if cmd == nil {
		return command.NewError(command.CodeConfiguration, "cannot register nil command").
			WithCommand(name)
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	if _, exists := e.commands[name]; exists {
		return command.NewError(command.CodeConflict, "command already registered").
			WithCommand(name)
	}
	e.commands[name] = cmd

	e.logger.Info("command registered",
		zap.String("command", name),
		zap.Int("paramCount", len(cmd.ParamNames())),
		zap.Stringer("returns", cmd.ReturnType()),
	)
	return nil
}

// Execute dispatches a named-argument call to the command registered
// under name and returns its erased result.
func (e *Engine) Execute(name string, args ...command.Arg) (value.Value, error) {
	if isBlank(name) {
		return value.Value{}, command.NewError(command.CodeValidation, "command name cannot be empty")
	}

	e.mutex.RLock()
	cmd, exists := e.commands[name]
	e.mutex.RUnlock()

	if !exists {
		return value.Value{}, command.NewError(command.CodeNotFound, "command not found").
			WithCommand(name)
	}

	e.logger.Debug("executing command",
		zap.String("command", name),
		zap.Int("argCount", len(args)),
	)

	result, err := cmd.Execute(args)
	if err != nil {
		e.logger.Debug("command execution failed",
			zap.String("command", name),
			zap.Error(err),
		)
		return value.Value{}, attachCommand(err, name)
	}

	e.logger.Debug("command executed",
		zap.String("command", name),
		zap.Stringer("resultType", result.Tag()),
	)
	return result, nil
}

// ExecuteAs dispatches a call through e.Execute and narrows the result
// to R. A narrowing failure reports both the requested type and the
// command's declared return type.
func ExecuteAs[R value.Scalar](e *Engine, name string, args ...command.Arg) (R, error) {
	var zero R

	result, err := e.Execute(name, args...)
	if err != nil {
		return zero, err
	}

	out, err := value.As[R](result)
	if err != nil {
		declared := value.TagInvalid
		if info, infoErr := e.Info(name); infoErr == nil {
			declared = info.ReturnType
		}
		return zero, command.NewError(command.CodeTypeMismatch,
			"command result does not narrow to requested type").
			WithCommand(name).
			WithTypes(value.TagFor[R](), declared).
			WithCause(err)
	}
	return out, nil
}

// Info returns a read-only snapshot of the named command's parameter
// specification. Validation and not-found behavior mirror Execute.
func (e *Engine) Info(name string) (command.Info, error) {
	if isBlank(name) {
		return command.Info{}, command.NewError(command.CodeValidation, "command name cannot be empty")
	}

	e.mutex.RLock()
	cmd, exists := e.commands[name]
	e.mutex.RUnlock()

	if !exists {
		return command.Info{}, command.NewError(command.CodeNotFound, "command not found").
			WithCommand(name)
	}

	info := command.Describe(cmd)
	info.Name = name
	return info, nil
}

// Has reports whether a command is registered under name. An empty
// name yields false without error.
func (e *Engine) Has(name string) bool {
	if isBlank(name) {
		return false
	}

	e.mutex.RLock()
	defer e.mutex.RUnlock()

	_, exists := e.commands[name]
	return exists
}

// List returns the sorted names of all registered commands.
func (e *Engine) List() []string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered commands.
func (e *Engine) Count() int {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return len(e.commands)
}

// Clear releases all registered commands. The engine stays usable for
// new registrations.
func (e *Engine) Clear() {
	e.mutex.Lock()
	count := len(e.commands)
	e.commands = make(map[string]command.Command)
	e.mutex.Unlock()

	e.logger.Info("engine cleared", zap.Int("releasedCount", count))
}

// attachCommand fills in the command name on dispatch errors coming
// from commands that do not know their registered name.
func attachCommand(err error, name string) error {
	if de, ok := err.(*command.Error); ok && de.Command() == "" {
		return de.WithCommand(name)
	}
	return err
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
