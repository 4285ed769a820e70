// File: error.go
// Title: Coded Dispatch Errors
// Description: Implements the structured error type and the closed set
//              of error codes surfaced by the dispatch core. Errors carry
//              the command and parameter they concern plus the expected
//              and actual type tags where relevant.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-10 v0.1.0: Initial coded error implementation

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zhitkovns/engine-wrapper/value"
)

// Code classifies a dispatch error. The set is closed; every error the
// core returns carries exactly one of these codes.
type Code string

const (
	// CodeConfiguration marks bind-time or register-time misuse: nil
	// receiver, nil command, a default set that does not cover the
	// arity, or a default value of the wrong type.
	CodeConfiguration Code = "CONFIGURATION"

	// CodeValidation marks an empty command name passed to register,
	// execute, or info.
	CodeValidation Code = "VALIDATION"

	// CodeConflict marks registration under a name already present.
	CodeConflict Code = "CONFLICT"

	// CodeNotFound marks execute or info on an unregistered name.
	CodeNotFound Code = "NOT_FOUND"

	// CodeDuplicateArgument marks a call whose argument list repeats a
	// name.
	CodeDuplicateArgument Code = "DUPLICATE_ARGUMENT"

	// CodeMissingArgument marks a required parameter absent from the
	// call.
	CodeMissingArgument Code = "MISSING_ARGUMENT"

	// CodeTypeMismatch marks an argument or result that does not
	// narrow to the declared or requested type.
	CodeTypeMismatch Code = "TYPE_MISMATCH"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Valid checks if the code is one of the known dispatch codes.
func (c Code) Valid() bool {
	switch c {
	case CodeConfiguration, CodeValidation, CodeConflict, CodeNotFound,
		CodeDuplicateArgument, CodeMissingArgument, CodeTypeMismatch:
		return true
	default:
		return false
	}
}

// Error is a structured dispatch error: a code, a message, and the
// context the failure concerns. Context setters are chainable and
// return the receiver.
type Error struct {
	code     Code
	message  string
	command  string
	param    string
	expected value.Tag
	actual   value.Tag
	cause    error
}

// NewError creates a new Error with the given code and message.
func NewError(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Errorf creates a new Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// WithCommand attaches the command name the error concerns.
func (e *Error) WithCommand(name string) *Error {
	e.command = name
	return e
}

// WithParam attaches the parameter name the error concerns.
func (e *Error) WithParam(name string) *Error {
	e.param = name
	return e
}

// WithTypes attaches the expected and actual type tags of a mismatch.
func (e *Error) WithTypes(expected, actual value.Tag) *Error {
	e.expected = expected
	e.actual = actual
	return e
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Error implements the error interface. The rendered form is
// "[CODE] message (command=..., param=..., expected=..., actual=...)"
// with absent context omitted.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.code))
	b.WriteString("] ")
	b.WriteString(e.message)

	var ctx []string
	if e.command != "" {
		ctx = append(ctx, "command="+e.command)
	}
	if e.param != "" {
		ctx = append(ctx, "param="+e.param)
	}
	if e.expected.Valid() || e.actual.Valid() {
		ctx = append(ctx, "expected="+e.expected.String(), "actual="+e.actual.String())
	}
	if len(ctx) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(ctx, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// Code returns the error code.
func (e *Error) Code() Code { return e.code }

// Command returns the command name the error concerns, if any.
func (e *Error) Command() string { return e.command }

// Param returns the parameter name the error concerns, if any.
func (e *Error) Param() string { return e.param }

// Expected returns the expected type tag of a mismatch.
func (e *Error) Expected() value.Tag { return e.expected }

// Actual returns the actual type tag of a mismatch.
func (e *Error) Actual() value.Tag { return e.actual }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// IsCode reports whether err is (or wraps) a dispatch *Error carrying
// the given code.
func IsCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.code == code
	}
	return false
}

// CodeOf extracts the code of a dispatch error, or an empty Code when
// err is not one.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
