// Package errors provides structured error types for the Bricklayer application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The generation and build pipeline reports four terminal failure kinds:
//   - UNSATISFIABLE_BOND: wall width cannot be tiled by the bond's brick sizes
//   - INVALID_SUPPORT: a generated wall violates the support-count invariant
//   - INFEASIBLE: the Wild solver exhausted its search or step budget
//   - STUCK_ENVELOPE: the build cannot make progress within the envelope
//
// None of these are transient - the core performs no I/O, so the caller
// decides whether to retry with different parameters (a new seed, a larger
// envelope, an adjusted width).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsatisfiableBond, "width %d mm not tileable", w)
//	if errors.Is(err, errors.ErrCodeUnsatisfiableBond) {
//	    // Suggest a legal width
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "load %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Generation errors
	ErrCodeUnsatisfiableBond Code = "UNSATISFIABLE_BOND"
	ErrCodeInvalidSupport    Code = "INVALID_SUPPORT"
	ErrCodeInfeasible        Code = "INFEASIBLE"

	// Build errors
	ErrCodeStuckEnvelope Code = "STUCK_ENVELOPE"
	ErrCodeBuildFinished Code = "BUILD_FINISHED"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
