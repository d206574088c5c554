// Package errors provides structured error types for the outer surfaces of
// svgkit: scene loading, file export, the render cache and the CLI.
//
// The document builder in pkg/svg never returns errors; it reports through
// pkg/diag instead. Errors in this package are for failures that stop a
// whole operation, such as an unreadable scene file.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_*: Names that do not resolve
//   - *_FAILED, *_ERROR: Failed I/O and unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownElement, "unknown element kind %q", kind)
//	if errors.Is(err, errors.ErrCodeUnknownElement) {
//	    // Handle scene error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeExportFailed, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidScene  Code = "INVALID_SCENE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Unresolved names
	ErrCodeUnknownElement   Code = "UNKNOWN_ELEMENT"
	ErrCodeUnknownReference Code = "UNKNOWN_REFERENCE"

	// I/O errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeExportFailed Code = "EXPORT_FAILED"
	ErrCodeCache        Code = "CACHE_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error prints the code once, followed by the messages of the whole chain:
//
//	UNKNOWN_ELEMENT: elements[2]: unknown element kind "star"
func (e *Error) Error() string {
	return string(e.Code) + ": " + UserMessage(e)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap creates an Error around cause. Scene compilation wraps nested
// errors with a path prefix such as "filters[0].effects[1]" while keeping
// the inner code.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage joins the messages of err's chain without their codes.
func UserMessage(err error) string {
	var parts []string
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, e.Message)
		err = e.Cause
	}
	return strings.Join(parts, ": ")
}
