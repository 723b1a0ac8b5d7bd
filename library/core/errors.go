package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code is a machine-readable error category.
type Code string

const (
	// CodeNotFound means a referenced entity does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeConflict means a uniqueness rule or a referential rule would be violated.
	CodeConflict Code = "CONFLICT"

	// CodeInvalidState means a lifecycle transition is not allowed from the current state.
	CodeInvalidState Code = "INVALID_STATE"

	// CodeValidation means the input is malformed. Fields carries the per-field messages.
	CodeValidation Code = "VALIDATION_FAILED"

	// CodeForbidden means the actor is authenticated but not allowed to perform the operation.
	CodeForbidden Code = "FORBIDDEN"

	// CodeUnauthenticated means the operation needs an authenticated actor.
	CodeUnauthenticated Code = "UNAUTHENTICATED"
)

var (
	// ErrNotFound matches any *Error with CodeNotFound via errors.Is.
	ErrNotFound = &Error{Code: CodeNotFound}

	// ErrConflict matches any *Error with CodeConflict via errors.Is.
	ErrConflict = &Error{Code: CodeConflict}

	// ErrInvalidState matches any *Error with CodeInvalidState via errors.Is.
	ErrInvalidState = &Error{Code: CodeInvalidState}

	// ErrValidation matches any *Error with CodeValidation via errors.Is.
	ErrValidation = &Error{Code: CodeValidation}

	// ErrForbidden matches any *Error with CodeForbidden via errors.Is.
	ErrForbidden = &Error{Code: CodeForbidden}

	// ErrUnauthenticated matches any *Error with CodeUnauthenticated via errors.Is.
	ErrUnauthenticated = &Error{Code: CodeUnauthenticated}
)

// Error is the domain error type with a human-readable message.
type Error struct {
	Code    Code              // Machine-readable error category
	Message string            // Human-readable message, safe to show to API clients
	Fields  map[string]string // Per-field messages for validation failures
	Cause   error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == CodeValidation && len(e.Fields) > 0 {
		return e.Message + ": " + e.fieldSummary()
	}

	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}

	return false
}

func (e *Error) fieldSummary() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}

	return strings.Join(parts, ", ")
}

// NotFound creates an error for an absent entity.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates an error for a uniqueness or referential violation.
func Conflict(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidState creates an error for an illegal lifecycle transition.
func InvalidState(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Forbidden creates an error for an operation the actor may not perform.
func Forbidden(format string, args ...any) *Error {
	return &Error{Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

// Unauthenticated creates an error for an operation that needs a logged-in actor.
func Unauthenticated(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

// ValidationFailed creates a validation error with per-field messages.
func ValidationFailed(fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: "validation failed", Fields: fields}
}

// CodeOf returns the Code of the first *Error in err's chain, or an empty Code.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	return ""
}
