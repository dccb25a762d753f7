// Package apperr provides the application's error taxonomy with HTTP status mapping.
// Every request-terminating failure in the system is one of these types; handlers
// convert them to JSON responses through Abort.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Type categorizes an error for HTTP mapping and metrics.
type Type string

const (
	// TypeValidation indicates malformed or insufficient input (HTTP 400)
	TypeValidation Type = "validation"
	// TypeAuth indicates bad credentials or a bad/absent/expired session (HTTP 401)
	TypeAuth Type = "auth"
	// TypeForbidden indicates an authenticated but unentitled caller (HTTP 403)
	TypeForbidden Type = "forbidden"
	// TypeNotFound indicates an unknown resource (HTTP 404)
	TypeNotFound Type = "not_found"
	// TypeConflict indicates a duplicate unique key (HTTP 409)
	TypeConflict Type = "conflict"
	// TypeInternal indicates a server-side failure (HTTP 500)
	TypeInternal Type = "internal"
)

// Error is a typed error carrying a human-readable message and an optional cause.
type Error struct {
	Type    Type
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the HTTP status code for this error's type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeAuth:
		return http.StatusUnauthorized
	case TypeForbidden:
		return http.StatusForbidden
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation creates a validation error (HTTP 400).
func Validation(message string) *Error {
	return &Error{Type: TypeValidation, Message: message}
}

// Auth creates an authentication error (HTTP 401).
func Auth(message string) *Error {
	return &Error{Type: TypeAuth, Message: message}
}

// Forbidden creates an authorization error (HTTP 403).
func Forbidden(message string) *Error {
	return &Error{Type: TypeForbidden, Message: message}
}

// NotFound creates a not-found error (HTTP 404).
func NotFound(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message}
}

// Conflict creates a duplicate-key error (HTTP 409).
func Conflict(message string) *Error {
	return &Error{Type: TypeConflict, Message: message}
}

// Internal creates a server-side error (HTTP 500) wrapping its cause.
func Internal(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause}
}

// From converts any error into an *Error. Unknown errors become internal errors
// with a generic message so internals never leak to clients.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Type: TypeInternal, Message: "internal server error", Cause: err}
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t Type) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == t
}
