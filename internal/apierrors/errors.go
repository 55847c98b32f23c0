// Package apierrors defines the errors returned to API clients.
package apierrors

import (
	"errors"
	"net/http"
)

// Kind classifies an APIError.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindDuplicateEmail     Kind = "duplicate_email"
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindInternal           Kind = "internal"
)

// APIError is an error with a client-facing message and HTTP status.
// Err holds the internal cause and is never sent to clients.
type APIError struct {
	Kind     Kind
	HTTPCode int
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As returns the APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}

func newError(kind Kind, code int, msg string) *APIError {
	return &APIError{Kind: kind, HTTPCode: code, Message: msg}
}

func NewErrValidation(msg string, cause error) *APIError {
	e := newError(KindValidation, http.StatusBadRequest, msg)
	e.Err = cause
	return e
}

func NewErrInvalidPayload() *APIError {
	return newError(KindValidation, http.StatusBadRequest, "Invalid request payload")
}

func NewErrEmailIsTaken() *APIError {
	return newError(KindDuplicateEmail, http.StatusBadRequest, "Email already registered")
}

func NewErrUserNotFound() *APIError {
	return newError(KindNotFound, http.StatusNotFound, "User not found")
}

func NewErrInvalidCredentials() *APIError {
	return newError(KindInvalidCredentials, http.StatusUnauthorized, "Invalid credentials")
}

func NewErrMissingAuthorizationToken() *APIError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, "Not authorized, no token")
}

func NewErrInvalidAuthorizationToken(cause error) *APIError {
	e := newError(KindUnauthenticated, http.StatusUnauthorized, "Not authorized, token failed")
	e.Err = cause
	return e
}

// NewErrSessionUserNotFound is returned when a valid token names a user that no longer exists.
func NewErrSessionUserNotFound() *APIError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, "User not found")
}

func NewErrInsufficientRole() *APIError {
	return newError(KindForbidden, http.StatusForbidden, "Access denied: insufficient permissions")
}

func NewErrForbidden(msg string) *APIError {
	return newError(KindForbidden, http.StatusForbidden, msg)
}

func NewErrTaskNotFound() *APIError {
	return newError(KindNotFound, http.StatusNotFound, "Task not found")
}

func NewErrResumeNotFound() *APIError {
	return newError(KindNotFound, http.StatusNotFound, "Resume not found")
}

func NewErrInternalServerError(cause error) *APIError {
	e := newError(KindInternal, http.StatusInternalServerError, "Server error")
	e.Err = cause
	return e
}
