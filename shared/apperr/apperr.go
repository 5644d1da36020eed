// Package apperr defines the error taxonomy returned by API handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	// Validation is bad or missing input.
	Validation Kind = iota
	// Auth is a missing or invalid session.
	Auth
	// Forbidden is an authenticated caller without permission.
	Forbidden
	// NotFound is a missing post or comment.
	NotFound
	// Upstream is a failed dependent REST call.
	Upstream
)

// Error is an error carrying a Kind and an HTTP status.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error of the given kind with the default status for that kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Status: defaultStatus(kind), Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// UpstreamWithStatus creates an Upstream error passing through the
// dependent service's HTTP status.
func UpstreamWithStatus(status int, message string) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Kind: Upstream, Status: status, Message: message}
}

func defaultStatus(kind Kind) int {
	switch kind {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Upstream:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// StatusOf returns the HTTP status for err, 500 for unclassified errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err is an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
