// Package apperror carries a catalog message kind, its HTTP status and the
// arguments needed to render it.
package apperror

import (
	"errors"
	"net/http"

	"github.com/tair/favorites-service/pkg/catalog"
)

// Error is the error type returned by command and query handlers.
type Error struct {
	Kind   catalog.Message
	Status int
	Args   []any
	Err    error
}

// New creates an error of the given kind and status.
func New(status int, kind catalog.Message, args ...any) *Error {
	return &Error{Kind: kind, Status: status, Args: args}
}

func NotFound(kind catalog.Message, args ...any) *Error {
	return New(http.StatusNotFound, kind, args...)
}

func Conflict(kind catalog.Message, args ...any) *Error {
	return New(http.StatusConflict, kind, args...)
}

func Forbidden(kind catalog.Message, args ...any) *Error {
	return New(http.StatusForbidden, kind, args...)
}

func Unauthorized(kind catalog.Message, args ...any) *Error {
	return New(http.StatusUnauthorized, kind, args...)
}

// Validation reports a malformed or semantically invalid request.
func Validation(detail string) *Error {
	return New(http.StatusUnprocessableEntity, catalog.ValidationFailure, detail)
}

// TooManyRequests reports a throttled caller.
func TooManyRequests(retryAfterSeconds int) *Error {
	return New(http.StatusTooManyRequests, catalog.TooManyRequests, retryAfterSeconds)
}

// Internal wraps an unexpected failure. The cause is kept for logging and
// never rendered.
func Internal(err error) *Error {
	return &Error{Kind: catalog.InternalError, Status: http.StatusInternalServerError, Err: err}
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Message renders the user-facing description.
func (e *Error) Message() string {
	return e.Kind.Format(e.Args...)
}

// From converts any error into an *Error, treating unknown errors as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// KindOf returns the catalog kind of err, or catalog.Unknown.
func KindOf(err error) catalog.Message {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return catalog.Unknown
}
