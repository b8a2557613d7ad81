// Package serrors provides semantic error kinds shared by the lookup pipeline.
// A kind tells callers how a failure should be treated (fatal, retried, skipped)
// without inspecting error strings.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrInvalidInput indicates user supplied input failed validation.
	ErrInvalidInput = NewKind("INVALID_INPUT")
	// ErrNotFound indicates the looked up entity does not exist (e.g. unregistered domain).
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates a missing or rejected API key.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrRateLimited indicates the upstream provider throttled the request.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrUnavailable indicates the upstream service could not be reached or failed.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrMalformed indicates a response or file could not be decoded.
	ErrMalformed = NewKind("MALFORMED")
	// ErrRejected indicates the provider answered but refused the query.
	ErrRejected = NewKind("REJECTED")
	// ErrInternal indicates an unexpected local failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind, an optional wrapped error
// and an optional message. errors.Is and errors.As match either the kind or
// anything in the wrapped chain.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// KindOf returns the first kind found in err's chain, or nil when err carries
// no semantic kind.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// KindForStatus maps an HTTP status code returned by an upstream provider to
// the matching kind. 2xx codes map to nil.
func KindForStatus(code int) Kind {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusRequestTimeout, code == http.StatusGatewayTimeout:
		return ErrTimeout
	case code >= 500:
		return ErrUnavailable
	default:
		return ErrRejected
	}
}
