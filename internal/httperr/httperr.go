package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the gateway's error type. Every handler error is one of these
// (or gets wrapped into one by the error middleware) so that nothing
// escapes as a framework default page.
type Error struct {
	Status  int    // HTTP status to respond with
	Message string // short machine-ish error, goes into "error"
	Details string // optional human detail, goes into "message"/"details"
	Err     error  // wrapped cause, logged but not exposed
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports bad or missing caller input (400).
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// NotFound reports an id that does not resolve to a record (404).
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Config reports a missing credential or key (500, explicit message).
func Config(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}

// Upstream reports a failed third-party call. status carries the provider's
// own status code where known; 0 means plain 500.
func Upstream(status int, msg string, cause error) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Status: status, Message: msg, Err: cause}
}

// Service reports an unavailable store or other internal failure (500).
func Service(msg string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg, Err: cause}
}

// From extracts an *Error from err, or wraps it as a 500 Service error.
func From(err error) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}
	return &Error{Status: http.StatusInternalServerError, Message: "internal error", Err: err}
}
