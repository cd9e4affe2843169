package profscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNREACHABLE = "unreachable"
	ESESSION     = "session"
	ENOCONTENT   = "no_content"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
//
// Any non-application error (such as a disk error) should be reported as an
// EINTERNAL error and the human user should only see "Internal error" as the
// message. These low-level internal error details should only be logged and
// reported to the operator of the application (not the end user).
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Underlying cause, if the message was built with %w.
	err error
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("profscrape error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause so errors.Is can see through the code.
func (e *Error) Unwrap() error {
	return e.err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message. A %w verb in format keeps the cause reachable through
// errors.Is and errors.As.
func Errorf(code string, format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{
		Code:    code,
		Message: wrapped.Error(),
		err:     errors.Unwrap(wrapped),
	}
}
