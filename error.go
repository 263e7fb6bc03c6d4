package autopress

import (
	"errors"
	"fmt"
)

// Application error codes. These map roughly onto HTTP status codes at the
// API boundary but are transport-agnostic within the domain.
const (
	EINVALID      = "invalid"      // validation failed
	ENOTFOUND     = "not_found"    // entity does not exist
	EUNAUTHORIZED = "unauthorized" // access denied
	EUNAVAILABLE  = "unavailable"  // remote service failed or unreachable
	EINTERNAL     = "internal"     // internal error
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("autopress error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error.".
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
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
