// Package syncerrors provides the wrapped internal error used by the repositories.
package syncerrors

import "fmt"

// InternalError records where a failure happened without leaking the inner
// error text into user-facing messages.
type InternalError struct {
	File          string
	Function      string
	Call          string
	Message       string
	OriginalError error
}

// CreateSyncError -.
func CreateSyncError(file string) InternalError {
	return InternalError{
		File:    file,
		Message: "internal error",
	}
}

func (e InternalError) Error() string {
	if e.Function == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}

	return fmt.Sprintf("%s - %s - %s: %s", e.File, e.Function, e.Call, e.Message)
}

// Wrap -.
func (e *InternalError) Wrap(function, call string, err error) error {
	e.Function = function
	e.Call = call
	e.OriginalError = err

	return e
}

func (e InternalError) Unwrap() error {
	return e.OriginalError
}
