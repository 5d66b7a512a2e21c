package client

import (
	"errors"
	"fmt"
)

// Errors returned by daemon operations.
var (
	// ErrConnect indicates the daemon could not be reached.
	ErrConnect = errors.New("cannot connect to daemon")

	// ErrDaemon indicates the daemon answered with a failure result.
	ErrDaemon = errors.New("daemon reported failure")

	// ErrNoSession indicates a session read before any successful
	// RefreshSession.
	ErrNoSession = errors.New("no session snapshot")
)

// Error wraps a failed daemon operation with the request method.
type Error struct {
	// Method is the Transfer API method that failed.
	Method string

	// Err classifies the failure (ErrConnect or ErrDaemon).
	Err error

	// Reason is the daemon's failure message or the transport error text.
	Reason string
}

// Error returns "<method>: <reason>".
func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Method, e.Reason)
}

// Unwrap returns the classifying sentinel.
func (e *Error) Unwrap() error { return e.Err }
