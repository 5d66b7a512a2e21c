package settings

import "errors"

// Errors returned by registry operations.
var (
	// ErrNotFound indicates an unknown setting name.
	ErrNotFound = errors.New("unknown setting")

	// ErrRemoteReset indicates an attempt to reset a remote-owned
	// setting, which has no local default.
	ErrRemoteReset = errors.New("remote settings cannot be reset")

	// ErrAlreadyRegistered indicates a duplicate setting name.
	ErrAlreadyRegistered = errors.New("setting already registered")

	// ErrNotFetched indicates a remote setting read before any
	// successful Update.
	ErrNotFetched = errors.New("remote value not fetched yet")
)
