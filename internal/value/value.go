package value

import (
	"errors"
	"fmt"
)

// Value is a self-validating setting value with a canonical, re-parseable
// string form.
type Value interface {
	// String returns the canonical string form. Parsing it with the same
	// configuration yields an equal value.
	String() string

	// Syntax returns a human-readable grammar description for help text.
	Syntax() string
}

// ErrInvalidValue is the sentinel matched by every ValidationError.
var ErrInvalidValue = errors.New("invalid value")

// ValidationError reports raw input that failed a constructor's checks.
// Reason is shown to the user as-is; Input preserves the offending input.
type ValidationError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Is matches ValidationError against ErrInvalidValue.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}

func validationErrorf(input, format string, args ...any) *ValidationError {
	return &ValidationError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// resolveAlias replaces v with its alias target, if one is defined.
func resolveAlias(v string, aliases map[string]string) string {
	if target, ok := aliases[v]; ok {
		return target
	}
	return v
}
