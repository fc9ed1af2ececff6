// Package apperror defines the business-error taxonomy surfaced at the
// application boundary. Callers classify failures with errors.Is against the
// sentinel values; the wrapped message carries the detail.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed caller input. Recoverable by
	// correcting the input, never retried automatically.
	ErrValidation = errors.New("validation error")

	// ErrState marks an operation attempted against an aggregate in the
	// wrong lifecycle state.
	ErrState = errors.New("state error")

	// ErrConflict marks an attempt to create something that already exists,
	// including races lost at commit time.
	ErrConflict = errors.New("conflict error")

	// ErrNotFound marks a lookup for a record that does not exist.
	ErrNotFound = errors.New("not found")
)

// Validation wraps ErrValidation with a formatted detail message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// State wraps ErrState with a formatted detail message.
func State(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrState, fmt.Sprintf(format, args...))
}

// Conflict wraps ErrConflict with a formatted detail message.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with a formatted detail message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
