package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the fnwrap library

var (
	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNilTarget indicates that a combinator was given a nil target function
	ErrNilTarget = errors.New("nil target function")
)

// IsConstruction returns true if the error was raised at factory time,
// before any wrapped function existed.
func IsConstruction(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration) || errors.Is(err, ErrNilTarget)
}

// ValidationError describes a rejected configuration parameter. It wraps
// ErrInvalidConfiguration so callers can test with errors.Is.
type ValidationError struct {
	Module string // package or component that rejected the value
	Field  string // parameter name
	Value  any    // the offending value
	Reason string // why the value was rejected
	Hint   string // optional guidance for fixing the value
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration) to succeed.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewValidationError creates a ValidationError for the given parameter.
func NewValidationError(module, field string, value any, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches guidance to the error and returns it for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}
