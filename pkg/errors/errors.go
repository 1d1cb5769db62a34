package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrInvalidInput indicates a submission failed schema validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates an optional collaborator was never configured
	ErrNotConfigured = errors.New("not configured")
)

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// NotConfiguredError reports that component has no configuration
func NotConfiguredError(component string) error {
	return fmt.Errorf("%s %w", component, ErrNotConfigured)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
