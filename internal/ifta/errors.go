package ifta

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks a missing return, record or jurisdiction.
	ErrNotFound = errors.New("not found")
	// ErrReturnFiled is returned when a filed return would be regenerated or filed twice.
	ErrReturnFiled = errors.New("return already filed")
	// ErrInvariant marks a reconciliation failure in a computed return. It is a bug, never user input.
	ErrInvariant = errors.New("internal invariant violated")
)

// ValidationError lists every rule an input violated.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError builds a ValidationError from a list of messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Errors: msgs}
}

// DependencyError wraps a failed or timed out call to an external system.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
