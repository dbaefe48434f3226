// Package apperrors defines the error kinds raised by the use-case layer.
// The HTTP layer maps each kind to a status code; anything unrecognized is
// reported as an internal error with a safe message.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTaskNotFound is returned when a task id does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when a user id or email does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned for any failed login attempt. The
	// same error covers unknown email and wrong password so a caller cannot
	// probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries every field rule violated by a request, collected
// together instead of failing on the first one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidation builds a ValidationError from one or more messages.
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// ForbiddenError means the caller is authenticated but does not own the
// entity it tried to touch.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// ConflictError means a uniqueness rule was violated, e.g. an email that is
// already registered.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// PersistenceError wraps any store-level fault. The original cause stays
// attached for logging but is never shown to API callers.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError for the given operation.
func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
