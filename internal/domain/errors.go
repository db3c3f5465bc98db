package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternalError indicates an internal server error.
	ErrInternalError = errors.New("internal error")
)

// NotFoundError carries the fixed, user-facing message for a missing entity.
// The message is propagated verbatim to the API caller.
type NotFoundError struct {
	Entity  string
	Message string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return e.Message
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError carries the fixed, user-facing message for a duplicate entity.
type AlreadyExistsError struct {
	Entity  string
	Message string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return e.Message
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors is the structured list of field-level failures produced by
// the validation layer. It aborts a request before any domain logic runs.
type ValidationErrors struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}

// NewNotFoundError creates a NotFoundError with a fixed message.
func NewNotFoundError(entity, message string) *NotFoundError {
	return &NotFoundError{Entity: entity, Message: message}
}

// NewAlreadyExistsError creates an AlreadyExistsError with a fixed message.
func NewAlreadyExistsError(entity, message string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity, Message: message}
}
