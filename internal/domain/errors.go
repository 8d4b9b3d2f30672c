package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("insufficient permissions")
	ErrConflict      = errors.New("conflict")

	// ErrNoAccess is returned when the caller has no role on a folder. It is used both
	// for missing folders and for folders the caller cannot see, so callers must not
	// be able to tell the two apart.
	ErrNoAccess = errors.New("no access")

	ErrSubscriptionRequired = errors.New("subscription required")
	ErrLimitExceeded        = errors.New("limit exceeded")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LimitExceededError reports a free-tier cap that blocked a creation.
type LimitExceededError struct {
	Resource string
	Limit    int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("limit exceeded: %s", e.Message())
}

// Message returns the user-facing description, e.g. "max 1 folder".
func (e *LimitExceededError) Message() string {
	noun := e.Resource
	if e.Limit != 1 {
		noun += "s"
	}
	return fmt.Sprintf("max %d %s", e.Limit, noun)
}

func (e *LimitExceededError) Unwrap() error { return ErrLimitExceeded }

// NewLimitExceededError creates a LimitExceededError for the given resource name
// (singular, e.g. "folder").
func NewLimitExceededError(resource string, limit int) *LimitExceededError {
	return &LimitExceededError{Resource: resource, Limit: limit}
}
