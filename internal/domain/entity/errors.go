package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found. Use case
	// packages wrap it into entity-specific sentinels so handlers can match
	// either the specific error or this one.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that the provided input is invalid. Wrapped by
	// use case packages the same way as ErrNotFound.
	ErrInvalidInput = errors.New("invalid")

	// ErrMissingFallback indicates a data integrity failure: an article's
	// translations map has no entry for the fallback language ("en").
	// Resolution must fail for that single article rather than return a
	// partially empty translation.
	ErrMissingFallback = errors.New("article has no fallback translation")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
