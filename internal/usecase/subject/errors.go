// Package subject provides use cases for managing subject entities.
// It implements business logic for creating and querying subjects, including
// validation and interaction with the subject repository.
package subject

import (
	"fmt"

	"multilingua/internal/domain/entity"
)

// Sentinel errors for subject use case operations. Each wraps the matching
// domain sentinel, so errors.Is matches at either level.
var (
	// ErrSubjectNotFound indicates that the requested subject was not found.
	ErrSubjectNotFound = fmt.Errorf("subject %w", entity.ErrNotFound)

	// ErrInvalidSubjectID indicates that the provided subject ID is invalid.
	// Subject IDs must be positive integers.
	ErrInvalidSubjectID = fmt.Errorf("%w subject ID", entity.ErrInvalidInput)
)
