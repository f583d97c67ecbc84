// Package article provides use cases for managing article entities.
// It implements business logic for creating and querying articles, including
// validation, search, and interaction with the article repository.
package article

import (
	"errors"
	"fmt"

	"multilingua/internal/domain/entity"
)

// Sentinel errors for article use case operations. The not-found and
// invalid-input sentinels wrap the matching domain sentinel, so errors.Is
// matches at either level.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = fmt.Errorf("article %w", entity.ErrNotFound)

	// ErrInvalidLimit indicates that a requested result limit is invalid.
	// Limits must be positive integers.
	ErrInvalidLimit = fmt.Errorf("%w limit", entity.ErrInvalidInput)

	// ErrEmptyQuery indicates that a search was requested without a query.
	ErrEmptyQuery = errors.New("search query is required")
)
