// Package pathutil provides helpers for extracting values from URL paths and
// normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidID is returned when the ID in the URL path is invalid.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidSlug is returned when the slug segment of a URL path is empty
	// or contains further path separators.
	ErrInvalidSlug = errors.New("invalid slug")
)

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the given prefix and parses the remainder as an int64.
// IDs must be positive.
//
//	id, err := ExtractID("/articles/subject/3", "/articles/subject/")
//	// Returns: 3, nil
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ExtractSlug extracts the slug segment from a URL path after the given
// prefix. The remainder must be a single non-empty segment.
//
//	slug, err := ExtractSlug("/articles/nutrition-myths", "/articles/")
//	// Returns: "nutrition-myths", nil
func ExtractSlug(path, prefix string) (string, error) {
	slug := strings.TrimPrefix(path, prefix)
	if slug == "" || strings.Contains(slug, "/") {
		return "", ErrInvalidSlug
	}
	return slug, nil
}
