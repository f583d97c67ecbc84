// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Subject and Article, along with
// their validation rules and domain-specific errors.
package entity

// Subject represents a content category under which articles are grouped.
// ArticleCount is a derived aggregate maintained by the store: it equals the
// number of stored articles referencing this subject's ID.
type Subject struct {
	ID           int64
	Name         string
	Slug         string
	Icon         string
	ArticleCount int
}

// Validate validates the Subject entity fields.
func (s *Subject) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if err := ValidateSlug(s.Slug); err != nil {
		return err
	}
	return nil
}
