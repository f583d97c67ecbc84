package entity

import "time"

// FallbackLanguage is the language code guaranteed to be present in every
// article's Translations map. It is used whenever a requested language has no
// translation entry.
const FallbackLanguage = "en"

// Translation holds the localized text fields of an article for one language.
type Translation struct {
	Title   string `json:"title" yaml:"title"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`
	Content string `json:"content" yaml:"content"`
}

// Article represents a piece of content with one canonical (English) text and
// zero or more localized translations keyed by language code.
//
// AvailableLanguages is advisory: it exists to render language badges in a UI
// and is not consulted when resolving translations, so it may drift from the
// keys of Translations without affecting fallback behavior.
type Article struct {
	ID                 int64
	Title              string
	Slug               string
	Excerpt            string
	Content            string
	ImageURL           string
	ReadTime           int
	SubjectID          int64
	Author             string
	AuthorImage        string
	PublishDate        time.Time
	Translations       map[string]Translation
	AvailableLanguages []string
	Featured           bool
}

// Validate validates the Article entity fields.
// It checks required text fields, the slug format, and the hard invariant that
// the Translations map carries an entry for the fallback language.
func (a *Article) Validate() error {
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if err := ValidateSlug(a.Slug); err != nil {
		return err
	}
	if a.ReadTime <= 0 {
		return &ValidationError{Field: "readTime", Message: "must be positive"}
	}
	if a.SubjectID <= 0 {
		return &ValidationError{Field: "subjectId", Message: "must be positive"}
	}
	if _, ok := a.Translations[FallbackLanguage]; !ok {
		return ErrMissingFallback
	}
	return nil
}
