// Package article provides HTTP handlers for article-related endpoints.
// Every read endpoint resolves the article text into the language requested
// via the lang query parameter, falling back to English when the requested
// language has no translation.
package article

import (
	"time"

	"multilingua/internal/domain/entity"
	"multilingua/internal/usecase/translate"
)

// DTO represents the JSON structure for article data transfer.
// Title, Excerpt, and Content carry the resolved translation; Language names
// the language they were resolved into.
type DTO struct {
	ID                 int64     `json:"id" example:"1"`
	Slug               string    `json:"slug" example:"future-of-artificial-intelligence"`
	Title              string    `json:"title" example:"The Future of Artificial Intelligence"`
	Excerpt            string    `json:"excerpt"`
	Content            string    `json:"content"`
	ImageURL           string    `json:"imageUrl"`
	ReadTime           int       `json:"readTime" example:"8"`
	SubjectID          int64     `json:"subjectId" example:"1"`
	Author             string    `json:"author" example:"Sarah Johnson"`
	AuthorImage        string    `json:"authorImage"`
	PublishDate        time.Time `json:"publishDate" example:"2023-05-15T00:00:00Z"`
	Language           string    `json:"language" example:"en"`
	AvailableLanguages []string  `json:"availableLanguages"`
	Featured           bool      `json:"featured"`
}

// toDTO resolves the article into the requested language and builds its
// transfer representation. Fails only when the article lacks the English
// fallback entry.
func toDTO(a *entity.Article, lang string) (DTO, error) {
	res, err := translate.Resolve(a, lang)
	if err != nil {
		return DTO{}, err
	}

	return DTO{
		ID:                 a.ID,
		Slug:               a.Slug,
		Title:              res.Translation.Title,
		Excerpt:            res.Translation.Excerpt,
		Content:            res.Translation.Content,
		ImageURL:           a.ImageURL,
		ReadTime:           a.ReadTime,
		SubjectID:          a.SubjectID,
		Author:             a.Author,
		AuthorImage:        a.AuthorImage,
		PublishDate:        a.PublishDate,
		Language:           res.Language,
		AvailableLanguages: a.AvailableLanguages,
		Featured:           a.Featured,
	}, nil
}

// toDTOs converts a list of articles, silently skipping any article whose
// fallback translation is missing. A list response should not fail because
// one stored record is broken.
func toDTOs(articles []*entity.Article, lang string) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dto, err := toDTO(a, lang)
		if err != nil {
			continue
		}
		out = append(out, dto)
	}
	return out
}
