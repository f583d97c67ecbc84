// Package subject provides HTTP handlers for subject-related endpoints.
// It includes handlers for listing subjects, fetching a subject by slug,
// and creating new subjects.
package subject

import "multilingua/internal/domain/entity"

// DTO represents the JSON structure for subject data transfer.
type DTO struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Technology"`
	Slug         string `json:"slug" example:"technology"`
	Icon         string `json:"icon" example:"ri-computer-line"`
	ArticleCount int    `json:"articleCount" example:"4"`
}

// toDTO converts a subject entity to its transfer representation.
func toDTO(s *entity.Subject) DTO {
	return DTO{
		ID:           s.ID,
		Name:         s.Name,
		Slug:         s.Slug,
		Icon:         s.Icon,
		ArticleCount: s.ArticleCount,
	}
}
