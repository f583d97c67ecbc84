package repository

import (
	"context"

	"multilingua/internal/domain/entity"
)

// ArticleRepository defines read and create access to article entities.
//
// Lookup methods return (nil, nil) when no article matches. List-shaped
// methods always return a non-nil (possibly empty) slice on success. Methods
// that sort by publish date use a stable sort, so articles sharing a publish
// date keep their insertion order across repeated calls.
type ArticleRepository interface {
	// List retrieves all articles in insertion order.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListFeatured retrieves featured articles sorted by publish date descending.
	ListFeatured(ctx context.Context) ([]*entity.Article, error)
	// ListRecent retrieves the limit most recent articles by publish date.
	ListRecent(ctx context.Context, limit int) ([]*entity.Article, error)
	// ListBySubject retrieves articles referencing the given subject ID,
	// sorted by publish date descending.
	ListBySubject(ctx context.Context, subjectID int64) ([]*entity.Article, error)
	// GetBySlug retrieves an article by its slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// Get retrieves an article by its ID.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Create stores a new article, assigns its ID, and increments the
	// referenced subject's article count when the subject exists. A missing
	// subject is not an error: the article is stored and the count is left
	// untouched.
	Create(ctx context.Context, article *entity.Article) error
}
