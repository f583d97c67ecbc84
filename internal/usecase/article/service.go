package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"multilingua/internal/domain/entity"
	"multilingua/internal/observability/metrics"
	"multilingua/internal/repository"
	"multilingua/internal/usecase/translate"
)

// DefaultRecentLimit is the number of articles returned by Recent when the
// caller does not specify a limit.
const DefaultRecentLimit = 5

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
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
	Translations       map[string]entity.Translation
	AvailableLanguages []string
	Featured           bool
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence
// to the repository. Logger is optional; a nil logger disables the warnings
// emitted for soft failures.
type Service struct {
	Repo   repository.ArticleRepository
	Logger *slog.Logger
}

// List retrieves all articles in insertion order.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListFeatured retrieves featured articles sorted by publish date descending.
func (s *Service) ListFeatured(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured articles: %w", err)
	}
	return articles, nil
}

// ListRecent retrieves the limit most recent articles by publish date.
// A zero limit means DefaultRecentLimit; a negative limit is rejected.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*entity.Article, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultRecentLimit
	}

	articles, err := s.Repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	return articles, nil
}

// ListBySubject retrieves the articles referencing the given subject ID,
// sorted by publish date descending. Subject existence is the caller's
// concern: an unknown ID yields an empty list, not an error.
func (s *Service) ListBySubject(ctx context.Context, subjectID int64) ([]*entity.Article, error) {
	articles, err := s.Repo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list articles by subject: %w", err)
	}
	return articles, nil
}

// GetBySlug retrieves a single article by its slug.
// Returns ErrArticleNotFound if no article carries the slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return nil, err
	}

	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Search finds articles whose resolved translation for the given language
// contains the query as a case-insensitive substring of the title, excerpt,
// or content. The scan is linear over all articles.
//
// An article without a fallback translation cannot be searched; it is skipped
// and logged rather than failing the whole query.
func (s *Service) Search(ctx context.Context, query, lang string) ([]*entity.Article, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}

	needle := strings.ToLower(query)
	matched := make([]*entity.Article, 0, len(articles))
	for _, a := range articles {
		res, err := translate.Resolve(a, lang)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("skipping article without fallback translation",
					slog.String("slug", a.Slug),
					slog.Int64("article_id", a.ID))
			}
			continue
		}
		if containsFold(res.Translation.Title, needle) ||
			containsFold(res.Translation.Excerpt, needle) ||
			containsFold(res.Translation.Content, needle) {
			matched = append(matched, a)
		}
	}

	metrics.RecordSearch(len(matched) > 0)
	return matched, nil
}

// Create creates a new article with the provided input.
// Returns a ValidationError if any input field is invalid and
// entity.ErrMissingFallback when the translations map has no English entry.
// The returned article carries its assigned ID.
//
// A SubjectID referencing no stored subject is accepted: the article is
// stored and the subject's article count is simply left untouched by the
// repository. This preserves the leniency of the original storage layer.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	art := &entity.Article{
		Title:              in.Title,
		Slug:               in.Slug,
		Excerpt:            in.Excerpt,
		Content:            in.Content,
		ImageURL:           in.ImageURL,
		ReadTime:           in.ReadTime,
		SubjectID:          in.SubjectID,
		Author:             in.Author,
		AuthorImage:        in.AuthorImage,
		PublishDate:        in.PublishDate,
		Translations:       in.Translations,
		AvailableLanguages: in.AvailableLanguages,
		Featured:           in.Featured,
	}
	if err := art.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordArticleCreated()
	return art, nil
}

// containsFold reports whether haystack contains needle ignoring case.
// needle must already be lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
