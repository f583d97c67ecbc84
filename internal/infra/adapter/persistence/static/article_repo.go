package static

import (
	"context"

	"multilingua/internal/domain/entity"
	"multilingua/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface over a static Store.
type ArticleRepo struct{ store *Store }

// NewArticleRepo creates a new static article repository.
func NewArticleRepo(store *Store) repository.ArticleRepository {
	return &ArticleRepo{store: store}
}

// List retrieves all articles in dataset order.
func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	return cloneArticles(repo.store.articles), nil
}

// ListFeatured retrieves featured articles, publish date descending.
func (repo *ArticleRepo) ListFeatured(_ context.Context) ([]*entity.Article, error) {
	featured := make([]*entity.Article, 0, len(repo.store.articles))
	for _, a := range repo.store.articles {
		if a.Featured {
			featured = append(featured, a)
		}
	}
	return cloneArticles(sortedByPublishDateDesc(featured)), nil
}

// ListRecent retrieves the limit most recent articles by publish date.
func (repo *ArticleRepo) ListRecent(_ context.Context, limit int) ([]*entity.Article, error) {
	articles := sortedByPublishDateDesc(repo.store.articles)
	if limit < len(articles) {
		articles = articles[:limit]
	}
	return cloneArticles(articles), nil
}

// ListBySubject retrieves articles for one subject, publish date descending.
func (repo *ArticleRepo) ListBySubject(_ context.Context, subjectID int64) ([]*entity.Article, error) {
	matched := make([]*entity.Article, 0, len(repo.store.articles))
	for _, a := range repo.store.articles {
		if a.SubjectID == subjectID {
			matched = append(matched, a)
		}
	}
	return cloneArticles(sortedByPublishDateDesc(matched)), nil
}

// GetBySlug retrieves the first article with the given slug.
// Returns (nil, nil) when absent.
func (repo *ArticleRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	for _, a := range repo.store.articles {
		if a.Slug == slug {
			return cloneArticle(a), nil
		}
	}
	return nil, nil
}

// Get retrieves an article by ID. Returns (nil, nil) when absent.
func (repo *ArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	for _, a := range repo.store.articles {
		if a.ID == id {
			return cloneArticle(a), nil
		}
	}
	return nil, nil
}

// Create always fails: the static backend serves a fixed dataset.
func (repo *ArticleRepo) Create(_ context.Context, _ *entity.Article) error {
	return ErrReadOnly
}
