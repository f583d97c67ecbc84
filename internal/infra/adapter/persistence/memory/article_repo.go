package memory

import (
	"context"
	"sort"

	"multilingua/internal/domain/entity"
	"multilingua/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface over a Store.
type ArticleRepo struct{ store *Store }

// NewArticleRepo creates a new memory-backed article repository.
func NewArticleRepo(store *Store) repository.ArticleRepository {
	return &ArticleRepo{store: store}
}

// List retrieves all articles in insertion order.
func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	articles := make([]*entity.Article, 0, len(repo.store.articles))
	for _, a := range repo.store.articles {
		articles = append(articles, cloneArticle(a))
	}
	return articles, nil
}

// ListFeatured retrieves featured articles sorted by publish date descending.
func (repo *ArticleRepo) ListFeatured(_ context.Context) ([]*entity.Article, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	articles := make([]*entity.Article, 0, len(repo.store.articles))
	for _, a := range repo.store.articles {
		if a.Featured {
			articles = append(articles, cloneArticle(a))
		}
	}
	sortByPublishDateDesc(articles)
	return articles, nil
}

// ListRecent retrieves the limit most recent articles by publish date.
func (repo *ArticleRepo) ListRecent(_ context.Context, limit int) ([]*entity.Article, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	articles := make([]*entity.Article, 0, len(repo.store.articles))
	for _, a := range repo.store.articles {
		articles = append(articles, cloneArticle(a))
	}
	sortByPublishDateDesc(articles)
	if limit < len(articles) {
		articles = articles[:limit]
	}
	return articles, nil
}

// ListBySubject retrieves articles for one subject, publish date descending.
func (repo *ArticleRepo) ListBySubject(_ context.Context, subjectID int64) ([]*entity.Article, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	articles := make([]*entity.Article, 0, len(repo.store.articles))
	for _, a := range repo.store.articles {
		if a.SubjectID == subjectID {
			articles = append(articles, cloneArticle(a))
		}
	}
	sortByPublishDateDesc(articles)
	return articles, nil
}

// GetBySlug retrieves the first article with the given slug.
// Returns (nil, nil) when absent.
func (repo *ArticleRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, a := range repo.store.articles {
		if a.Slug == slug {
			return cloneArticle(a), nil
		}
	}
	return nil, nil
}

// Get retrieves an article by ID. Returns (nil, nil) when absent.
func (repo *ArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	a, ok := repo.store.articlesByID[id]
	if !ok {
		return nil, nil
	}
	return cloneArticle(a), nil
}

// Create assigns the next sequential ID, stores the article, and increments
// the referenced subject's article count when the subject exists.
func (repo *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	repo.store.createArticle(article)
	return nil
}

// sortByPublishDateDesc sorts newest first. The sort is stable so articles
// sharing a publish date keep their insertion order.
func sortByPublishDateDesc(articles []*entity.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishDate.After(articles[j].PublishDate)
	})
}
