// Package static provides the read-only implementation of the repository
// interfaces over the fixed embedded dataset. It exists for serverless-style
// deployments where no mutable server process runs: the same read contract as
// the memory backend, with create operations rejected.
package static

import (
	"errors"
	"sort"

	"multilingua/internal/domain/entity"
	"multilingua/internal/infra/seed"
)

// ErrReadOnly is returned by create operations on the static backend.
var ErrReadOnly = errors.New("static backend is read-only")

// Store holds the immutable entity collections built once from the dataset.
// No locking is needed: nothing mutates after construction.
type Store struct {
	subjects []*entity.Subject
	articles []*entity.Article
}

// NewStore builds a static store from the dataset. IDs are assigned
// sequentially in dataset order and subject article counts are derived from
// the articles, never trusted from the data itself.
func NewStore(ds *seed.Dataset) *Store {
	s := &Store{
		subjects: make([]*entity.Subject, 0, len(ds.Subjects)),
		articles: make([]*entity.Article, 0, len(ds.Articles)),
	}

	countByID := make(map[int64]int)
	for i, subject := range ds.Subjects {
		cp := *subject
		cp.ID = int64(i + 1)
		s.subjects = append(s.subjects, &cp)
	}
	for i, article := range ds.Articles {
		cp := *article
		cp.ID = int64(i + 1)
		s.articles = append(s.articles, &cp)
		countByID[cp.SubjectID]++
	}
	for _, subject := range s.subjects {
		subject.ArticleCount = countByID[subject.ID]
	}

	return s
}

// sortedByPublishDateDesc returns a new slice sorted newest first, stable.
func sortedByPublishDateDesc(articles []*entity.Article) []*entity.Article {
	out := append([]*entity.Article(nil), articles...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishDate.After(out[j].PublishDate)
	})
	return out
}

// cloneSubject returns a copy so callers cannot mutate stored state.
func cloneSubject(s *entity.Subject) *entity.Subject {
	cp := *s
	return &cp
}

// cloneArticle returns a copy of the article. The translations map and the
// language list are copied as well: query results must behave as snapshots,
// matching the memory backend's read contract.
func cloneArticle(a *entity.Article) *entity.Article {
	cp := *a
	if a.Translations != nil {
		cp.Translations = make(map[string]entity.Translation, len(a.Translations))
		for lang, tr := range a.Translations {
			cp.Translations[lang] = tr
		}
	}
	if a.AvailableLanguages != nil {
		cp.AvailableLanguages = append([]string(nil), a.AvailableLanguages...)
	}
	return &cp
}

func cloneSubjects(subjects []*entity.Subject) []*entity.Subject {
	out := make([]*entity.Subject, len(subjects))
	for i, s := range subjects {
		out[i] = cloneSubject(s)
	}
	return out
}

func cloneArticles(articles []*entity.Article) []*entity.Article {
	out := make([]*entity.Article, len(articles))
	for i, a := range articles {
		out[i] = cloneArticle(a)
	}
	return out
}
