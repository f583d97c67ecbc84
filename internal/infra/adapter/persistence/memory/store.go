// Package memory provides the mutable in-memory implementation of the
// repository interfaces. It owns the authoritative subject and article
// collections, assigns sequential IDs, and maintains the derived article
// count on subjects.
package memory

import (
	"sync"

	"multilingua/internal/domain/entity"
	"multilingua/internal/infra/seed"
)

// Store holds the in-process entity collections. All access goes through the
// repository types in this package; every mutation (assign-id-and-insert,
// increment-counter) runs under the store mutex as a single critical section.
type Store struct {
	mu sync.RWMutex

	subjects     []*entity.Subject
	subjectsByID map[int64]*entity.Subject
	articles     []*entity.Article
	articlesByID map[int64]*entity.Article

	nextSubjectID int64
	nextArticleID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		subjectsByID:  make(map[int64]*entity.Subject),
		articlesByID:  make(map[int64]*entity.Article),
		nextSubjectID: 1,
		nextArticleID: 1,
	}
}

// NewStoreFromDataset creates a store seeded from the given dataset. Entities
// are inserted through the regular create paths, so IDs are assigned in
// dataset order and article counts are derived rather than trusted.
func NewStoreFromDataset(ds *seed.Dataset) *Store {
	s := NewStore()
	for _, subject := range ds.Subjects {
		cp := *subject
		s.createSubject(&cp)
	}
	for _, article := range ds.Articles {
		cp := *article
		s.createArticle(&cp)
	}
	return s
}

// createSubject assigns the next sequential ID and stores the subject.
// Slug uniqueness is not enforced here; lookups return the first match.
func (s *Store) createSubject(subject *entity.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject.ID = s.nextSubjectID
	s.nextSubjectID++
	s.subjects = append(s.subjects, subject)
	s.subjectsByID[subject.ID] = subject
}

// createArticle assigns the next sequential ID, stores the article, and
// increments the referenced subject's article count. A missing subject leaves
// the counts untouched; the article is stored regardless. This mirrors the
// referential leniency of the original storage layer.
func (s *Store) createArticle(article *entity.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	article.ID = s.nextArticleID
	s.nextArticleID++
	s.articles = append(s.articles, article)
	s.articlesByID[article.ID] = article

	if subject, ok := s.subjectsByID[article.SubjectID]; ok {
		subject.ArticleCount++
	}
}

// cloneSubject returns a copy so callers cannot mutate stored state.
func cloneSubject(s *entity.Subject) *entity.Subject {
	cp := *s
	return &cp
}

// cloneArticle returns a copy of the article. The translations map and the
// language list are copied as well: query results must behave as snapshots.
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
