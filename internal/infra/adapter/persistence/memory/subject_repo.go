package memory

import (
	"context"

	"multilingua/internal/domain/entity"
	"multilingua/internal/repository"
)

// SubjectRepo implements the SubjectRepository interface over a Store.
type SubjectRepo struct{ store *Store }

// NewSubjectRepo creates a new memory-backed subject repository.
func NewSubjectRepo(store *Store) repository.SubjectRepository {
	return &SubjectRepo{store: store}
}

// List retrieves all subjects in insertion order.
func (repo *SubjectRepo) List(_ context.Context) ([]*entity.Subject, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	subjects := make([]*entity.Subject, 0, len(repo.store.subjects))
	for _, s := range repo.store.subjects {
		subjects = append(subjects, cloneSubject(s))
	}
	return subjects, nil
}

// Get retrieves a subject by ID. Returns (nil, nil) when absent.
func (repo *SubjectRepo) Get(_ context.Context, id int64) (*entity.Subject, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	s, ok := repo.store.subjectsByID[id]
	if !ok {
		return nil, nil
	}
	return cloneSubject(s), nil
}

// GetBySlug retrieves the first subject with the given slug.
// Returns (nil, nil) when absent.
func (repo *SubjectRepo) GetBySlug(_ context.Context, slug string) (*entity.Subject, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, s := range repo.store.subjects {
		if s.Slug == slug {
			return cloneSubject(s), nil
		}
	}
	return nil, nil
}

// Create assigns the next sequential ID and stores the subject.
func (repo *SubjectRepo) Create(_ context.Context, subject *entity.Subject) error {
	repo.store.createSubject(subject)
	return nil
}
