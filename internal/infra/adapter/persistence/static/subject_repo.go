package static

import (
	"context"

	"multilingua/internal/domain/entity"
	"multilingua/internal/repository"
)

// SubjectRepo implements the SubjectRepository interface over a static Store.
type SubjectRepo struct{ store *Store }

// NewSubjectRepo creates a new static subject repository.
func NewSubjectRepo(store *Store) repository.SubjectRepository {
	return &SubjectRepo{store: store}
}

// List retrieves all subjects in dataset order.
func (repo *SubjectRepo) List(_ context.Context) ([]*entity.Subject, error) {
	return cloneSubjects(repo.store.subjects), nil
}

// Get retrieves a subject by ID. Returns (nil, nil) when absent.
func (repo *SubjectRepo) Get(_ context.Context, id int64) (*entity.Subject, error) {
	for _, s := range repo.store.subjects {
		if s.ID == id {
			return cloneSubject(s), nil
		}
	}
	return nil, nil
}

// GetBySlug retrieves the first subject with the given slug.
// Returns (nil, nil) when absent.
func (repo *SubjectRepo) GetBySlug(_ context.Context, slug string) (*entity.Subject, error) {
	for _, s := range repo.store.subjects {
		if s.Slug == slug {
			return cloneSubject(s), nil
		}
	}
	return nil, nil
}

// Create always fails: the static backend serves a fixed dataset.
func (repo *SubjectRepo) Create(_ context.Context, _ *entity.Subject) error {
	return ErrReadOnly
}
