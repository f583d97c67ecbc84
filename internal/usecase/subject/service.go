package subject

import (
	"context"
	"fmt"

	"multilingua/internal/domain/entity"
	"multilingua/internal/repository"
)

// CreateInput represents the input parameters for creating a new subject.
type CreateInput struct {
	Name string
	Slug string
	Icon string
}

// Service provides subject management use cases.
// It handles business logic for subject operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.SubjectRepository
}

// List retrieves all subjects in insertion order.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Subject, error) {
	subjects, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// Get retrieves a single subject by its ID.
// Returns ErrInvalidSubjectID if the ID is not positive.
// Returns ErrSubjectNotFound if the subject does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Subject, error) {
	if id <= 0 {
		return nil, ErrInvalidSubjectID
	}

	subject, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

// GetBySlug retrieves a single subject by its slug.
// Returns ErrSubjectNotFound if no subject carries the slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Subject, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return nil, err
	}

	subject, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get subject by slug: %w", err)
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

// Create creates a new subject with the provided input.
// Returns a ValidationError if any input field is invalid.
// The returned subject carries its assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Subject, error) {
	subject := &entity.Subject{
		Name: in.Name,
		Slug: in.Slug,
		Icon: in.Icon,
	}
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return subject, nil
}
