package repository

import (
	"context"

	"multilingua/internal/domain/entity"
)

// SubjectRepository defines read and create access to subject entities.
// Lookup methods return (nil, nil) when no subject matches; absence is not an
// error at this layer.
type SubjectRepository interface {
	// List retrieves all subjects in insertion order.
	List(ctx context.Context) ([]*entity.Subject, error)
	// Get retrieves a subject by its ID.
	Get(ctx context.Context, id int64) (*entity.Subject, error)
	// GetBySlug retrieves a subject by its slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Subject, error)
	// Create stores a new subject and assigns its ID.
	Create(ctx context.Context, subject *entity.Subject) error
}
