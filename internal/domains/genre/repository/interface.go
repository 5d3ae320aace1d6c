package repository

import (
	"context"

	"locallibrary/internal/domains/genre/model"

	"github.com/google/uuid"
)

// RepositoryInterface - genre data access
type RepositoryInterface interface {
	// Create returns model.ErrGenreDuplicate when the name is taken ignoring case.
	Create(ctx context.Context, genre *model.Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	// FindByNameFold looks a genre up by name ignoring case.
	FindByNameFold(ctx context.Context, name string) (*model.Genre, error)
	// List returns every genre in insertion order.
	List(ctx context.Context) ([]model.Genre, error)
	// ListByIDs returns the genres among ids that exist, sorted by name.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error)
	Update(ctx context.Context, genre *model.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
