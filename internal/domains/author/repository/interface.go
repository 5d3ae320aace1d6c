package repository

import (
	"context"

	"locallibrary/internal/domains/author/model"

	"github.com/google/uuid"
)

// RepositoryInterface - author data access
type RepositoryInterface interface {
	Create(ctx context.Context, author *model.Author) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	// List returns every author sorted by family name.
	List(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
