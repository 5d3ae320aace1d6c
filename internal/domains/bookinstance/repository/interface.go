package repository

import (
	"context"

	"locallibrary/internal/domains/bookinstance/model"

	"github.com/google/uuid"
)

// RepositoryInterface - book instance data access
type RepositoryInterface interface {
	Create(ctx context.Context, instance *model.BookInstance) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	// List returns every copy in insertion order, joined with its book title.
	List(ctx context.Context) ([]model.Listing, error)
	// ListByBook returns the copies of bookID in insertion order.
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error)
	Update(ctx context.Context, instance *model.BookInstance) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status model.Status) (int, error)
}
