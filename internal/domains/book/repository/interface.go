package repository

import (
	"context"

	"locallibrary/internal/domains/book/model"

	"github.com/google/uuid"
)

// RepositoryInterface - book data access
type RepositoryInterface interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	// List returns every book sorted by title, joined with its author's name.
	List(ctx context.Context) ([]model.Listing, error)
	// ListByAuthor returns the books referencing authorID, sorted by title.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
	// ListByGenre returns the books listing genreID, sorted by title.
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
