package service

import (
	"context"

	"locallibrary/internal/domains/book/model"

	"github.com/google/uuid"
)

// ServiceInterface - book use cases
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Book, error)
	// Detail loads the book with its author, genres and copies.
	Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error)
	// FormOptions loads every author and genre for the book form.
	FormOptions(ctx context.Context) ([]model.AuthorRef, []model.GenreRef, error)
	// UpdateForm loads the stored book together with the form choices.
	UpdateForm(ctx context.Context, id uuid.UUID) (*model.FormData, error)
	Create(ctx context.Context, in model.BookInput) (*model.Book, error)
	Update(ctx context.Context, id uuid.UUID, in model.BookInput) (*model.Book, error)
	// Delete removes the book unless copies of it exist, in which case the
	// detail is returned together with model.ErrBookHasInstances.
	Delete(ctx context.Context, id uuid.UUID) (*model.Detail, error)
}
