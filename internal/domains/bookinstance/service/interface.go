package service

import (
	"context"

	bookModel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/bookinstance/model"

	"github.com/google/uuid"
)

// ServiceInterface - book instance use cases
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error)
	// FormBooks lists every book sorted by title for the copy form.
	FormBooks(ctx context.Context) ([]bookModel.Summary, error)
	// UpdateForm loads the stored copy together with the book choices.
	UpdateForm(ctx context.Context, id uuid.UUID) (*model.FormData, error)
	Create(ctx context.Context, in model.BookInstanceInput) (*model.BookInstance, error)
	Update(ctx context.Context, id uuid.UUID, in model.BookInstanceInput) (*model.BookInstance, error)
	// Delete is unconditional; nothing references a copy.
	Delete(ctx context.Context, id uuid.UUID) error
}
