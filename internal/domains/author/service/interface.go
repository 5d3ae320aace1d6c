package service

import (
	"context"

	"locallibrary/internal/domains/author/model"

	"github.com/google/uuid"
)

// ServiceInterface - author use cases
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Author, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Author, error)
	// Detail loads the author and its books concurrently.
	Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error)
	Create(ctx context.Context, in model.AuthorInput) (*model.Author, error)
	// Update replaces the author stored under id; the id never changes.
	Update(ctx context.Context, id uuid.UUID, in model.AuthorInput) (*model.Author, error)
	// Delete removes the author unless books still reference it, in which
	// case the detail is returned together with model.ErrAuthorHasBooks.
	Delete(ctx context.Context, id uuid.UUID) (*model.Detail, error)
}
