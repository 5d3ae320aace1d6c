package service

import (
	"context"

	"locallibrary/internal/domains/genre/model"

	"github.com/google/uuid"
)

// ServiceInterface - genre use cases
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Genre, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error)
	// Create returns the existing genre (and existed=true) when one with the
	// same name ignoring case is already stored.
	Create(ctx context.Context, in model.GenreInput) (genre *model.Genre, existed bool, err error)
	// Update returns model.ErrGenreDuplicate when another genre has the name.
	Update(ctx context.Context, id uuid.UUID, in model.GenreInput) (*model.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Detail, error)
}
