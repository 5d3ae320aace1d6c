package model

import (
	"fmt"

	"locallibrary/internal/shared/validate"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// GenreForm - POST /catalog/genre/create, POST /catalog/genre/:id/update
type GenreForm struct {
	Name string `form:"name" json:"name"`
}

// GenreInput is the sanitized content of a GenreForm.
type GenreInput struct {
	Name string
}

func (f GenreForm) Validate() (GenreInput, validate.Errors) {
	f.Name = validate.Trim(f.Name)

	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error(fmt.Sprintf("Genre name must contain at least %d characters", MinNameLength)),
			validation.RuneLength(MinNameLength, 0).Error(fmt.Sprintf("Genre name must contain at least %d characters", MinNameLength)),
			validation.RuneLength(0, MaxNameLength).Error(fmt.Sprintf("Genre name must not exceed %d characters", MaxNameLength)),
		),
	)

	return GenreInput{Name: validate.Escape(f.Name)}, validate.Collect(err, "name")
}

func (in GenreInput) ToEntity(id uuid.UUID) *Genre {
	return &Genre{ID: id, Name: in.Name}
}
