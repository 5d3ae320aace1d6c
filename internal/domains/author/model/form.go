package model

import (
	"fmt"
	"time"

	"locallibrary/internal/shared/validate"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// AuthorForm - POST /catalog/author/create, POST /catalog/author/:id/update
type AuthorForm struct {
	FirstName   string `form:"first_name" json:"first_name"`
	FamilyName  string `form:"family_name" json:"family_name"`
	DateOfBirth string `form:"date_of_birth" json:"date_of_birth"`
	DateOfDeath string `form:"date_of_death" json:"date_of_death"`
}

// AuthorInput is the sanitized content of an AuthorForm.
type AuthorInput struct {
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Validate runs the author rules over the trimmed form values and returns the
// sanitized candidate together with every error found.
func (f AuthorForm) Validate() (AuthorInput, validate.Errors) {
	f.FirstName = validate.Trim(f.FirstName)
	f.FamilyName = validate.Trim(f.FamilyName)
	f.DateOfBirth = validate.Trim(f.DateOfBirth)
	f.DateOfDeath = validate.Trim(f.DateOfDeath)

	err := validation.ValidateStruct(&f,
		validation.Field(&f.FirstName,
			validation.Required.Error("First name must be specified."),
			validation.RuneLength(0, MaxNameLength).Error(fmt.Sprintf("First name must not exceed %d characters.", MaxNameLength)),
			is.Alphanumeric.Error("First name has non-alphanumeric characters."),
		),
		validation.Field(&f.FamilyName,
			validation.Required.Error("Family name must be specified."),
			validation.RuneLength(0, MaxNameLength).Error(fmt.Sprintf("Family name must not exceed %d characters.", MaxNameLength)),
			is.Alphanumeric.Error("Family name has non-alphanumeric characters."),
		),
		validation.Field(&f.DateOfBirth, validate.ISODate("Invalid date of birth")),
		validation.Field(&f.DateOfDeath, validate.ISODate("Invalid date of death")),
	)

	in := AuthorInput{
		FirstName:  validate.Escape(f.FirstName),
		FamilyName: validate.Escape(f.FamilyName),
	}
	in.DateOfBirth, _ = validate.ParseDate(f.DateOfBirth)
	in.DateOfDeath, _ = validate.ParseDate(f.DateOfDeath)

	return in, validate.Collect(err, "first_name", "family_name", "date_of_birth", "date_of_death")
}

// ToEntity builds the author to persist under id.
func (in AuthorInput) ToEntity(id uuid.UUID) *Author {
	return &Author{
		ID:          id,
		FirstName:   in.FirstName,
		FamilyName:  in.FamilyName,
		DateOfBirth: in.DateOfBirth,
		DateOfDeath: in.DateOfDeath,
	}
}
