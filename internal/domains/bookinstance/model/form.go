package model

import (
	"time"

	"locallibrary/internal/shared/validate"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// BookInstanceForm - POST /catalog/bookinstance/create, POST /catalog/bookinstance/:id/update
type BookInstanceForm struct {
	Book    string `form:"book" json:"book"`
	Imprint string `form:"imprint" json:"imprint"`
	Status  string `form:"status" json:"status"`
	DueBack string `form:"due_back" json:"due_back"`
}

// BookInstanceInput is the sanitized content of a BookInstanceForm.
type BookInstanceInput struct {
	BookID  uuid.UUID
	Imprint string
	Status  Status
	DueBack *time.Time
}

var validStatus = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if !Status(s).Valid() {
		return validation.NewError("validation_status", "Invalid status")
	}
	return nil
})

// Validate trims the fields, defaults an empty status to Maintenance, runs
// the rules and escapes the imprint.
func (f BookInstanceForm) Validate() (BookInstanceInput, validate.Errors) {
	f.Book = validate.Trim(f.Book)
	f.Imprint = validate.Trim(f.Imprint)
	f.Status = validate.Trim(f.Status)
	f.DueBack = validate.Trim(f.DueBack)
	if f.Status == "" {
		f.Status = string(DefaultStatus)
	}

	err := validation.ValidateStruct(&f,
		validation.Field(&f.Book,
			validation.Required.Error("Book must be specified"),
			is.UUID.Error("Book must be specified"),
		),
		validation.Field(&f.Imprint, validation.Required.Error("Imprint must be specified")),
		validation.Field(&f.Status, validStatus),
		validation.Field(&f.DueBack, validate.ISODate("Invalid date")),
	)

	in := BookInstanceInput{
		Imprint: validate.Escape(f.Imprint),
		Status:  Status(f.Status),
	}
	if id, perr := uuid.Parse(f.Book); perr == nil {
		in.BookID = id
	}
	in.DueBack, _ = validate.ParseDate(f.DueBack)

	return in, validate.Collect(err, "book", "imprint", "status", "due_back")
}

func (in BookInstanceInput) ToEntity(id uuid.UUID) *BookInstance {
	return &BookInstance{
		ID:      id,
		BookID:  in.BookID,
		Imprint: in.Imprint,
		Status:  in.Status,
		DueBack: in.DueBack,
	}
}
