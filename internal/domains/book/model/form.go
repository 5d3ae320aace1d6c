package model

import (
	"locallibrary/internal/shared/validate"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// BookForm - POST /catalog/book/create, POST /catalog/book/:id/update
type BookForm struct {
	Title   string   `form:"title" json:"title"`
	Author  string   `form:"author" json:"author"`
	Summary string   `form:"summary" json:"summary"`
	ISBN    string   `form:"isbn" json:"isbn"`
	Genre   []string `form:"genre" json:"genre"`
}

// BookInput is the sanitized content of a BookForm.
type BookInput struct {
	Title    string
	AuthorID uuid.UUID
	Summary  string
	ISBN     string
	GenreIDs []uuid.UUID
}

var genreIDs = validation.By(func(value interface{}) error {
	ids, _ := value.([]string)
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return validation.NewError("validation_genre_id", "Invalid genre.")
		}
	}
	return nil
})

// Validate trims every field, checks the rules against the trimmed values
// and escapes the text fields. The input is returned even when errors exist
// so the form can be re-rendered with what the user typed.
func (f BookForm) Validate() (BookInput, validate.Errors) {
	f.Title = validate.Trim(f.Title)
	f.Author = validate.Trim(f.Author)
	f.Summary = validate.Trim(f.Summary)
	f.ISBN = validate.Trim(f.ISBN)

	genres := make([]string, 0, len(f.Genre))
	for _, g := range f.Genre {
		if g = validate.Trim(g); g != "" {
			genres = append(genres, g)
		}
	}
	f.Genre = genres

	err := validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required.Error("Title must not be empty.")),
		validation.Field(&f.Author,
			validation.Required.Error("Author must not be empty."),
			is.UUID.Error("Invalid author."),
		),
		validation.Field(&f.Summary, validation.Required.Error("Summary must not be empty.")),
		validation.Field(&f.ISBN, validation.Required.Error("ISBN must not be empty")),
		validation.Field(&f.Genre,
			validation.Required.Error("Genre must be selected."),
			genreIDs,
		),
	)

	in := BookInput{
		Title:   validate.Escape(f.Title),
		Summary: validate.Escape(f.Summary),
		ISBN:    validate.Escape(f.ISBN),
	}
	if id, perr := uuid.Parse(f.Author); perr == nil {
		in.AuthorID = id
	}
	for _, g := range f.Genre {
		if id, perr := uuid.Parse(g); perr == nil {
			in.GenreIDs = append(in.GenreIDs, id)
		}
	}

	return in, validate.Collect(err, "title", "author", "summary", "isbn", "genre")
}

// ToEntity builds the book to persist under id.
func (in BookInput) ToEntity(id uuid.UUID) *Book {
	return &Book{
		ID:       id,
		Title:    in.Title,
		AuthorID: in.AuthorID,
		Summary:  in.Summary,
		ISBN:     in.ISBN,
		GenreIDs: in.GenreIDs,
	}
}
