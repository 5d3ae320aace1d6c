package model

import (
	"github.com/google/uuid"
)

const (
	URLPrefix = "/catalog/book/"
	ListURL   = "/catalog/books"
	CreateURL = "/catalog/book/create"
)

// Book is a catalog title. It references exactly one author and one or more
// genres by identifier; copies of it are BookInstances.
type Book struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	AuthorID uuid.UUID   `json:"author_id" db:"author_id"`
	Summary  string      `json:"summary" db:"summary"`
	ISBN     string      `json:"isbn" db:"isbn"`
	GenreIDs []uuid.UUID `json:"genre_ids" db:"genre_ids"`
}

// Listing is a book joined with the display name of its author.
type Listing struct {
	Book
	AuthorName string `json:"author_name"`
}

// Summary is the projection shown wherever a list of dependent books is
// rendered (author detail, genre detail, delete confirmations).
type Summary struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	URL     string    `json:"url"`
}

// URL returns the canonical path of the book with the given id.
func URL(id uuid.UUID) string {
	return URLPrefix + id.String()
}

// ToSummary projects a book to the fields shown in dependent listings.
func ToSummary(b Book) Summary {
	return Summary{
		ID:      b.ID,
		Title:   b.Title,
		Summary: b.Summary,
		URL:     URL(b.ID),
	}
}

// HasGenre reports whether genreID is one of the book's genres.
func (b Book) HasGenre(genreID uuid.UUID) bool {
	for _, id := range b.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}
