package model

import "github.com/google/uuid"

const (
	MinNameLength = 3
	MaxNameLength = 100

	URLPrefix = "/catalog/genre/"
	ListURL   = "/catalog/genres"
	CreateURL = "/catalog/genre/create"
)

// Genre is a category of books (e.g. "Fantasy"). Names are unique ignoring case.
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// URL returns the canonical path of the genre with the given id.
func URL(id uuid.UUID) string {
	return URLPrefix + id.String()
}
