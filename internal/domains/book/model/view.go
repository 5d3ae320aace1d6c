package model

import (
	"locallibrary/internal/shared/validate"

	"github.com/google/uuid"
)

// Template names
const (
	ListTemplate   = "book_list.html"
	DetailTemplate = "book_detail.html"
	FormTemplate   = "book_form.html"
	DeleteTemplate = "book_delete.html"
)

// AuthorRef is the author of a book as shown on book pages and forms.
type AuthorRef struct {
	ID   uuid.UUID
	Name string
	URL  string
}

// GenreRef is one genre of a book as shown on book pages and forms.
type GenreRef struct {
	ID   uuid.UUID
	Name string
	URL  string
}

// CopyRef is one BookInstance of a book as shown on the book detail page.
type CopyRef struct {
	ID      uuid.UUID
	Imprint string
	Status  string
	DueBack string
	URL     string
}

// Detail is a book together with the entities it references and the copies
// that reference it.
type Detail struct {
	Book   Book
	Author AuthorRef
	Genres []GenreRef
	Copies []CopyRef
}

type ListItem struct {
	Title      string
	URL        string
	AuthorName string
}

type ListView struct {
	Title string
	Books []ListItem
}

// DetailView backs book_detail.html and book_delete.html.
type DetailView struct {
	Title string
	URL   string
	Detail
}

type AuthorOption struct {
	ID       uuid.UUID
	Name     string
	Selected bool
}

type GenreOption struct {
	ID      uuid.UUID
	Name    string
	Checked bool
}

// FormView backs book_form.html for both create and update.
// FormData is the stored book with every author and genre to choose from.
type FormData struct {
	Book    *Book
	Authors []AuthorRef
	Genres  []GenreRef
}

type FormView struct {
	Title   string
	Book    *Book
	Authors []AuthorOption
	Genres  []GenreOption
	Errors  validate.Errors
}

// NewListView maps listings to template rows.
func NewListView(title string, listings []Listing) ListView {
	items := make([]ListItem, 0, len(listings))
	for _, l := range listings {
		items = append(items, ListItem{
			Title:      l.Title,
			URL:        URL(l.ID),
			AuthorName: l.AuthorName,
		})
	}
	return ListView{Title: title, Books: items}
}

// NewFormView marks the book's author as selected and its genres as checked.
// book may be nil for an empty create form.
func NewFormView(title string, book *Book, authors []AuthorRef, genres []GenreRef, errs validate.Errors) FormView {
	view := FormView{
		Title:   title,
		Book:    book,
		Authors: make([]AuthorOption, 0, len(authors)),
		Genres:  make([]GenreOption, 0, len(genres)),
		Errors:  errs,
	}

	for _, a := range authors {
		view.Authors = append(view.Authors, AuthorOption{
			ID:       a.ID,
			Name:     a.Name,
			Selected: book != nil && book.AuthorID == a.ID,
		})
	}
	for _, g := range genres {
		view.Genres = append(view.Genres, GenreOption{
			ID:      g.ID,
			Name:    g.Name,
			Checked: book != nil && book.HasGenre(g.ID),
		})
	}
	return view
}
