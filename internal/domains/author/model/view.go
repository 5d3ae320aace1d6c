package model

import (
	bookModel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/shared/validate"

	"github.com/google/uuid"
)

// Template names
const (
	ListTemplate   = "author_list.html"
	DetailTemplate = "author_detail.html"
	FormTemplate   = "author_form.html"
	DeleteTemplate = "author_delete.html"
)

// Detail is an author together with every book that references it.
type Detail struct {
	Author Author
	Books  []bookModel.Summary
}

// ListItem is one row of the author list.
type ListItem struct {
	ID       uuid.UUID
	Name     string
	Lifespan string
	URL      string
}

type ListView struct {
	Title   string
	Authors []ListItem
}

// DetailView backs author_detail.html and author_delete.html.
type DetailView struct {
	Title    string
	Name     string
	Lifespan string
	URL      string
	Books    []bookModel.Summary
}

// FormView backs author_form.html. Dates are pre-formatted for date inputs.
type FormView struct {
	Title       string
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
	Errors      validate.Errors
}

func toListItem(a Author) ListItem {
	return ListItem{
		ID:       a.ID,
		Name:     FullName(a.FirstName, a.FamilyName),
		Lifespan: Lifespan(a.DateOfBirth, a.DateOfDeath),
		URL:      URL(a.ID),
	}
}

func NewListView(title string, authors []Author) ListView {
	items := make([]ListItem, 0, len(authors))
	for _, a := range authors {
		items = append(items, toListItem(a))
	}
	return ListView{Title: title, Authors: items}
}

func NewDetailView(title string, d *Detail) DetailView {
	return DetailView{
		Title:    title,
		Name:     FullName(d.Author.FirstName, d.Author.FamilyName),
		Lifespan: Lifespan(d.Author.DateOfBirth, d.Author.DateOfDeath),
		URL:      URL(d.Author.ID),
		Books:    d.Books,
	}
}

// NewFormView pre-fills the form from author, which may be nil.
func NewFormView(title string, author *Author, errs validate.Errors) FormView {
	view := FormView{Title: title, Errors: errs}
	if author != nil {
		view.FirstName = author.FirstName
		view.FamilyName = author.FamilyName
		view.DateOfBirth = DateISO(author.DateOfBirth)
		view.DateOfDeath = DateISO(author.DateOfDeath)
	}
	return view
}
