package model

import (
	bookModel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/shared/validate"
)

// Template names
const (
	ListTemplate   = "genre_list.html"
	DetailTemplate = "genre_detail.html"
	FormTemplate   = "genre_form.html"
	DeleteTemplate = "genre_delete.html"
)

// Detail is a genre together with every book that lists it.
type Detail struct {
	Genre Genre
	Books []bookModel.Summary
}

type ListItem struct {
	Name string
	URL  string
}

type ListView struct {
	Title  string
	Genres []ListItem
}

// DetailView backs genre_detail.html and genre_delete.html.
type DetailView struct {
	Title string
	Name  string
	URL   string
	Books []bookModel.Summary
}

type FormView struct {
	Title  string
	Name   string
	Errors validate.Errors
}

func NewListView(title string, genres []Genre) ListView {
	items := make([]ListItem, 0, len(genres))
	for _, g := range genres {
		items = append(items, ListItem{Name: g.Name, URL: URL(g.ID)})
	}
	return ListView{Title: title, Genres: items}
}

func NewDetailView(title string, d *Detail) DetailView {
	return DetailView{
		Title: title,
		Name:  d.Genre.Name,
		URL:   URL(d.Genre.ID),
		Books: d.Books,
	}
}

func NewFormView(title string, genre *Genre, errs validate.Errors) FormView {
	view := FormView{Title: title, Errors: errs}
	if genre != nil {
		view.Name = genre.Name
	}
	return view
}
