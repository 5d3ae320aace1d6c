package model

import (
	bookModel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/shared/validate"

	"github.com/google/uuid"
)

// Template names
const (
	ListTemplate   = "bookinstance_list.html"
	DetailTemplate = "bookinstance_detail.html"
	FormTemplate   = "bookinstance_form.html"
	DeleteTemplate = "bookinstance_delete.html"
)

// BookRef is the book a copy belongs to, as shown on copy pages and forms.
type BookRef struct {
	ID    uuid.UUID
	Title string
	URL   string
}

// Detail is a copy together with the book it belongs to.
type Detail struct {
	BookInstance BookInstance
	Book         BookRef
}

type ListItem struct {
	ID        uuid.UUID
	Imprint   string
	BookTitle string
	Status    Status
	DueBack   string
	URL       string
}

type ListView struct {
	Title     string
	Instances []ListItem
}

// DetailView backs bookinstance_detail.html and bookinstance_delete.html.
type DetailView struct {
	Title   string
	ID      uuid.UUID
	Imprint string
	Status  Status
	DueBack string
	URL     string
	Book    BookRef
}

type BookOption struct {
	ID       uuid.UUID
	Title    string
	Selected bool
}

type StatusOption struct {
	Value    Status
	Selected bool
}

// FormView backs bookinstance_form.html for both create and update.
// FormData is the stored copy with every book to choose from.
type FormData struct {
	Instance *BookInstance
	Books    []bookModel.Summary
}

type FormView struct {
	Title    string
	Imprint  string
	DueBack  string
	Books    []BookOption
	Statuses []StatusOption
	Errors   validate.Errors
}

func NewListView(title string, listings []Listing) ListView {
	items := make([]ListItem, 0, len(listings))
	for _, l := range listings {
		items = append(items, ListItem{
			ID:        l.ID,
			Imprint:   l.Imprint,
			BookTitle: l.BookTitle,
			Status:    l.Status,
			DueBack:   DueBackFormatted(l.DueBack),
			URL:       URL(l.ID),
		})
	}
	return ListView{Title: title, Instances: items}
}

func NewDetailView(title string, d *Detail) DetailView {
	return DetailView{
		Title:   title,
		ID:      d.BookInstance.ID,
		Imprint: d.BookInstance.Imprint,
		Status:  d.BookInstance.Status,
		DueBack: DueBackFormatted(d.BookInstance.DueBack),
		URL:     URL(d.BookInstance.ID),
		Book:    d.Book,
	}
}

// NewFormView marks the copy's book and status as selected. instance may be
// nil for an empty create form, in which case the default status is selected.
func NewFormView(title string, instance *BookInstance, books []bookModel.Summary, errs validate.Errors) FormView {
	view := FormView{
		Title:    title,
		Books:    make([]BookOption, 0, len(books)),
		Statuses: make([]StatusOption, 0, len(Statuses)),
		Errors:   errs,
	}

	current := DefaultStatus
	if instance != nil {
		view.Imprint = instance.Imprint
		view.DueBack = DueBackISO(instance.DueBack)
		if instance.Status.Valid() {
			current = instance.Status
		}
	}

	for _, b := range books {
		view.Books = append(view.Books, BookOption{
			ID:       b.ID,
			Title:    b.Title,
			Selected: instance != nil && instance.BookID == b.ID,
		})
	}
	for _, s := range Statuses {
		view.Statuses = append(view.Statuses, StatusOption{Value: s, Selected: s == current})
	}
	return view
}
