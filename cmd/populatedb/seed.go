package main

import (
	"context"
	"fmt"

	authorModel "locallibrary/internal/domains/author/model"
	bookModel "locallibrary/internal/domains/book/model"
	bookinstanceModel "locallibrary/internal/domains/bookinstance/model"
	catalogModel "locallibrary/internal/domains/catalog/model"
	genreModel "locallibrary/internal/domains/genre/model"
	"locallibrary/pkg/container"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// sampleBook references authors and genres by their index in the sample
// slices below.
type sampleBook struct {
	title   string
	summary string
	isbn    string
	author  int
	genres  []int
}

type sampleCopy struct {
	book    int
	imprint string
	status  string
	dueBack string
}

var sampleAuthors = []authorModel.AuthorForm{
	{FirstName: "Patrick", FamilyName: "Rothfuss", DateOfBirth: "1973-06-06"},
	{FirstName: "Ben", FamilyName: "Bova", DateOfBirth: "1932-11-08"},
	{FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: "1920-01-02", DateOfDeath: "1992-04-06"},
	{FirstName: "Bob", FamilyName: "Billings"},
	{FirstName: "Jim", FamilyName: "Jones", DateOfBirth: "1971-12-16"},
}

var sampleGenres = []genreModel.GenreForm{
	{Name: "Fantasy"},
	{Name: "Science Fiction"},
	{Name: "French Poetry"},
}

var sampleBooks = []sampleBook{
	{
		title:   "The Name of the Wind (The Kingkiller Chronicle, #1)",
		summary: "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon. I have spent the night with Felurian and left with both my sanity and my life.",
		isbn:    "9781473211896",
		author:  0,
		genres:  []int{0},
	},
	{
		title:   "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
		summary: "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile, into political intrigue, courtship, adventure, love and magic.",
		isbn:    "9788401352836",
		author:  0,
		genres:  []int{0},
	},
	{
		title:   "The Slow Regard of Silent Things (Kingkiller Chronicle)",
		summary: "Deep below the University, there is a dark place. Few people know of it: a broken web of ancient passageways and abandoned rooms.",
		isbn:    "9780756411336",
		author:  0,
		genres:  []int{0},
	},
	{
		title:   "Apes and Angels",
		summary: "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity. Humans went to the stars in a desperate crusade to save intelligent life wherever they found it.",
		isbn:    "9780765379528",
		author:  1,
		genres:  []int{1},
	},
	{
		title:   "Death Wave",
		summary: "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system.",
		isbn:    "9780765379504",
		author:  1,
		genres:  []int{1},
	},
	{
		title:   "Test Book 1",
		summary: "Summary of test book 1",
		isbn:    "ISBN111111",
		author:  4,
		genres:  []int{0, 1},
	},
	{
		title:   "Test Book 2",
		summary: "Summary of test book 2",
		isbn:    "ISBN222222",
		author:  4,
		genres:  []int{2},
	},
}

var sampleCopies = []sampleCopy{
	{book: 0, imprint: "London Gollancz, 2014.", status: "Available"},
	{book: 1, imprint: " Gollancz, 2011.", status: "Loaned", dueBack: "2020-06-06"},
	{book: 2, imprint: " Gollancz, 2015."},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: "Available"},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: "Available"},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: "Available"},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: "Available"},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: "Maintenance"},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: "Loaned"},
	{book: 0, imprint: "Imprint XXX2"},
	{book: 1, imprint: "Imprint XXX3"},
}

func bookForm(b sampleBook, authorIDs, genreIDs []uuid.UUID) bookModel.BookForm {
	form := bookModel.BookForm{
		Title:   b.title,
		Author:  authorIDs[b.author].String(),
		Summary: b.summary,
		ISBN:    b.isbn,
	}
	for _, g := range b.genres {
		form.Genre = append(form.Genre, genreIDs[g].String())
	}
	return form
}

func copyForm(s sampleCopy, bookIDs []uuid.UUID) bookinstanceModel.BookInstanceForm {
	return bookinstanceModel.BookInstanceForm{
		Book:    bookIDs[s.book].String(),
		Imprint: s.imprint,
		Status:  s.status,
		DueBack: s.dueBack,
	}
}

func placeholderIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

// validateSample runs every sample form through validation without touching
// a store.
func validateSample() error {
	for i, f := range sampleAuthors {
		if _, errs := f.Validate(); len(errs) > 0 {
			return fmt.Errorf("author %d: %w", i, errs)
		}
	}
	for i, f := range sampleGenres {
		if _, errs := f.Validate(); len(errs) > 0 {
			return fmt.Errorf("genre %d: %w", i, errs)
		}
	}

	authorIDs := placeholderIDs(len(sampleAuthors))
	genreIDs := placeholderIDs(len(sampleGenres))
	for i, b := range sampleBooks {
		if _, errs := bookForm(b, authorIDs, genreIDs).Validate(); len(errs) > 0 {
			return fmt.Errorf("book %d: %w", i, errs)
		}
	}

	bookIDs := placeholderIDs(len(sampleBooks))
	for i, s := range sampleCopies {
		if _, errs := copyForm(s, bookIDs).Validate(); len(errs) > 0 {
			return fmt.Errorf("copy %d: %w", i, errs)
		}
	}

	log.Info().Msg("sample data is valid")
	return nil
}

// seed inserts the sample catalog in dependency order. Genres that already
// exist are reused rather than duplicated.
func seed(ctx context.Context, c *container.Container) (catalogModel.Counts, error) {
	var counts catalogModel.Counts

	authorIDs := make([]uuid.UUID, 0, len(sampleAuthors))
	for i, f := range sampleAuthors {
		in, errs := f.Validate()
		if len(errs) > 0 {
			return counts, fmt.Errorf("author %d: %w", i, errs)
		}
		a, err := c.AuthorService.Create(ctx, in)
		if err != nil {
			return counts, fmt.Errorf("create author %d: %w", i, err)
		}
		authorIDs = append(authorIDs, a.ID)
		counts.Authors++
	}

	genreIDs := make([]uuid.UUID, 0, len(sampleGenres))
	for i, f := range sampleGenres {
		in, errs := f.Validate()
		if len(errs) > 0 {
			return counts, fmt.Errorf("genre %d: %w", i, errs)
		}
		g, existed, err := c.GenreService.Create(ctx, in)
		if err != nil {
			return counts, fmt.Errorf("create genre %d: %w", i, err)
		}
		genreIDs = append(genreIDs, g.ID)
		if !existed {
			counts.Genres++
		}
	}

	bookIDs := make([]uuid.UUID, 0, len(sampleBooks))
	for i, b := range sampleBooks {
		in, errs := bookForm(b, authorIDs, genreIDs).Validate()
		if len(errs) > 0 {
			return counts, fmt.Errorf("book %d: %w", i, errs)
		}
		created, err := c.BookService.Create(ctx, in)
		if err != nil {
			return counts, fmt.Errorf("create book %d: %w", i, err)
		}
		bookIDs = append(bookIDs, created.ID)
		counts.Books++
	}

	for i, s := range sampleCopies {
		in, errs := copyForm(s, bookIDs).Validate()
		if len(errs) > 0 {
			return counts, fmt.Errorf("copy %d: %w", i, errs)
		}
		if _, err := c.BookInstanceService.Create(ctx, in); err != nil {
			return counts, fmt.Errorf("create copy %d: %w", i, err)
		}
		counts.BookInstances++
	}

	return counts, nil
}
