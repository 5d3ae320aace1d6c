package memstore

import (
	"context"
	"testing"
	"time"

	authorModel "locallibrary/internal/domains/author/model"
	authorRepo "locallibrary/internal/domains/author/repository"
	bookModel "locallibrary/internal/domains/book/model"
	bookRepo "locallibrary/internal/domains/book/repository"
	bookinstanceModel "locallibrary/internal/domains/bookinstance/model"
	bookinstanceRepo "locallibrary/internal/domains/bookinstance/repository"
	genreModel "locallibrary/internal/domains/genre/model"
	genreRepo "locallibrary/internal/domains/genre/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ authorRepo.RepositoryInterface       = (*authorRepository)(nil)
	_ genreRepo.RepositoryInterface        = (*genreRepository)(nil)
	_ bookRepo.RepositoryInterface         = (*bookRepository)(nil)
	_ bookinstanceRepo.RepositoryInterface = (*bookInstanceRepository)(nil)
)

func TestAuthors_SortedByFamilyNameAndCopied(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthorRepository(New())

	born := time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC)
	asimov := &authorModel.Author{ID: uuid.New(), FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: &born}
	require.NoError(t, repo.Create(ctx, &authorModel.Author{ID: uuid.New(), FirstName: "Ben", FamilyName: "Bova"}))
	require.NoError(t, repo.Create(ctx, asimov))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Asimov", list[0].FamilyName)
	assert.Equal(t, "Bova", list[1].FamilyName)

	// mutating what the caller holds must not reach the store
	*asimov.DateOfBirth = time.Time{}
	got, err := repo.GetByID(ctx, asimov.ID)
	require.NoError(t, err)
	assert.Equal(t, born, *got.DateOfBirth)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAuthors_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthorRepository(New())

	missing := &authorModel.Author{ID: uuid.New(), FirstName: "No", FamilyName: "One"}
	assert.ErrorIs(t, repo.Update(ctx, missing), authorModel.ErrAuthorNotFound)

	require.NoError(t, repo.Create(ctx, missing))
	missing.FirstName = "Some"
	require.NoError(t, repo.Update(ctx, missing))

	got, err := repo.GetByID(ctx, missing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Some", got.FirstName)

	require.NoError(t, repo.Delete(ctx, missing.ID))
	require.NoError(t, repo.Delete(ctx, missing.ID))
	_, err = repo.GetByID(ctx, missing.ID)
	assert.ErrorIs(t, err, authorModel.ErrAuthorNotFound)
}

func TestGenres_CaseInsensitiveNames(t *testing.T) {
	ctx := context.Background()
	repo := NewGenreRepository(New())

	fantasy := &genreModel.Genre{ID: uuid.New(), Name: "Fantasy"}
	poetry := &genreModel.Genre{ID: uuid.New(), Name: "Poetry"}
	require.NoError(t, repo.Create(ctx, fantasy))
	require.NoError(t, repo.Create(ctx, poetry))

	found, err := repo.FindByNameFold(ctx, "FANTASY")
	require.NoError(t, err)
	assert.Equal(t, fantasy.ID, found.ID)

	_, err = repo.FindByNameFold(ctx, "Horror")
	assert.ErrorIs(t, err, genreModel.ErrGenreNotFound)

	err = repo.Create(ctx, &genreModel.Genre{ID: uuid.New(), Name: "fantasy"})
	assert.ErrorIs(t, err, genreModel.ErrGenreDuplicate)

	// renaming to another genre's name is a duplicate, keeping your own is not
	assert.ErrorIs(t, repo.Update(ctx, &genreModel.Genre{ID: poetry.ID, Name: "fantasy"}), genreModel.ErrGenreDuplicate)
	assert.NoError(t, repo.Update(ctx, &genreModel.Genre{ID: poetry.ID, Name: "POETRY"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Fantasy", list[0].Name)
	assert.Equal(t, "POETRY", list[1].Name)

	byIDs, err := repo.ListByIDs(ctx, []uuid.UUID{poetry.ID, uuid.New(), poetry.ID, fantasy.ID})
	require.NoError(t, err)
	require.Len(t, byIDs, 2)
	assert.Equal(t, fantasy.ID, byIDs[0].ID)
}

func TestGenres_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewGenreRepository(New())

	for _, name := range []string{"Poetry", "Fantasy", "Science Fiction"} {
		require.NoError(t, repo.Create(ctx, &genreModel.Genre{ID: uuid.New(), Name: name}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, g := range list {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Poetry", "Fantasy", "Science Fiction"}, names)
}

func TestBooks_DependentsAndListing(t *testing.T) {
	ctx := context.Background()
	store := New()
	authors := NewAuthorRepository(store)
	books := NewBookRepository(store)

	author := &authorModel.Author{ID: uuid.New(), FirstName: "Patrick", FamilyName: "Rothfuss"}
	require.NoError(t, authors.Create(ctx, author))

	fantasy, scifi := uuid.New(), uuid.New()
	wind := &bookModel.Book{ID: uuid.New(), Title: "The Name of the Wind", AuthorID: author.ID, GenreIDs: []uuid.UUID{fantasy}}
	fear := &bookModel.Book{ID: uuid.New(), Title: "The Wise Man's Fear", AuthorID: author.ID, GenreIDs: []uuid.UUID{fantasy, scifi}}
	orphan := &bookModel.Book{ID: uuid.New(), Title: "Apes and Angels", AuthorID: uuid.New(), GenreIDs: []uuid.UUID{scifi}}
	for _, b := range []*bookModel.Book{fear, wind, orphan} {
		require.NoError(t, books.Create(ctx, b))
	}

	byAuthor, err := books.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, wind.ID, byAuthor[0].ID)

	byGenre, err := books.ListByGenre(ctx, scifi)
	require.NoError(t, err)
	require.Len(t, byGenre, 2)
	assert.Equal(t, orphan.ID, byGenre[0].ID)

	listings, err := books.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "Apes and Angels", listings[0].Title)
	assert.Equal(t, "", listings[0].AuthorName)
	assert.Equal(t, "Rothfuss, Patrick", listings[1].AuthorName)
}

func TestBookInstances_InsertionOrderAndStatusCount(t *testing.T) {
	ctx := context.Background()
	store := New()
	books := NewBookRepository(store)
	copies := NewBookInstanceRepository(store)

	book := &bookModel.Book{ID: uuid.New(), Title: "Death Wave"}
	require.NoError(t, books.Create(ctx, book))

	statuses := []bookinstanceModel.Status{
		bookinstanceModel.StatusLoaned,
		bookinstanceModel.StatusAvailable,
		bookinstanceModel.StatusAvailable,
	}
	ids := make([]uuid.UUID, 0, len(statuses))
	for _, s := range statuses {
		bi := &bookinstanceModel.BookInstance{ID: uuid.New(), BookID: book.ID, Imprint: "Tor", Status: s}
		require.NoError(t, copies.Create(ctx, bi))
		ids = append(ids, bi.ID)
	}
	require.NoError(t, copies.Create(ctx, &bookinstanceModel.BookInstance{ID: uuid.New(), BookID: uuid.New(), Imprint: "Lost"}))

	list, err := copies.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, id := range ids {
		assert.Equal(t, id, list[i].ID)
		assert.Equal(t, "Death Wave", list[i].BookTitle)
	}
	assert.Equal(t, "", list[3].BookTitle)

	forBook, err := copies.ListByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, forBook, 3)

	available, err := copies.CountByStatus(ctx, bookinstanceModel.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 2, available)

	// a delete keeps the order of the remaining copies
	require.NoError(t, copies.Delete(ctx, ids[0]))
	list, err = copies.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids[1], list[0].ID)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAuthorRepository(New()).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
