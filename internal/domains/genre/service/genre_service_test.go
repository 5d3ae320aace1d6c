package service

import (
	"context"
	"testing"

	bookModel "locallibrary/internal/domains/book/model"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/repository"
	"locallibrary/internal/infrastructure/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    ServiceInterface
	genres repository.RepositoryInterface
	books  bookRepo.RepositoryInterface
}

func newFixture() fixture {
	store := memstore.New()
	f := fixture{
		genres: memstore.NewGenreRepository(store),
		books:  memstore.NewBookRepository(store),
	}
	f.svc = NewService(f.genres, f.books)
	return f
}

func TestCreate_SoftDedup(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, existed, err := f.svc.Create(ctx, model.GenreInput{Name: "Fantasy"})
	require.NoError(t, err)
	assert.False(t, existed)

	again, existed, err := f.svc.Create(ctx, model.GenreInput{Name: "fANTASY"})
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, first.ID, again.ID)

	n, err := f.genres.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	fantasy, _, err := f.svc.Create(ctx, model.GenreInput{Name: "Fantasy"})
	require.NoError(t, err)
	poetry, _, err := f.svc.Create(ctx, model.GenreInput{Name: "Poetry"})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, poetry.ID, model.GenreInput{Name: "FANTASY"})
	assert.ErrorIs(t, err, model.ErrGenreDuplicate)

	updated, err := f.svc.Update(ctx, poetry.ID, model.GenreInput{Name: "French Poetry"})
	require.NoError(t, err)
	assert.Equal(t, poetry.ID, updated.ID)

	got, err := f.svc.Get(ctx, fantasy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", got.Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	g, _, err := f.svc.Create(ctx, model.GenreInput{Name: "Fantasy"})
	require.NoError(t, err)
	book := &bookModel.Book{ID: uuid.New(), Title: "The Name of the Wind", GenreIDs: []uuid.UUID{uuid.New(), g.ID}}
	require.NoError(t, f.books.Create(ctx, book))

	d, err := f.svc.Delete(ctx, g.ID)
	assert.ErrorIs(t, err, model.ErrGenreHasBooks)
	require.NotNil(t, d)
	require.Len(t, d.Books, 1)
	assert.Equal(t, book.ID, d.Books[0].ID)

	require.NoError(t, f.books.Delete(ctx, book.ID))
	_, err = f.svc.Delete(ctx, g.ID)
	require.NoError(t, err)

	_, err = f.svc.Detail(ctx, g.ID)
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}
