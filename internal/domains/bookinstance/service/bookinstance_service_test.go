package service

import (
	"context"
	"testing"

	bookModel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/bookinstance/model"
	"locallibrary/internal/infrastructure/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookInstanceLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	books := memstore.NewBookRepository(store)
	svc := NewService(memstore.NewBookInstanceRepository(store), books)

	book := &bookModel.Book{ID: uuid.New(), Title: "Death Wave"}
	require.NoError(t, books.Create(ctx, book))

	in, errs := model.BookInstanceForm{Book: book.ID.String(), Imprint: "Tor, 2015.", Status: "Loaned", DueBack: "2024-03-05"}.Validate()
	require.Empty(t, errs)

	bi, err := svc.Create(ctx, in)
	require.NoError(t, err)

	d, err := svc.Detail(ctx, bi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Death Wave", d.Book.Title)
	assert.Equal(t, bookModel.URL(book.ID), d.Book.URL)
	assert.Equal(t, "2024-03-05", model.DueBackISO(d.BookInstance.DueBack))

	in.Status = model.StatusAvailable
	in.DueBack = nil
	updated, err := svc.Update(ctx, bi.ID, in)
	require.NoError(t, err)
	assert.Equal(t, bi.ID, updated.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.StatusAvailable, list[0].Status)
	assert.Nil(t, list[0].DueBack)

	options, err := svc.FormBooks(ctx)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Death Wave", options[0].Title)

	require.NoError(t, svc.Delete(ctx, bi.ID))
	_, err = svc.Detail(ctx, bi.ID)
	assert.ErrorIs(t, err, model.ErrBookInstanceNotFound)
}

func TestUpdateForm(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	books := memstore.NewBookRepository(store)
	repo := memstore.NewBookInstanceRepository(store)
	svc := NewService(repo, books)

	book := &bookModel.Book{ID: uuid.New(), Title: "Death Wave"}
	require.NoError(t, books.Create(ctx, book))
	instance := &model.BookInstance{ID: uuid.New(), BookID: book.ID, Imprint: "Tor, 2015.", Status: model.StatusReserved}
	require.NoError(t, repo.Create(ctx, instance))

	data, err := svc.UpdateForm(ctx, instance.ID)
	require.NoError(t, err)
	require.NotNil(t, data.Instance)
	assert.Equal(t, model.StatusReserved, data.Instance.Status)
	require.Len(t, data.Books, 1)
	assert.Equal(t, book.ID, data.Books[0].ID)

	_, err = svc.UpdateForm(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrBookInstanceNotFound)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.UpdateForm(canceled, instance.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrBookInstanceNotFound)
}

func TestDetail_DanglingBook(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	repo := memstore.NewBookInstanceRepository(store)
	svc := NewService(repo, memstore.NewBookRepository(store))

	bi := &model.BookInstance{ID: uuid.New(), BookID: uuid.New(), Imprint: "Lost", Status: model.StatusMaintenance}
	require.NoError(t, repo.Create(ctx, bi))

	d, err := svc.Detail(ctx, bi.ID)
	require.NoError(t, err)
	assert.Empty(t, d.Book.Title)
}
