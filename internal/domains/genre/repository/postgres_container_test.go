//go:build container

package repository_test

import (
	"context"
	"strings"
	"testing"

	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/repository"
	"locallibrary/internal/infrastructure/database/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPostgresRepository(dbtest.Start(t).Pool)

	poetry := &model.Genre{ID: uuid.New(), Name: "Poetry"}
	fantasy := &model.Genre{ID: uuid.New(), Name: "Fantasy"}
	require.NoError(t, repo.Create(ctx, poetry))
	require.NoError(t, repo.Create(ctx, fantasy))

	t.Run("duplicate name ignoring case", func(t *testing.T) {
		err := repo.Create(ctx, &model.Genre{ID: uuid.New(), Name: "fANTASY"})
		assert.ErrorIs(t, err, model.ErrGenreDuplicate)

		err = repo.Update(ctx, &model.Genre{ID: poetry.ID, Name: "FANTASY"})
		assert.ErrorIs(t, err, model.ErrGenreDuplicate)
	})

	t.Run("find by name fold", func(t *testing.T) {
		got, err := repo.FindByNameFold(ctx, "poetry")
		require.NoError(t, err)
		assert.Equal(t, poetry.ID, got.ID)

		_, err = repo.FindByNameFold(ctx, "Horror")
		assert.ErrorIs(t, err, model.ErrGenreNotFound)
	})

	t.Run("list in insertion order and list by ids", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Poetry", list[0].Name)
		assert.Equal(t, "Fantasy", list[1].Name)

		some, err := repo.ListByIDs(ctx, []uuid.UUID{poetry.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, some, 1)
		assert.Equal(t, poetry.ID, some[0].ID)

		none, err := repo.ListByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("escaped name longer than the input limit", func(t *testing.T) {
		raw := strings.Repeat("a", model.MaxNameLength-9) + " & Sci/Fi"
		require.Len(t, raw, model.MaxNameLength)

		in, errs := model.GenreForm{Name: raw}.Validate()
		require.Empty(t, errs)
		require.Greater(t, len(in.Name), model.MaxNameLength)

		g := in.ToEntity(uuid.New())
		require.NoError(t, repo.Create(ctx, g))

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, in.Name, got.Name)
		require.NoError(t, repo.Delete(ctx, g.ID))
	})

	t.Run("update delete count", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, &model.Genre{ID: poetry.ID, Name: "Verse"}))
		got, err := repo.GetByID(ctx, poetry.ID)
		require.NoError(t, err)
		assert.Equal(t, "Verse", got.Name)

		assert.ErrorIs(t, repo.Update(ctx, &model.Genre{ID: uuid.New(), Name: "Drama"}), model.ErrGenreNotFound)

		require.NoError(t, repo.Delete(ctx, poetry.ID))
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}
