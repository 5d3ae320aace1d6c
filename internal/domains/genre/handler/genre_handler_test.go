package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	bookModel "locallibrary/internal/domains/book/model"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/repository"
	"locallibrary/internal/domains/genre/service"
	"locallibrary/internal/infrastructure/memstore"
	"locallibrary/internal/shared/middleware"
	"locallibrary/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *gin.Engine
	genres repository.RepositoryInterface
	books  bookRepo.RepositoryInterface
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	env := testEnv{
		genres: memstore.NewGenreRepository(store),
		books:  memstore.NewBookRepository(store),
	}

	tmpl, err := web.Templates()
	require.NoError(t, err)

	env.router = gin.New()
	env.router.SetHTMLTemplate(tmpl)
	env.router.Use(middleware.ErrorPage(false))
	NewHandler(service.NewService(env.genres, env.books)).RegisterRoutes(env.router.Group("/catalog"))
	return env
}

func (e testEnv) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (e testEnv) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e testEnv) seed(t *testing.T, name string) *model.Genre {
	t.Helper()
	g := &model.Genre{ID: uuid.New(), Name: name}
	require.NoError(t, e.genres.Create(context.Background(), g))
	return g
}

func (e testEnv) count(t *testing.T) int {
	t.Helper()
	n, err := e.genres.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestCreate(t *testing.T) {
	t.Run("new genre", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.post("/catalog/genre/create", url.Values{"name": {"  Fantasy  "}})
		require.Equal(t, http.StatusFound, w.Code)

		list, err := env.genres.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Fantasy", list[0].Name)
		assert.Equal(t, model.URL(list[0].ID), w.Header().Get("Location"))
	})

	t.Run("existing name redirects without inserting", func(t *testing.T) {
		env := newTestEnv(t)
		existing := env.seed(t, "Fantasy")

		w := env.post("/catalog/genre/create", url.Values{"name": {"FANTASY"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, model.URL(existing.ID), w.Header().Get("Location"))
		assert.Equal(t, 1, env.count(t))
	})

	t.Run("short name re-renders", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.post("/catalog/genre/create", url.Values{"name": {"ab"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Genre name must contain at least 3 characters")
		assert.Contains(t, w.Body.String(), `value="ab"`)
		assert.Equal(t, 0, env.count(t))
	})

	t.Run("markup is stored escaped and rendered once", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.post("/catalog/genre/create", url.Values{"name": {"<b>Noir</b>"}})
		require.Equal(t, http.StatusFound, w.Code)

		detail := env.get(w.Header().Get("Location"))
		require.Equal(t, http.StatusOK, detail.Code)
		assert.Contains(t, detail.Body.String(), "&lt;b&gt;Noir&lt;&#x2F;b&gt;")
		assert.NotContains(t, detail.Body.String(), "<b>Noir")
	})
}

func TestDetailAndList(t *testing.T) {
	env := newTestEnv(t)
	g := env.seed(t, "Poetry")
	env.seed(t, "Fantasy")
	require.NoError(t, env.books.Create(context.Background(), &bookModel.Book{
		ID: uuid.New(), Title: "Les Fleurs du mal", Summary: "Poems.", GenreIDs: []uuid.UUID{g.ID},
	}))

	w := env.get(model.URL(g.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genre: Poetry")
	assert.Contains(t, w.Body.String(), "Les Fleurs du mal")

	list := env.get(model.ListURL)
	require.Equal(t, http.StatusOK, list.Code)
	body := list.Body.String()
	// insertion order
	assert.Less(t, strings.Index(body, "Poetry"), strings.Index(body, "Fantasy"))

	assert.Equal(t, http.StatusNotFound, env.get(model.URL(uuid.New())).Code)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	g := env.seed(t, "Fantasy")
	book := &bookModel.Book{ID: uuid.New(), Title: "The Name of the Wind", GenreIDs: []uuid.UUID{g.ID}}
	require.NoError(t, env.books.Create(context.Background(), book))

	w := env.post(model.URL(g.ID)+"/delete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Delete the following books")
	assert.Equal(t, 1, env.count(t))

	require.NoError(t, env.books.Delete(context.Background(), book.ID))
	w = env.post(model.URL(g.ID)+"/delete", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, model.ListURL, w.Header().Get("Location"))
	assert.Equal(t, 0, env.count(t))

	missing := env.get(model.URL(uuid.New()) + "/delete")
	assert.Equal(t, http.StatusFound, missing.Code)
	assert.Equal(t, model.ListURL, missing.Header().Get("Location"))
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	poetry := env.seed(t, "Poetry")
	env.seed(t, "Fantasy")

	t.Run("name clash re-renders with the stored name", func(t *testing.T) {
		w := env.post(model.URL(poetry.ID)+"/update", url.Values{"name": {"fantasy"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Genre name already exists")
		assert.Contains(t, w.Body.String(), `value="Poetry"`)
	})

	t.Run("valid rename", func(t *testing.T) {
		w := env.post(model.URL(poetry.ID)+"/update", url.Values{"name": {"French Poetry"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, model.URL(poetry.ID), w.Header().Get("Location"))

		got, err := env.genres.GetByID(context.Background(), poetry.ID)
		require.NoError(t, err)
		assert.Equal(t, "French Poetry", got.Name)
	})

	t.Run("missing genre is not found", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, env.get(model.URL(uuid.New())+"/update").Code)
		assert.Equal(t, http.StatusNotFound, env.post(model.URL(uuid.New())+"/update", url.Values{"name": {"Horror"}}).Code)
	})
}
