package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/author/repository"
	"locallibrary/internal/domains/author/service"
	bookModel "locallibrary/internal/domains/book/model"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/infrastructure/memstore"
	"locallibrary/internal/shared/middleware"
	"locallibrary/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  *gin.Engine
	authors repository.RepositoryInterface
	books   bookRepo.RepositoryInterface
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	env := testEnv{
		authors: memstore.NewAuthorRepository(store),
		books:   memstore.NewBookRepository(store),
	}

	tmpl, err := web.Templates()
	require.NoError(t, err)

	env.router = gin.New()
	env.router.SetHTMLTemplate(tmpl)
	env.router.Use(middleware.ErrorPage(false))
	NewHandler(service.NewService(env.authors, env.books)).RegisterRoutes(env.router.Group("/catalog"))
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

func (e testEnv) seed(t *testing.T, first, family string) *model.Author {
	t.Helper()
	a := &model.Author{ID: uuid.New(), FirstName: first, FamilyName: family}
	require.NoError(t, e.authors.Create(context.Background(), a))
	return a
}

func (e testEnv) count(t *testing.T) int {
	t.Helper()
	n, err := e.authors.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "Ben", "Bova")
	env.seed(t, "Isaac", "Asimov")

	w := env.get("/catalog/authors")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Author List")
	assert.Less(t, strings.Index(body, "Asimov, Isaac"), strings.Index(body, "Bova, Ben"))
}

func TestCreate(t *testing.T) {
	t.Run("valid submission redirects to the new author", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.post("/catalog/author/create", url.Values{"first_name": {"Jane"}, "family_name": {"Austen"}})
		require.Equal(t, http.StatusFound, w.Code)

		list, err := env.authors.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, model.URL(list[0].ID), w.Header().Get("Location"))
		assert.Equal(t, "Austen, Jane", model.FullName(list[0].FirstName, list[0].FamilyName))

		detail := env.get(model.URL(list[0].ID))
		require.Equal(t, http.StatusOK, detail.Code)
		assert.Contains(t, detail.Body.String(), "Austen, Jane")
		assert.Contains(t, detail.Body.String(), "Unknown ~")
	})

	t.Run("empty first name re-renders without inserting", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.post("/catalog/author/create", url.Values{"first_name": {""}, "family_name": {"Austen"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "First name must be specified.")
		assert.Contains(t, w.Body.String(), `value="Austen"`)
		assert.Equal(t, 0, env.count(t))
	})

	t.Run("bad date re-renders", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.post("/catalog/author/create", url.Values{"first_name": {"Jane"}, "family_name": {"Austen"}, "date_of_birth": {"soon"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid date of birth")
		assert.Equal(t, 0, env.count(t))
	})
}

func TestDetail_NotFound(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusNotFound, env.get(model.URL(uuid.New())).Code)
	assert.Equal(t, http.StatusNotFound, env.get("/catalog/author/not-an-id").Code)
	assert.Equal(t, http.StatusNotFound, env.get(model.URL(uuid.New())+"/update").Code)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	author := env.seed(t, "Patrick", "Rothfuss")
	book := &bookModel.Book{ID: uuid.New(), Title: "The Name of the Wind", AuthorID: author.ID}
	require.NoError(t, env.books.Create(context.Background(), book))

	t.Run("missing author redirects to the list", func(t *testing.T) {
		w := env.get(model.URL(uuid.New()) + "/delete")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, model.ListURL, w.Header().Get("Location"))
	})

	t.Run("confirmation lists blocking books", func(t *testing.T) {
		w := env.get(model.URL(author.ID) + "/delete")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Name of the Wind")
		assert.Contains(t, w.Body.String(), "Delete the following books")
	})

	t.Run("submit is refused while books exist", func(t *testing.T) {
		w := env.post(model.URL(author.ID)+"/delete", url.Values{"authorid": {uuid.NewString()}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Name of the Wind")
		assert.Equal(t, 1, env.count(t))
	})

	t.Run("submit deletes once books are gone", func(t *testing.T) {
		require.NoError(t, env.books.Delete(context.Background(), book.ID))

		w := env.post(model.URL(author.ID)+"/delete", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, model.ListURL, w.Header().Get("Location"))
		assert.Equal(t, 0, env.count(t))
		assert.Equal(t, http.StatusNotFound, env.get(model.URL(author.ID)).Code)
	})
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	author := env.seed(t, "Jane", "Austen")

	t.Run("form is pre-filled", func(t *testing.T) {
		w := env.get(model.URL(author.ID) + "/update")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="Jane"`)
	})

	t.Run("invalid submission shows the stored values", func(t *testing.T) {
		w := env.post(model.URL(author.ID)+"/update", url.Values{"first_name": {"J@net"}, "family_name": {"Austen"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "First name has non-alphanumeric characters.")
		assert.Contains(t, w.Body.String(), `value="Jane"`)
	})

	t.Run("valid submission updates in place", func(t *testing.T) {
		w := env.post(model.URL(author.ID)+"/update", url.Values{"first_name": {"Janet"}, "family_name": {"Austen"}, "date_of_birth": {"1775-12-16"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, model.URL(author.ID), w.Header().Get("Location"))

		got, err := env.authors.GetByID(context.Background(), author.ID)
		require.NoError(t, err)
		assert.Equal(t, "Janet", got.FirstName)
		assert.Equal(t, "1775-12-16", model.DateISO(got.DateOfBirth))
		assert.Equal(t, 1, env.count(t))
	})
}
