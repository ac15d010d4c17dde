// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/catalog/book"
	"github.com/taibuivan/locallibrary/internal/catalog/genre"
	"github.com/taibuivan/locallibrary/internal/catalog/memstore"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

type recordingRenderer struct {
	name string
	data any
}

func (r *recordingRenderer) Render(writer io.Writer, name string, data any) error {
	r.name, r.data = name, data
	_, err := io.WriteString(writer, name)
	return err
}

type fixture struct {
	store  *memstore.Store
	views  *recordingRenderer
	router http.Handler
}

func newFixture(t *testing.T, repo genre.Repository) *fixture {
	t.Helper()

	store := memstore.New()
	if repo == nil {
		repo = store.Genres()
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	views := &recordingRenderer{}
	handler := genre.NewHandler(genre.NewService(repo, store.Books(), logger), respond.New(views))

	router := chi.NewRouter()
	router.Route("/catalog", handler.RegisterRoutes)
	return &fixture{store: store, views: views, router: router}
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func (f *fixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func (f *fixture) seed(t *testing.T, name string) *genre.Genre {
	t.Helper()

	g := &genre.Genre{ID: uuid.New(), Name: name}
	require.NoError(t, f.store.Genres().CreateGenre(context.Background(), g))
	return g
}

func (f *fixture) genres(t *testing.T) []*genre.Genre {
	t.Helper()

	genres, err := f.store.Genres().ListGenres(context.Background())
	require.NoError(t, err)
	return genres
}

/*
TestCreate_Idempotent inserts a name once and redirects repeats to the same genre.
*/
func TestCreate_Idempotent(t *testing.T) {
	f := newFixture(t, nil)

	first := f.post("/catalog/genre/create", url.Values{"name": {" Fiction "}})
	require.Equal(t, http.StatusFound, first.Code)

	genres := f.genres(t)
	require.Len(t, genres, 1)
	assert.Equal(t, "Fiction", genres[0].Name)
	assert.Equal(t, "/catalog/genre/"+genres[0].ID, first.Header().Get("Location"))

	second := f.post("/catalog/genre/create", url.Values{"name": {"Fiction"}})
	require.Equal(t, http.StatusFound, second.Code)
	assert.Equal(t, first.Header().Get("Location"), second.Header().Get("Location"))
	assert.Len(t, f.genres(t), 1)
}

/*
TestCreate_Escaped deduplicates on the escaped name.
*/
func TestCreate_Escaped(t *testing.T) {
	f := newFixture(t, nil)

	f.post("/catalog/genre/create", url.Values{"name": {"Sci-Fi & Fantasy"}})
	f.post("/catalog/genre/create", url.Values{"name": {"  Sci-Fi & Fantasy"}})

	genres := f.genres(t)
	require.Len(t, genres, 1)
	assert.Equal(t, "Sci-Fi &amp; Fantasy", genres[0].Name)
}

/*
TestCreate_ValidationFailure redisplays the form with the create message.
*/
func TestCreate_ValidationFailure(t *testing.T) {
	f := newFixture(t, nil)

	recorder := f.post("/catalog/genre/create", url.Values{"name": {"   "}})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, genre.ViewForm, f.views.name)

	page := f.views.data.(genre.FormPage)
	assert.Equal(t, "Create Genre", page.Title)
	require.Len(t, page.Errors, 1)
	assert.Equal(t, "Genre name required", page.Errors[0].Message)
	assert.Equal(t, "", page.Genre.Name)
	assert.Empty(t, f.genres(t))
}

/*
TestPages_GetViews renders list, detail and form pages.
*/
func TestPages_GetViews(t *testing.T) {
	f := newFixture(t, nil)
	poetry := f.seed(t, "Poetry")
	f.seed(t, "Fantasy")
	f.store.PutBook(&book.Book{ID: uuid.New(), Title: "Odes", ISBN: "1", AuthorID: uuid.New(), GenreIDs: []string{poetry.ID}})

	t.Run("list", func(t *testing.T) {
		recorder := f.get("/catalog/genres")

		require.Equal(t, http.StatusOK, recorder.Code)
		page := f.views.data.(genre.ListPage)
		assert.Equal(t, "Genre List", page.Title)
		require.Len(t, page.Genres, 2)
		assert.Equal(t, "Fantasy", page.Genres[0].Name)
	})

	t.Run("detail", func(t *testing.T) {
		recorder := f.get(poetry.URL())

		require.Equal(t, http.StatusOK, recorder.Code)
		page := f.views.data.(genre.DetailPage)
		assert.Equal(t, "Genre Detail", page.Title)
		assert.Equal(t, poetry.ID, page.Genre.ID)
		require.Len(t, page.Books, 1)
		assert.Equal(t, "Odes", page.Books[0].Title)
	})

	t.Run("create_form", func(t *testing.T) {
		f.get("/catalog/genre/create")

		page := f.views.data.(genre.FormPage)
		assert.Equal(t, "Create Genre", page.Title)
		assert.NotNil(t, page.Genre)
	})

	t.Run("update_form", func(t *testing.T) {
		f.get(poetry.URL() + "/update")

		page := f.views.data.(genre.FormPage)
		assert.Equal(t, "Update Genre", page.Title)
		assert.Equal(t, "Poetry", page.Genre.Name)
	})

	t.Run("delete_form", func(t *testing.T) {
		f.get(poetry.URL() + "/delete")

		page := f.views.data.(genre.DeletePage)
		assert.Equal(t, "Delete Genre", page.Title)
		assert.Len(t, page.Books, 1)
	})
}

/*
TestDetail_NotFound renders the error page for unknown ids.
*/
func TestDetail_NotFound(t *testing.T) {
	f := newFixture(t, nil)

	recorder := f.get("/catalog/genre/" + uuid.New())

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Genre Not Found!", f.views.data.(respond.ErrorPage).Message)
}

/*
TestUpdate renames the genre in place.
*/
func TestUpdate(t *testing.T) {
	f := newFixture(t, nil)
	original := f.seed(t, "Poetry")

	t.Run("success", func(t *testing.T) {
		recorder := f.post(original.URL()+"/update", url.Values{"name": {" Verse "}})

		require.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, original.URL(), recorder.Header().Get("Location"))

		genres := f.genres(t)
		require.Len(t, genres, 1)
		assert.Equal(t, &genre.Genre{ID: original.ID, Name: "Verse"}, genres[0])
	})

	t.Run("empty_name", func(t *testing.T) {
		recorder := f.post(original.URL()+"/update", url.Values{"name": {""}})

		assert.Equal(t, http.StatusOK, recorder.Code)
		page := f.views.data.(genre.FormPage)
		assert.Equal(t, "Update Genre", page.Title)
		require.Len(t, page.Errors, 1)
		assert.Equal(t, "Name cannot be empty", page.Errors[0].Message)
		assert.Equal(t, "Verse", f.genres(t)[0].Name)
	})

	t.Run("missing", func(t *testing.T) {
		recorder := f.post("/catalog/genre/"+uuid.New()+"/update", url.Values{"name": {"Drama"}})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Len(t, f.genres(t), 1)
	})
}

/*
TestDelete removes the genre named by the path even while books reference it.
A submitted genreid field is ignored.
*/
func TestDelete(t *testing.T) {
	f := newFixture(t, nil)
	poetry := f.seed(t, "Poetry")
	drama := f.seed(t, "Drama")
	f.store.PutBook(&book.Book{ID: uuid.New(), Title: "Odes", ISBN: "1", AuthorID: uuid.New(), GenreIDs: []string{poetry.ID}})

	recorder := f.post(poetry.URL()+"/delete", url.Values{"genreid": {drama.ID}})

	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/catalog/genres", recorder.Header().Get("Location"))
	remaining := f.genres(t)
	require.Len(t, remaining, 1)
	assert.Equal(t, drama.ID, remaining[0].ID)

	// The confirmation of a deleted genre goes back to the list
	recorder = f.get(poetry.URL() + "/delete")
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/catalog/genres", recorder.Header().Get("Location"))
}

type brokenRepository struct {
	genre.Repository
}

var errConnection = errors.New("connection refused")

func (brokenRepository) FindGenreByName(context.Context, string) (*genre.Genre, error) {
	return nil, dberr.Wrap(errConnection, "find_genre_by_name")
}

func (brokenRepository) DeleteGenre(context.Context, string) error {
	return dberr.Wrap(errConnection, "delete_genre")
}

/*
TestStoreFailure reaches the error page from the duplicate lookup and delete.
*/
func TestStoreFailure(t *testing.T) {
	f := newFixture(t, brokenRepository{})

	recorder := f.post("/catalog/genre/create", url.Values{"name": {"Drama"}})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, respond.ErrorView, f.views.name)

	recorder = f.post("/catalog/genre/"+uuid.New()+"/delete", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

// brokenBooks fails the book side of the genre join.
type brokenBooks struct{}

func (brokenBooks) ListByGenre(context.Context, string) ([]*book.Book, error) {
	return nil, dberr.Wrap(errConnection, "list_books_by_genre")
}

// failingWrites reads from the memory store but rejects every write.
type failingWrites struct {
	*memstore.GenreRepository
}

func (failingWrites) CreateGenre(context.Context, *genre.Genre) error {
	return dberr.Wrap(errConnection, "create_genre")
}

func (failingWrites) UpdateGenre(context.Context, *genre.Genre) error {
	return dberr.Wrap(errConnection, "update_genre")
}

/*
TestStoreFailure_BooksAndWrites covers a failing book query on both joined
pages and a failing insert or update.
*/
func TestStoreFailure_BooksAndWrites(t *testing.T) {
	store := memstore.New()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	views := &recordingRenderer{}

	router := chi.NewRouter()
	router.Route("/catalog/books", genre.NewHandler(genre.NewService(store.Genres(), brokenBooks{}, logger), respond.New(views)).RegisterRoutes)
	router.Route("/catalog/writes", genre.NewHandler(genre.NewService(failingWrites{store.Genres()}, store.Books(), logger), respond.New(views)).RegisterRoutes)
	f := &fixture{store: store, views: views, router: router}

	poetry := f.seed(t, "Poetry")

	for _, path := range []string{"/catalog/books/genre/" + poetry.ID, "/catalog/books/genre/" + poetry.ID + "/delete"} {
		t.Run(path, func(t *testing.T) {
			recorder := f.get(path)

			assert.Equal(t, http.StatusInternalServerError, recorder.Code)
			assert.Equal(t, respond.ErrorView, f.views.name)
		})
	}

	for _, path := range []string{"/catalog/writes/genre/create", "/catalog/writes/genre/" + poetry.ID + "/update"} {
		t.Run(path, func(t *testing.T) {
			recorder := f.post(path, url.Values{"name": {"Drama"}})

			assert.Equal(t, http.StatusInternalServerError, recorder.Code)
			assert.Empty(t, recorder.Header().Get("Location"))
		})
	}

	remaining := f.genres(t)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Poetry", remaining[0].Name)
}
