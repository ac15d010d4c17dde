package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/catalog/book"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
)

const (
	ViewList   = "genre_list"
	ViewDetail = "genre_detail"
	ViewForm   = "genre_form"
	ViewDelete = "genre_delete"
)

type ListPage struct {
	Title  string
	Genres []*Genre
}

type DetailPage struct {
	Title string
	Genre *Genre
	Books []*book.Book
}

// FormPage is the data bag of [ViewForm]. Genre is never nil.
type FormPage struct {
	Title  string
	Genre  *Genre
	Errors []apperr.FieldError
}

type DeletePage struct {
	Title string
	Genre *Genre
	Books []*book.Book
}

type Handler struct {
	service   *Service
	responder *respond.Responder
}

func NewHandler(service *Service, responder *respond.Responder) *Handler {
	return &Handler{service: service, responder: responder}
}

// RegisterRoutes mounts the genre pages on a router rooted at /catalog.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/genres", handler.listGenres)

	router.Route("/genre", func(genreRoute chi.Router) {
		genreRoute.Get("/create", handler.createGenreForm)
		genreRoute.Post("/create", handler.createGenre)

		genreRoute.Get("/{id}", handler.getGenre)
		genreRoute.Get("/{id}/delete", handler.deleteGenreForm)
		genreRoute.Post("/{id}/delete", handler.deleteGenre)
		genreRoute.Get("/{id}/update", handler.updateGenreForm)
		genreRoute.Post("/{id}/update", handler.updateGenre)
	})
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.Render(writer, request, ViewList, ListPage{Title: "Genre List", Genres: genres})
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	genre, books, err := handler.service.GetGenreDetail(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.Render(writer, request, ViewDetail, DetailPage{Title: "Genre Detail", Genre: genre, Books: books})
}

func (handler *Handler) createGenreForm(writer http.ResponseWriter, request *http.Request) {
	handler.responder.Render(writer, request, ViewForm, FormPage{Title: "Create Genre", Genre: &Genre{}})
}

func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.Form(writer, request)
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	genre, err := handler.service.CreateGenre(request.Context(), form)
	if handler.redisplay(writer, request, "Create Genre", genre, err) {
		return
	}

	handler.responder.Redirect(writer, request, genre.URL())
}

func (handler *Handler) updateGenreForm(writer http.ResponseWriter, request *http.Request) {
	genre, err := handler.service.GetGenre(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.Render(writer, request, ViewForm, FormPage{Title: "Update Genre", Genre: genre})
}

func (handler *Handler) updateGenre(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.Form(writer, request)
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	genre, err := handler.service.UpdateGenre(request.Context(), requestutil.ID(request, "id"), form)
	if handler.redisplay(writer, request, "Update Genre", genre, err) {
		return
	}

	handler.responder.Redirect(writer, request, genre.URL())
}

func (handler *Handler) deleteGenreForm(writer http.ResponseWriter, request *http.Request) {
	genre, books, err := handler.service.GetGenreDeletion(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	if genre == nil {
		handler.responder.Redirect(writer, request, constants.GenreListPath)
		return
	}

	handler.responder.Render(writer, request, ViewDelete, DeletePage{Title: "Delete Genre", Genre: genre, Books: books})
}

// deleteGenre always deletes the genre named by the path.
func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteGenre(request.Context(), requestutil.ID(request, "id")); err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.Redirect(writer, request, constants.GenreListPath)
}

func (handler *Handler) redisplay(writer http.ResponseWriter, request *http.Request, title string, candidate *Genre, err error) bool {
	if err == nil {
		return false
	}

	if details, ok := apperr.Validation(err); ok {
		handler.responder.Render(writer, request, ViewForm, FormPage{Title: title, Genre: candidate, Errors: details})
		return true
	}

	handler.responder.Error(writer, request, err)
	return true
}
