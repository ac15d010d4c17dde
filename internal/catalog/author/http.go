package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/catalog/book"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
)

// Page templates rendered by the author handler.
const (
	ViewList   = "author_list"
	ViewDetail = "author_detail"
	ViewForm   = "author_form"
	ViewDelete = "author_delete"
)

// ListPage is the data bag of [ViewList].
type ListPage struct {
	Title   string
	Authors []*Author
}

// DetailPage is the data bag of [ViewDetail].
type DetailPage struct {
	Title  string
	Author *Author
	Books  []*book.Book
}

// FormPage is the data bag of [ViewForm]. Author is never nil.
type FormPage struct {
	Title  string
	Author *Author
	Errors []apperr.FieldError
}

// DeletePage is the data bag of [ViewDelete].
type DeletePage struct {
	Title  string
	Author *Author
	Books  []*book.Book
}

type Handler struct {
	service   *Service
	responder *respond.Responder
}

func NewHandler(service *Service, responder *respond.Responder) *Handler {
	return &Handler{service: service, responder: responder}
}

// RegisterRoutes mounts the author pages on a router rooted at /catalog.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/authors", handler.listAuthors)

	router.Route("/author", func(authorRoute chi.Router) {
		authorRoute.Get("/create", handler.createAuthorForm)
		authorRoute.Post("/create", handler.createAuthor)

		authorRoute.Get("/{id}", handler.getAuthor)
		authorRoute.Get("/{id}/delete", handler.deleteAuthorForm)
		authorRoute.Post("/{id}/delete", handler.deleteAuthor)
		authorRoute.Get("/{id}/update", handler.updateAuthorForm)
		authorRoute.Post("/{id}/update", handler.updateAuthor)
	})
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.Render(writer, request, ViewList, ListPage{Title: "Author List", Authors: authors})
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	author, books, err := handler.service.GetAuthorDetail(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.Render(writer, request, ViewDetail, DetailPage{Title: "Author Detail", Author: author, Books: books})
}

func (handler *Handler) createAuthorForm(writer http.ResponseWriter, request *http.Request) {
	handler.responder.Render(writer, request, ViewForm, FormPage{Title: "Create Author", Author: &Author{}})
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.Form(writer, request)
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	author, err := handler.service.CreateAuthor(request.Context(), form)
	if handler.redisplay(writer, request, "Create Author", author, err) {
		return
	}

	handler.responder.Redirect(writer, request, author.URL())
}

func (handler *Handler) updateAuthorForm(writer http.ResponseWriter, request *http.Request) {
	author, err := handler.service.GetAuthor(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	handler.responder.Render(writer, request, ViewForm, FormPage{Title: "Update Author", Author: author})
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.Form(writer, request)
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	author, err := handler.service.UpdateAuthor(request.Context(), requestutil.ID(request, "id"), form)
	if handler.redisplay(writer, request, "Update Author", author, err) {
		return
	}

	handler.responder.Redirect(writer, request, author.URL())
}

func (handler *Handler) deleteAuthorForm(writer http.ResponseWriter, request *http.Request) {
	author, books, err := handler.service.GetAuthorDeletion(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	// Already gone.
	if author == nil {
		handler.responder.Redirect(writer, request, constants.AuthorListPath)
		return
	}

	handler.responder.Render(writer, request, ViewDelete, DeletePage{Title: "Delete Author", Author: author, Books: books})
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.Form(writer, request)
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	authorID := form.Get(FieldAuthorID)
	if authorID == "" {
		authorID = requestutil.ID(request, "id")
	}

	deletion, err := handler.service.DeleteAuthor(request.Context(), authorID)
	if err != nil {
		handler.responder.Error(writer, request, err)
		return
	}

	if !deletion.Deleted {
		handler.responder.Render(writer, request, ViewDelete, DeletePage{Title: "Delete Author", Author: deletion.Author, Books: deletion.Books})
		return
	}

	handler.responder.Redirect(writer, request, constants.AuthorListPath)
}

// redisplay handles a failed create/update: validation errors re-render the
// form, anything else goes to the error page. It reports whether a response
// was written.
func (handler *Handler) redisplay(writer http.ResponseWriter, request *http.Request, title string, candidate *Author, err error) bool {
	if err == nil {
		return false
	}

	if details, ok := apperr.Validation(err); ok {
		handler.responder.Render(writer, request, ViewForm, FormPage{Title: title, Author: candidate, Errors: details})
		return true
	}

	handler.responder.Error(writer, request, err)
	return true
}
