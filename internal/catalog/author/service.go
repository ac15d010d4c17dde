package author

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/taibuivan/locallibrary/internal/catalog/book"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/join"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

// Validation messages of the author form.
const (
	msgFirstNameRequired     = "First Name must be specified"
	msgFirstNameAlphanumeric = "First name has non-alphanumeric characters."
	msgFamilyNameRequired    = "Family name must be specified."
	msgFamilyNameAlphanum    = "Family name has non-alphanumeric characters."
	msgInvalidDateOfBirth    = "Invalid date of birth"
	msgInvalidDateOfDeath    = "Invalid date of death"
)

type Service struct {
	repo   Repository
	books  BookRepository
	logger *slog.Logger
}

func NewService(repo Repository, books BookRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		books:  books,
		logger: logger,
	}
}

// Deletion is the outcome of a delete request.
type Deletion struct {
	// Author is nil when the id matched nothing.
	Author *Author
	// Books still referencing the author; non-empty means the delete was refused.
	Books   []*book.Book
	Deleted bool
}

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

// GetAuthorDetail loads the author and the title/summary of their books.
func (service *Service) GetAuthorDetail(context context.Context, id string) (*Author, []*book.Book, error) {
	author, books, err := service.withBooks(context, id, service.books.ListSummariesByAuthor)
	if err != nil {
		return nil, nil, err
	}

	if author == nil {
		return nil, nil, apperr.NotFound("Author")
	}
	return author, books, nil
}

func (service *Service) GetAuthor(context context.Context, id string) (*Author, error) {
	author, err := service.repo.FindAuthor(context, id)
	if err != nil {
		return nil, err
	}

	if author == nil {
		return nil, apperr.NotFound("Author")
	}
	return author, nil
}

// GetAuthorDeletion loads what the delete confirmation shows.
// A missing author is returned as nil without error.
func (service *Service) GetAuthorDeletion(context context.Context, id string) (*Author, []*book.Book, error) {
	return service.withBooks(context, id, service.books.ListByAuthor)
}

// CreateAuthor validates the submitted form and inserts the author.
//
// The sanitized candidate is returned even when validation fails, so the
// form can be redisplayed; the store is not touched in that case.
func (service *Service) CreateAuthor(context context.Context, form url.Values) (*Author, error) {
	candidate, err := sanitize(form)
	if err != nil {
		return candidate, err
	}

	candidate.ID = uuid.New()
	if err := service.repo.CreateAuthor(context, candidate); err != nil {
		return nil, err
	}

	service.logger.Info("author_created",
		slog.String("author_id", candidate.ID),
		slog.String("name", candidate.Name()),
	)
	return candidate, nil
}

// UpdateAuthor validates the submitted form and replaces every field of
// the author keyed by id.
func (service *Service) UpdateAuthor(context context.Context, id string, form url.Values) (*Author, error) {
	candidate, err := sanitize(form)
	candidate.ID = id
	if err != nil {
		return candidate, err
	}

	if err := service.repo.UpdateAuthor(context, candidate); err != nil {
		if errors.Is(err, dberr.ErrNoRows) {
			return nil, apperr.NotFound("Author")
		}
		return nil, err
	}

	service.logger.Info("author_updated", slog.String("author_id", id))
	return candidate, nil
}

// DeleteAuthor removes the author unless a book still references them.
//
// The dependent check and the delete are separate store operations.
func (service *Service) DeleteAuthor(context context.Context, id string) (*Deletion, error) {
	author, books, err := service.withBooks(context, id, service.books.ListByAuthor)
	if err != nil {
		return nil, err
	}

	if len(books) > 0 {
		service.logger.Info("author_delete_refused",
			slog.String("author_id", id),
			slog.Int("books", len(books)),
		)
		return &Deletion{Author: author, Books: books}, nil
	}

	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return nil, err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))
	return &Deletion{Author: author, Deleted: true}, nil
}

// withBooks fetches the author and their books concurrently.
func (service *Service) withBooks(
	ctx context.Context,
	id string,
	listBooks func(context.Context, string) ([]*book.Book, error),
) (*Author, []*book.Book, error) {
	return join.Both(ctx,
		func(ctx context.Context) (*Author, error) { return service.repo.FindAuthor(ctx, id) },
		func(ctx context.Context) ([]*book.Book, error) { return listBooks(ctx, id) },
	)
}

// sanitize runs the author form rules and builds the candidate from the
// sanitized values.
func sanitize(form url.Values) (*Author, error) {
	validator := validate.New(form)

	firstName := validator.Field(FieldFirstName).Trim().Required(msgFirstNameRequired).
		Escape().Alphanumeric(msgFirstNameAlphanumeric)
	familyName := validator.Field(FieldFamilyName).Trim().Required(msgFamilyNameRequired).
		Escape().Alphanumeric(msgFamilyNameAlphanum)
	born := validator.Field(FieldDateOfBirth).Optional().ISODate(msgInvalidDateOfBirth)
	died := validator.Field(FieldDateOfDeath).Optional().ISODate(msgInvalidDateOfDeath)

	candidate := &Author{
		FirstName:   firstName.String(),
		FamilyName:  familyName.String(),
		DateOfBirth: born.Date(),
		DateOfDeath: died.Date(),
	}
	return candidate, validator.Err()
}
