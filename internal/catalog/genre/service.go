package genre

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

const (
	msgNameRequiredOnCreate = "Genre name required"
	msgNameRequiredOnUpdate = "Name cannot be empty"
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

func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

// GetGenreDetail loads the genre and every book filed under it.
func (service *Service) GetGenreDetail(context context.Context, id string) (*Genre, []*book.Book, error) {
	genre, books, err := service.withBooks(context, id)
	if err != nil {
		return nil, nil, err
	}

	if genre == nil {
		return nil, nil, apperr.NotFound("Genre")
	}
	return genre, books, nil
}

func (service *Service) GetGenre(context context.Context, id string) (*Genre, error) {
	genre, err := service.repo.FindGenre(context, id)
	if err != nil {
		return nil, err
	}

	if genre == nil {
		return nil, apperr.NotFound("Genre")
	}
	return genre, nil
}

// GetGenreDeletion loads what the delete confirmation shows.
// A missing genre is returned as nil without error.
func (service *Service) GetGenreDeletion(context context.Context, id string) (*Genre, []*book.Book, error) {
	return service.withBooks(context, id)
}

// CreateGenre validates the submitted form and inserts the genre, unless a
// genre with the same sanitized name exists already. In that case the
// existing genre is returned and nothing is written.
//
// The lookup and the insert are separate store operations; two concurrent
// submissions of a new name can both insert.
func (service *Service) CreateGenre(context context.Context, form url.Values) (*Genre, error) {
	candidate, err := sanitize(form, msgNameRequiredOnCreate)
	if err != nil {
		return candidate, err
	}

	existing, err := service.repo.FindGenreByName(context, candidate.Name)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		service.logger.Info("genre_create_deduplicated",
			slog.String("genre_id", existing.ID),
			slog.String("name", existing.Name),
		)
		return existing, nil
	}

	candidate.ID = uuid.New()
	if err := service.repo.CreateGenre(context, candidate); err != nil {
		return nil, err
	}

	service.logger.Info("genre_created",
		slog.String("genre_id", candidate.ID),
		slog.String("name", candidate.Name),
	)
	return candidate, nil
}

// UpdateGenre validates the submitted form and renames the genre keyed by id.
func (service *Service) UpdateGenre(context context.Context, id string, form url.Values) (*Genre, error) {
	candidate, err := sanitize(form, msgNameRequiredOnUpdate)
	candidate.ID = id
	if err != nil {
		return candidate, err
	}

	if err := service.repo.UpdateGenre(context, candidate); err != nil {
		if errors.Is(err, dberr.ErrNoRows) {
			return nil, apperr.NotFound("Genre")
		}
		return nil, err
	}

	service.logger.Info("genre_updated", slog.String("genre_id", id))
	return candidate, nil
}

// DeleteGenre removes the genre. Books filed under it are left as they are.
func (service *Service) DeleteGenre(context context.Context, id string) error {
	if err := service.repo.DeleteGenre(context, id); err != nil {
		return err
	}

	service.logger.Warn("genre_deleted", slog.String("genre_id", id))
	return nil
}

func (service *Service) withBooks(ctx context.Context, id string) (*Genre, []*book.Book, error) {
	return join.Both(ctx,
		func(ctx context.Context) (*Genre, error) { return service.repo.FindGenre(ctx, id) },
		func(ctx context.Context) ([]*book.Book, error) { return service.books.ListByGenre(ctx, id) },
	)
}

func sanitize(form url.Values, requiredMessage string) (*Genre, error) {
	validator := validate.New(form)
	name := validator.Field(FieldName).Trim().Required(requiredMessage).Escape()

	return &Genre{Name: name.String()}, validator.Err()
}
