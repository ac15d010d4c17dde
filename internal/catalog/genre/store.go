package genre

import (
	"context"

	"github.com/taibuivan/locallibrary/internal/catalog/book"
)

// Repository is the genre collection of the document store.
type Repository interface {
	// ListGenres returns every genre sorted by name ascending.
	ListGenres(context context.Context) ([]*Genre, error)
	// FindGenre returns nil without error when no genre has the id.
	FindGenre(context context.Context, id string) (*Genre, error)
	// FindGenreByName matches the stored name exactly; nil when absent.
	FindGenreByName(context context.Context, name string) (*Genre, error)
	CreateGenre(context context.Context, g *Genre) error
	// UpdateGenre replaces the genre with g.ID.
	// It returns dberr.ErrNoRows when nothing matched.
	UpdateGenre(context context.Context, g *Genre) error
	// DeleteGenre removes the genre; a missing id is not an error.
	DeleteGenre(context context.Context, id string) error
}

// BookRepository is the part of the book collection genres depend on.
type BookRepository interface {
	ListByGenre(context context.Context, genreID string) ([]*book.Book, error)
}
