package author

import (
	"context"

	"github.com/taibuivan/locallibrary/internal/catalog/book"
)

// Repository is the author collection of the document store.
type Repository interface {
	// ListAuthors returns every author sorted by family name ascending.
	ListAuthors(context context.Context) ([]*Author, error)
	// FindAuthor returns nil without error when no author has the id.
	FindAuthor(context context.Context, id string) (*Author, error)
	CreateAuthor(context context.Context, a *Author) error
	// UpdateAuthor replaces every field of the author with a.ID.
	// It returns dberr.ErrNoRows when nothing matched.
	UpdateAuthor(context context.Context, a *Author) error
	// DeleteAuthor removes the author; a missing id is not an error.
	DeleteAuthor(context context.Context, id string) error
}

// BookRepository is the part of the book collection authors depend on.
type BookRepository interface {
	ListSummariesByAuthor(context context.Context, authorID string) ([]*book.Book, error)
	ListByAuthor(context context.Context, authorID string) ([]*book.Book, error)
}
