package book

import "context"

// Repository reads books by the entities they reference.
//
// A lookup that matches nothing returns an empty slice, never an error.
type Repository interface {
	// ListSummariesByAuthor returns id, title and summary only.
	ListSummariesByAuthor(context context.Context, authorID string) ([]*Book, error)
	ListByAuthor(context context.Context, authorID string) ([]*Book, error)
	ListByGenre(context context.Context, genreID string) ([]*Book, error)
}
