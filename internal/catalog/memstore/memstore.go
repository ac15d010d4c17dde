// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memstore is an in-process implementation of the catalog repositories.

It backs the "memory" store driver and the handler tests. Records are copied on
the way in and out, so callers never share memory with the store. Malformed
identifiers fail the same way the PostgreSQL uuid columns do: as a store error,
not as a missing record.

# Concurrency

[Store] is safe for concurrent use. Each method is atomic on its own; nothing
spans two calls.
*/
package memstore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/taibuivan/locallibrary/internal/catalog/author"
	"github.com/taibuivan/locallibrary/internal/catalog/book"
	"github.com/taibuivan/locallibrary/internal/catalog/genre"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/pkg/slice"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

// ErrMalformedID is the cause of the store error returned for ids that are
// not UUIDs.
var ErrMalformedID = errors.New("memstore: malformed identifier")

var (
	_ author.Repository     = (*AuthorRepository)(nil)
	_ author.BookRepository = (*BookRepository)(nil)
	_ genre.Repository      = (*GenreRepository)(nil)
	_ genre.BookRepository  = (*BookRepository)(nil)
	_ book.Repository       = (*BookRepository)(nil)
)

// Store holds authors, genres and books in maps keyed by id.
type Store struct {
	mu      sync.RWMutex
	authors map[string]author.Author
	genres  map[string]genre.Genre
	books   map[string]book.Book
}

// New creates an empty [Store].
func New() *Store {
	return &Store{
		authors: make(map[string]author.Author),
		genres:  make(map[string]genre.Genre),
		books:   make(map[string]book.Book),
	}
}

// Authors exposes the author collection.
func (s *Store) Authors() *AuthorRepository { return &AuthorRepository{store: s} }

// Genres exposes the genre collection.
func (s *Store) Genres() *GenreRepository { return &GenreRepository{store: s} }

// Books exposes the book collection.
func (s *Store) Books() *BookRepository { return &BookRepository{store: s} }

// PutBook inserts or replaces a book. There is no book workflow; books are
// seeded by tests and development fixtures.
func (s *Store) PutBook(b *book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[b.ID] = copyBook(b)
}

func checkID(id, action string) error {
	if uuid.Valid(id) {
		return nil
	}
	return dberr.Wrap(fmt.Errorf("%w %q", ErrMalformedID, id), action)
}

// # Authors

// AuthorRepository implements [author.Repository].
type AuthorRepository struct {
	store *Store
}

func (r *AuthorRepository) ListAuthors(_ context.Context) ([]*author.Author, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	authors := make([]*author.Author, 0, len(r.store.authors))
	for _, a := range r.store.authors {
		authors = append(authors, &a)
	}

	slices.SortStableFunc(authors, func(x, y *author.Author) int {
		return cmp.Or(cmp.Compare(x.FamilyName, y.FamilyName), cmp.Compare(x.ID, y.ID))
	})
	return authors, nil
}

func (r *AuthorRepository) FindAuthor(_ context.Context, id string) (*author.Author, error) {
	if err := checkID(id, "find_author"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AuthorRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	if err := checkID(a.ID, "create_author"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.authors[a.ID]; ok {
		return dberr.Wrap(fmt.Errorf("duplicate author id %q", a.ID), "create_author")
	}
	r.store.authors[a.ID] = *a
	return nil
}

func (r *AuthorRepository) UpdateAuthor(_ context.Context, a *author.Author) error {
	if err := checkID(a.ID, "update_author"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.authors[a.ID]; !ok {
		return dberr.ErrNoRows
	}
	r.store.authors[a.ID] = *a
	return nil
}

func (r *AuthorRepository) DeleteAuthor(_ context.Context, id string) error {
	if err := checkID(id, "delete_author"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.authors, id)
	return nil
}

// # Genres

// GenreRepository implements [genre.Repository].
type GenreRepository struct {
	store *Store
}

func (r *GenreRepository) ListGenres(_ context.Context) ([]*genre.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	genres := make([]*genre.Genre, 0, len(r.store.genres))
	for _, g := range r.store.genres {
		genres = append(genres, &g)
	}

	slices.SortStableFunc(genres, func(x, y *genre.Genre) int {
		return cmp.Or(cmp.Compare(x.Name, y.Name), cmp.Compare(x.ID, y.ID))
	})
	return genres, nil
}

func (r *GenreRepository) FindGenre(_ context.Context, id string) (*genre.Genre, error) {
	if err := checkID(id, "find_genre"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	g, ok := r.store.genres[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

// FindGenreByName returns the first genre, in id order, with exactly name.
func (r *GenreRepository) FindGenreByName(_ context.Context, name string) (*genre.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var found *genre.Genre
	for _, g := range r.store.genres {
		if g.Name == name && (found == nil || g.ID < found.ID) {
			found = &g
		}
	}
	return found, nil
}

func (r *GenreRepository) CreateGenre(_ context.Context, g *genre.Genre) error {
	if err := checkID(g.ID, "create_genre"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.genres[g.ID]; ok {
		return dberr.Wrap(fmt.Errorf("duplicate genre id %q", g.ID), "create_genre")
	}
	r.store.genres[g.ID] = *g
	return nil
}

func (r *GenreRepository) UpdateGenre(_ context.Context, g *genre.Genre) error {
	if err := checkID(g.ID, "update_genre"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.genres[g.ID]; !ok {
		return dberr.ErrNoRows
	}
	r.store.genres[g.ID] = *g
	return nil
}

func (r *GenreRepository) DeleteGenre(_ context.Context, id string) error {
	if err := checkID(id, "delete_genre"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.genres, id)
	return nil
}

// # Books

// BookRepository implements [book.Repository].
type BookRepository struct {
	store *Store
}

// ListSummariesByAuthor projects the author's books to id, title and summary.
func (r *BookRepository) ListSummariesByAuthor(context context.Context, authorID string) ([]*book.Book, error) {
	books, err := r.ListByAuthor(context, authorID)
	if err != nil {
		return nil, err
	}

	return slice.Map(books, func(b *book.Book) *book.Book {
		return &book.Book{ID: b.ID, Title: b.Title, Summary: b.Summary}
	}), nil
}

func (r *BookRepository) ListByAuthor(_ context.Context, authorID string) ([]*book.Book, error) {
	if err := checkID(authorID, "list_books_by_author"); err != nil {
		return nil, err
	}

	return r.filter(func(b *book.Book) bool { return b.AuthorID == authorID }), nil
}

func (r *BookRepository) ListByGenre(_ context.Context, genreID string) ([]*book.Book, error) {
	if err := checkID(genreID, "list_books_by_genre"); err != nil {
		return nil, err
	}

	return r.filter(func(b *book.Book) bool { return slices.Contains(b.GenreIDs, genreID) }), nil
}

// filter returns matching books sorted by title, never nil.
func (r *BookRepository) filter(keep func(*book.Book) bool) []*book.Book {
	r.store.mu.RLock()
	all := make([]*book.Book, 0, len(r.store.books))
	for _, b := range r.store.books {
		copied := copyBook(&b)
		all = append(all, &copied)
	}
	r.store.mu.RUnlock()

	matched := slice.Filter(all, keep)
	if matched == nil {
		return []*book.Book{}
	}

	slices.SortStableFunc(matched, func(x, y *book.Book) int {
		return cmp.Or(cmp.Compare(x.Title, y.Title), cmp.Compare(x.ID, y.ID))
	})
	return matched
}

func copyBook(b *book.Book) book.Book {
	copied := *b
	copied.GenreIDs = slices.Clone(b.GenreIDs)
	return copied
}
