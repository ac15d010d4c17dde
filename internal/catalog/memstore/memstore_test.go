// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/catalog/author"
	"github.com/taibuivan/locallibrary/internal/catalog/book"
	"github.com/taibuivan/locallibrary/internal/catalog/genre"
	"github.com/taibuivan/locallibrary/internal/catalog/memstore"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

/*
TestAuthors_CRUD walks an author through create, update and delete.
*/
func TestAuthors_CRUD(t *testing.T) {
	ctx := context.Background()
	authors := memstore.New().Authors()

	id := uuid.New()
	require.NoError(t, authors.CreateAuthor(ctx, &author.Author{ID: id, FirstName: "Isaac", FamilyName: "Asimov"}))

	found, err := authors.FindAuthor(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Asimov", found.FamilyName)

	// Mutating the returned copy does not reach the store
	found.FamilyName = "Changed"
	again, _ := authors.FindAuthor(ctx, id)
	assert.Equal(t, "Asimov", again.FamilyName)

	require.NoError(t, authors.UpdateAuthor(ctx, &author.Author{ID: id, FirstName: "Ike", FamilyName: "Asimov"}))
	again, _ = authors.FindAuthor(ctx, id)
	assert.Equal(t, "Ike", again.FirstName)

	require.NoError(t, authors.DeleteAuthor(ctx, id))
	gone, err := authors.FindAuthor(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting twice is a no-op
	assert.NoError(t, authors.DeleteAuthor(ctx, id))
}

/*
TestAuthors_ListSorted orders by family name.
*/
func TestAuthors_ListSorted(t *testing.T) {
	ctx := context.Background()
	authors := memstore.New().Authors()

	for _, family := range []string{"Tolkien", "Austen", "Lem"} {
		require.NoError(t, authors.CreateAuthor(ctx, &author.Author{ID: uuid.New(), FirstName: "X", FamilyName: family}))
	}

	list, err := authors.ListAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Austen", list[0].FamilyName)
	assert.Equal(t, "Lem", list[1].FamilyName)
	assert.Equal(t, "Tolkien", list[2].FamilyName)
}

/*
TestUpdate_Missing reports ErrNoRows for unknown ids.
*/
func TestUpdate_Missing(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	err := store.Authors().UpdateAuthor(ctx, &author.Author{ID: uuid.New()})
	assert.ErrorIs(t, err, dberr.ErrNoRows)

	err = store.Genres().UpdateGenre(ctx, &genre.Genre{ID: uuid.New(), Name: "Poetry"})
	assert.ErrorIs(t, err, dberr.ErrNoRows)
}

/*
TestMalformedID fails like a uuid column would.
*/
func TestMalformedID(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	_, err := store.Authors().FindAuthor(ctx, "not-a-uuid")
	require.Error(t, err)
	assert.True(t, errors.Is(err, memstore.ErrMalformedID))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeInternal, ae.Code)

	_, err = store.Books().ListByGenre(ctx, "42")
	assert.ErrorIs(t, err, memstore.ErrMalformedID)
}

/*
TestGenres_FindByName matches the stored name exactly.
*/
func TestGenres_FindByName(t *testing.T) {
	ctx := context.Background()
	genres := memstore.New().Genres()

	id := uuid.New()
	require.NoError(t, genres.CreateGenre(ctx, &genre.Genre{ID: id, Name: "Fiction"}))

	found, err := genres.FindGenreByName(ctx, "Fiction")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, id, found.ID)

	missing, err := genres.FindGenreByName(ctx, "fiction")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

/*
TestBooks_ByReference lists books per author and genre.
*/
func TestBooks_ByReference(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	authorID, otherAuthor, genreID := uuid.New(), uuid.New(), uuid.New()
	store.PutBook(&book.Book{ID: uuid.New(), Title: "Solaris", Summary: "Ocean", ISBN: "1", AuthorID: authorID, GenreIDs: []string{genreID}})
	store.PutBook(&book.Book{ID: uuid.New(), Title: "Eden", Summary: "Planet", ISBN: "2", AuthorID: authorID})
	store.PutBook(&book.Book{ID: uuid.New(), Title: "Emma", ISBN: "3", AuthorID: otherAuthor, GenreIDs: []string{genreID}})

	books, err := store.Books().ListByAuthor(ctx, authorID)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Eden", books[0].Title)
	assert.Equal(t, "Solaris", books[1].Title)

	summaries, err := store.Books().ListSummariesByAuthor(ctx, authorID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Ocean", summaries[1].Summary)
	assert.Empty(t, summaries[1].ISBN)
	assert.Empty(t, summaries[1].AuthorID)

	byGenre, err := store.Books().ListByGenre(ctx, genreID)
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)

	none, err := store.Books().ListByAuthor(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
