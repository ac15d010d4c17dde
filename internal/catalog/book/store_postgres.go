package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/pkg/slice"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListSummariesByAuthor(context context.Context, authorID string) ([]*Book, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.CatalogBook.ID, schema.CatalogBook.Title, schema.CatalogBook.Summary,
		schema.CatalogBook.Table, schema.CatalogBook.AuthorID, schema.CatalogBook.Title,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_summaries_by_author")
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Book, error) {
		b := &Book{AuthorID: authorID}
		return b, row.Scan(&b.ID, &b.Title, &b.Summary)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_book_summary")
	}
	return books, nil
}

func (repository *PostgresRepository) ListByAuthor(context context.Context, authorID string) ([]*Book, error) {
	return repository.list(context, "list_books_by_author", fmt.Sprintf("b.%s = $1", schema.CatalogBook.AuthorID), authorID)
}

func (repository *PostgresRepository) ListByGenre(context context.Context, genreID string) ([]*Book, error) {
	filter := fmt.Sprintf("EXISTS (SELECT 1 FROM %s f WHERE f.%s = b.%s AND f.%s = $1)",
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.CatalogBook.ID, schema.BookGenre.GenreID,
	)
	return repository.list(context, "list_books_by_genre", filter, genreID)
}

// list returns full books, genre ids aggregated in the same round-trip.
func (repository *PostgresRepository) list(context context.Context, action, filter string, arg string) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       COALESCE((SELECT array_agg(bg.%s::text) FROM %s bg WHERE bg.%s = b.%s), '{}')
		FROM %s b
		WHERE %s
		ORDER BY b.%s ASC
	`,
		strings.Join(slice.Map(schema.CatalogBook.Columns(), func(column string) string { return "b." + column }), ", "),
		schema.BookGenre.GenreID, schema.BookGenre.Table, schema.BookGenre.BookID, schema.CatalogBook.ID,
		schema.CatalogBook.Table,
		filter,
		schema.CatalogBook.Title,
	)

	rows, err := repository.db.Query(context, query, arg)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Book, error) {
		b := &Book{}
		return b, row.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.GenreIDs)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_book")
	}
	return books, nil
}
