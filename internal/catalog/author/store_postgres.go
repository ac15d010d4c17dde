package author

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/pkg/pointer"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.CatalogAuthor.Columns(), ", "), schema.CatalogAuthor.Table, schema.CatalogAuthor.FamilyName,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}

	authors, err := pgx.CollectRows(rows, scanAuthor)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_author")
	}
	return authors, nil
}

func (repository *PostgresRepository) FindAuthor(context context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CatalogAuthor.Columns(), ", "), schema.CatalogAuthor.Table, schema.CatalogAuthor.ID,
	)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "find_author")
	}

	author, err := pgx.CollectOneRow(rows, scanAuthor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_author")
	}
	return author, nil
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID, schema.CatalogAuthor.FirstName,
		schema.CatalogAuthor.FamilyName, schema.CatalogAuthor.DateOfBirth, schema.CatalogAuthor.DateOfDeath,
		schema.CatalogAuthor.CreatedAt, schema.CatalogAuthor.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query, a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
	`,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.FirstName, schema.CatalogAuthor.FamilyName,
		schema.CatalogAuthor.DateOfBirth, schema.CatalogAuthor.DateOfDeath, schema.CatalogAuthor.UpdatedAt,
		schema.CatalogAuthor.ID,
	)

	cmd, err := repository.db.Exec(context, query, a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNoRows
	}
	return nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogAuthor.Table, schema.CatalogAuthor.ID)

	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_author")
}

func scanAuthor(row pgx.CollectableRow) (*Author, error) {
	a := &Author{}
	var born, died *time.Time
	if err := row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &born, &died); err != nil {
		return nil, err
	}
	a.DateOfBirth = utcDate(born)
	a.DateOfDeath = utcDate(died)
	return a, nil
}

// utcDate pins a DATE column to UTC midnight so it round-trips the form.
func utcDate(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	year, month, day := date.Date()
	return pointer.To(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}
