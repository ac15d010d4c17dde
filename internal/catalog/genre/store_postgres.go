package genre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.CatalogGenre.Columns(), ", "), schema.CatalogGenre.Table, schema.CatalogGenre.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}

	genres, err := pgx.CollectRows(rows, scanGenre)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_genre")
	}
	return genres, nil
}

func (repository *PostgresRepository) FindGenre(context context.Context, id string) (*Genre, error) {
	return repository.findOne(context, "find_genre", schema.CatalogGenre.ID, id)
}

func (repository *PostgresRepository) FindGenreByName(context context.Context, name string) (*Genre, error) {
	return repository.findOne(context, "find_genre_by_name", schema.CatalogGenre.Name, name)
}

func (repository *PostgresRepository) CreateGenre(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, NOW(), NOW())`,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID, schema.CatalogGenre.Name,
		schema.CatalogGenre.CreatedAt, schema.CatalogGenre.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query, g.ID, g.Name)
	return dberr.Wrap(err, "create_genre")
}

func (repository *PostgresRepository) UpdateGenre(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.CatalogGenre.Table, schema.CatalogGenre.Name, schema.CatalogGenre.UpdatedAt, schema.CatalogGenre.ID,
	)

	cmd, err := repository.db.Exec(context, query, g.ID, g.Name)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNoRows
	}
	return nil
}

func (repository *PostgresRepository) DeleteGenre(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogGenre.Table, schema.CatalogGenre.ID)

	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_genre")
}

// findOne returns the first genre whose column equals value, or nil.
func (repository *PostgresRepository) findOne(context context.Context, action, column, value string) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`,
		strings.Join(schema.CatalogGenre.Columns(), ", "), schema.CatalogGenre.Table, column, schema.CatalogGenre.ID,
	)

	rows, err := repository.db.Query(context, query, value)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	genre, err := pgx.CollectOneRow(rows, scanGenre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return genre, nil
}

func scanGenre(row pgx.CollectableRow) (*Genre, error) {
	g := &Genre{}
	return g, row.Scan(&g.ID, &g.Name)
}
