// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

// ErrNoRows is returned by repositories when an update-by-id matched nothing.
// Services translate it into the entity's NOT_FOUND error.
var ErrNoRows = errors.New("dberr: no rows affected")

// Wrap classifies a database error and wraps it into an [apperr.AppError].
//
// Store failures become INTERNAL_ERROR: connectivity, constraint violations
// and malformed identifiers are not recovered from. The action and SQLSTATE
// are kept in the cause for the server log. An empty result is passed
// through as [ErrNoRows].
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNoRows) {
		return ErrNoRows
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperr.Internal(fmt.Errorf("%s: %s (%s): %w", action, Describe(pgErr.Code), pgErr.Code, err))
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// Describe gives a short name for the SQLSTATE classes the catalog runs into.
func Describe(code string) string {
	switch code {
	case pgerrcode.InvalidTextRepresentation:
		return "malformed identifier"
	case pgerrcode.UniqueViolation:
		return "unique violation"
	case pgerrcode.ForeignKeyViolation:
		return "foreign key violation"
	case pgerrcode.NotNullViolation:
		return "not null violation"
	}

	if pgerrcode.IsConnectionException(code) {
		return "connection exception"
	}
	return "query failed"
}
