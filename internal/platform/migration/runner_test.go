// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/locallibrary/internal/platform/migration"
)

/*
TestToPgx5DSN verifies the scheme rewrite required by golang-migrate.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/library", "pgx5://u:p@localhost:5432/library"},
		{"postgresql://localhost/library", "pgx5://localhost/library"},
		{"pgx5://localhost/library", "pgx5://localhost/library"},
		{"host=localhost dbname=library", "host=localhost dbname=library"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.in))
		})
	}
}
