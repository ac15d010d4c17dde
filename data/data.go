// Package data embeds the SQL migrations shipped with the binary.
package data

import "embed"

// MigrationsDir is the directory of [Migrations] holding the .sql files.
const MigrationsDir = "migrations"

// Migrations holds the golang-migrate up/down files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
