// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded goose migrations of the hope-garden
// schema, one directory per SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Dialects accepted by Migrate.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

var (
	errNilDB           = errors.New("db is nil")
	errUnknownDialect  = errors.New("unknown migration dialect")
	dialectDirectories = map[string]struct {
		dir     string
		dialect goose.Dialect
	}{
		DialectSQLite:   {dir: "sqlite", dialect: goose.DialectSQLite3},
		DialectPostgres: {dir: "postgres", dialect: goose.DialectPostgres},
	}
)

// Migrate brings the schema of db up to the latest version. It is safe to
// call on every startup: applied versions are skipped.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	d, ok := dialectDirectories[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", errUnknownDialect, dialect)
	}

	migrationsFS, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", d.dir, err)
	}

	provider, err := goose.NewProvider(d.dialect, db, migrationsFS)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
