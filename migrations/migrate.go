// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the blog and applies it with goose.
//
// Each supported driver has its own directory of numbered SQL files; the
// table and constraint names are identical across them.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned for a driver without embedded migrations.
var ErrUnsupportedDriver = errors.New("no migrations for driver")

// gooseDialects maps a storage driver name to its goose dialect.
var gooseDialects = map[string]string{
	"sqlite":   "sqlite3",
	"postgres": "pgx",
}

// gooseLogger routes goose output into the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "migrations.Migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("func", "migrations.Migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies every pending migration for driver ("sqlite" or
// "postgres") to db, reporting progress through log.
func Migrate(db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w %q", ErrUnsupportedDriver, driver)
	}

	dir, err := fs.Sub(embedMigrations, driver)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", driver, err)
	}

	if log == nil {
		log = logger.Nop()
	}
	goose.SetLogger(gooseLogger{log: log})

	goose.SetBaseFS(dir)
	defer goose.SetBaseFS(nil)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
