// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ViolationKind tells which integrity constraint a failed statement broke.
type ViolationKind int

const (
	// NoViolation means the error is not a constraint violation.
	NoViolation ViolationKind = iota

	// UniqueViolation means a UNIQUE constraint rejected the row.
	UniqueViolation

	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation
)

// Violation is the driver-independent description of a constraint error.
//
// Column is "<table>.<column>" for unique violations when the driver
// reports it, e.g. "users.email".
type Violation struct {
	Kind   ViolationKind
	Column string
}

// ErrorClassificator turns a driver error into a [Violation].
type ErrorClassificator interface {
	Classify(err error) Violation
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the *pgconn.PgError returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Unique constraints follow the "<table>_<column>_key" naming of the
// migrations, so the column is recovered from the constraint name.
func (c *PostgresErrorClassifier) Classify(err error) Violation {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return Violation{}
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		column := strings.TrimSuffix(strings.TrimPrefix(pgErr.ConstraintName, pgErr.TableName+"_"), "_key")
		return Violation{Kind: UniqueViolation, Column: pgErr.TableName + "." + column}
	case pgerrcode.ForeignKeyViolation:
		return Violation{Kind: ForeignKeyViolation}
	}

	return Violation{}
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// sqliteUniquePrefix starts the message of a unique violation, e.g.
// "UNIQUE constraint failed: users.email".
const sqliteUniquePrefix = "UNIQUE constraint failed: "

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) Violation {
	var liteErr sqlite3.Error
	if err == nil || !errors.As(err, &liteErr) {
		return Violation{}
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		column := ""
		if _, after, ok := strings.Cut(liteErr.Error(), sqliteUniquePrefix); ok {
			// composite keys list every column; the first is enough here
			column, _, _ = strings.Cut(after, ",")
		}
		return Violation{Kind: UniqueViolation, Column: strings.TrimSpace(column)}
	case sqlite3.ErrConstraintForeignKey:
		return Violation{Kind: ForeignKeyViolation}
	}

	return Violation{}
}

// writeError converts a failed INSERT/UPDATE into a repository sentinel.
// fkErr is returned for foreign key violations; anything unrecognised is
// wrapped in ErrExecutingQuery.
func (db *DB) writeError(err error, fkErr error) error {
	violation := db.errorClassificator.Classify(err)

	switch violation.Kind {
	case UniqueViolation:
		if sentinel, ok := uniqueViolationErrors[violation.Column]; ok {
			return sentinel
		}
	case ForeignKeyViolation:
		if fkErr != nil {
			return fkErr
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
