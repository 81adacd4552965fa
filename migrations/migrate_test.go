// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"bytes"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first query fails
	err = Migrate(db, "postgres", logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite", logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.ErrorIs(t, Migrate(db, "mysql", logger.Nop()), ErrUnsupportedDriver)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_test?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, "sqlite", logger.Nop()))
	// second run is a no-op
	require.NoError(t, Migrate(db, "sqlite", logger.Nop()))

	version, err := goose.GetDBVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"users", "blog_posts", "comments"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_SQLiteCascade(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_cascade_test?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, "sqlite", logger.Nop()))

	_, err = db.Exec("INSERT INTO users (name, email, password) VALUES ('a', 'a@b.co', 'x')")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO blog_posts (author_id, title, subtitle, date, body, img_url) VALUES (1, 't', 's', 'd', 'b', 'u')")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO comments (author_id, post_id, text) VALUES (1, 1, 'c')")
	require.NoError(t, err)

	_, err = db.Exec("DELETE FROM blog_posts WHERE id = 1")
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&n))
	assert.Zero(t, n)

	// foreign keys are enforced
	_, err = db.Exec("INSERT INTO comments (author_id, post_id, text) VALUES (1, 42, 'c')")
	assert.Error(t, err)
}

func TestMigrate_LogsThroughLogger(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_log_test?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	require.NoError(t, Migrate(db, "sqlite", log))

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, "00001_init.sql")
	assert.Contains(t, out, `"func":"migrations.Migrate"`)
}
