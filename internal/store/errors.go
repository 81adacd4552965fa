// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNameAlreadyExists is returned when a user insert violates the
	// uniqueness of users.name.
	ErrNameAlreadyExists = errors.New("user name already exists")

	// ErrEmailAlreadyExists is returned when a user insert violates the
	// uniqueness of users.email.
	ErrEmailAlreadyExists = errors.New("user email already exists")

	// ErrTitleAlreadyExists is returned when a post insert or update violates
	// the uniqueness of blog_posts.title.
	ErrTitleAlreadyExists = errors.New("post title already exists")

	// ErrUserNotFound is returned when a lookup matches no user or a
	// referenced author does not exist.
	ErrUserNotFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a lookup, update or delete targets a
	// post id that does not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrSessionNotFound is returned when a session token is unknown or has
	// expired.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// uniqueViolationErrors maps a "<table>.<column>" unique key to its sentinel.
var uniqueViolationErrors = map[string]error{
	"users.name":       ErrNameAlreadyExists,
	"users.email":      ErrEmailAlreadyExists,
	"blog_posts.title": ErrTitleAlreadyExists,
}
