// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the blog: users, posts and
// comments in a relational database (sqlite or postgres) and, optionally,
// server-side sessions in redis.
//
// Every repository speaks in the sentinel errors of errors.go; driver errors
// never leak upward unwrapped.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// Returns ErrNameAlreadyExists or ErrEmailAlreadyExists on a unique
	// violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID, FindUserByEmail and FindUserByName return
	// ErrUserNotFound when no row matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByName(ctx context.Context, name string) (models.User, error)

	// CountUsers returns the number of registered accounts.
	CountUsers(ctx context.Context) (int64, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	// CreatePost inserts post and returns it with the assigned ID.
	// Returns ErrTitleAlreadyExists or ErrUserNotFound (unknown author).
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// ListPosts returns every post with its author, ordered by id.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// FindPostByID returns the post with its author or ErrPostNotFound.
	FindPostByID(ctx context.Context, id int64) (models.Post, error)

	// UpdatePost overwrites title, subtitle, body and image URL of post.ID.
	// Returns ErrPostNotFound or ErrTitleAlreadyExists.
	UpdatePost(ctx context.Context, post models.Post) error

	// DeletePost removes the post and its comments in one transaction.
	// Returns ErrPostNotFound when nothing was deleted.
	DeletePost(ctx context.Context, id int64) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	// CreateComment inserts comment and returns it with the assigned ID.
	// Returns ErrPostNotFound or ErrUserNotFound for dangling references.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// ListCommentsByPost returns the comments of a post with their authors,
	// ordered by id.
	ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
}

// SessionStorage keeps server-side sessions: an opaque token bound to a
// user id for a limited time.
type SessionStorage interface {
	SaveSession(ctx context.Context, token string, userID int64, ttl time.Duration) error

	// GetSession returns ErrSessionNotFound for unknown or expired tokens.
	GetSession(ctx context.Context, token string) (int64, error)

	// DeleteSession is a no-op for unknown tokens.
	DeleteSession(ctx context.Context, token string) error
}

// Pinger reports whether a storage backend is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
