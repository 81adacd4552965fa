// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the blog: accounts and
// credentials, sessions, and the owner-only post workflow with comments.
//
// Services accept plain form models, validate them, and speak in the error
// categories of errors.go. They know nothing about HTTP.
package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Register validates form, hashes the password and creates the account.
	Register(ctx context.Context, form models.RegisterForm) (models.User, error)

	// Login returns the account matching the credentials or
	// ErrInvalidCredentials.
	Login(ctx context.Context, form models.LoginForm) (models.User, error)

	// CurrentUser resolves a session token into its user. It returns
	// ErrSessionInvalid when the token is empty, invalid or expired, or its
	// user no longer exists. Other errors mean the lookup itself failed.
	CurrentUser(ctx context.Context, token string) (models.User, error)
}

// SessionService binds an opaque token to a user id.
type SessionService interface {
	Start(ctx context.Context, userID int64) (string, error)

	// Resolve returns ErrSessionInvalid for unknown, expired or forged
	// tokens.
	Resolve(ctx context.Context, token string) (int64, error)

	// End forgets token. It is idempotent.
	End(ctx context.Context, token string) error
}

type BlogService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.PostWithComments, error)

	// AddComment stores a comment by authorID; authorID 0 means the caller
	// is anonymous.
	AddComment(ctx context.Context, postID, authorID int64, form models.CommentForm) (models.Comment, error)

	// CreatePost, EditPost and DeletePost are reserved to the owner.
	CreatePost(ctx context.Context, actorID int64, form models.PostForm) (models.Post, error)
	EditPost(ctx context.Context, actorID, id int64, form models.PostForm) (models.Post, error)
	DeletePost(ctx context.Context, actorID, id int64) error

	// IsOwner reports whether userID may manage posts.
	IsOwner(userID int64) bool
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionInfo
}
