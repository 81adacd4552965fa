// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for request-scoped identity in context, password hashing,
// signed session tokens, JSON responses and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the session middleware stores the
// authenticated [models.User] of the current request.
var UserCtxKey = contextKey("currentUser")

// WithUser returns a copy of ctx bound to user. Binding an anonymous (zero)
// user leaves ctx unchanged.
func WithUser(ctx context.Context, user models.User) context.Context {
	if user.IsAnonymous() {
		return ctx
	}
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext returns the user bound to ctx by [WithUser].
//
// ok is false for anonymous visitors; the returned user is then the zero
// value.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	if !ok || user.IsAnonymous() {
		return models.User{}, false
	}
	return user, true
}

// UserIDFromContext is a shorthand for the id of [UserFromContext]; it is 0
// for anonymous visitors.
func UserIDFromContext(ctx context.Context) int64 {
	user, _ := UserFromContext(ctx)
	return user.ID
}
