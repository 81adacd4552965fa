// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered account.
//
// Name and Email are unique across all users. PasswordHash holds the salted
// PBKDF2 digest produced by [utils.HashPassword] and must never leave the
// server: the json tag keeps it out of responses and out of zerolog's Any
// output.
type User struct {
	// ID is the primary key assigned by the database on creation.
	ID int64 `json:"id"`

	// Name is the unique display name shown next to posts and comments.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the encoded salted hash, never the plaintext password.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAnonymous reports whether u is the zero value used for visitors
// without a session.
func (u User) IsAnonymous() bool {
	return u.ID == 0
}
