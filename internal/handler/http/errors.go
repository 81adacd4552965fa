// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned when a {id} path segment does not fit int64.
	ErrInvalidID = errors.New("invalid id in path")

	// ErrMalformedFlash is returned when the flash cookie cannot be decoded.
	ErrMalformedFlash = errors.New("malformed flash cookie")
)

// User-facing messages.
const (
	msgInvalidCredentials = "Invalid email or password, please try again."
	msgEmailInUse         = "You've already signed up with that email, log in instead!"
	msgLoginToComment     = "You need to login or register to comment."
	msgLoginRequired      = "Please log in to access this page."
	msgTitleTaken         = "A post with this title already exists."
)
