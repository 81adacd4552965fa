// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the services wraps exactly one
// of them, so transports can map a category to a status with [errors.Is].
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrNameTaken          = fmt.Errorf("%w: name already taken", ErrConflict)
	ErrEmailInUse         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrTitleTaken         = fmt.Errorf("%w: title already taken", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuth)
	ErrUnauthenticated    = fmt.Errorf("%w: not logged in", ErrAuth)
	ErrNotOwner           = fmt.Errorf("%w: only the owner may do this", ErrForbidden)
	ErrPostNotFound       = fmt.Errorf("%w: post", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrSessionInvalid        = errors.New("session is invalid or expired")
)

// NameTakenError carries the rejected name so the form can say which one.
type NameTakenError struct {
	Name string
}

func (e *NameTakenError) Error() string {
	return e.Name + " is already taken."
}

func (e *NameTakenError) Unwrap() error {
	return ErrNameTaken
}

// ValidationError wraps the per-field messages of a rejected form.
type ValidationError struct {
	Fields error
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// Unwrap exposes both the category and the field errors.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Fields}
}
