// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the blog forms.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - FieldErrors: the ordered, per-field result of a failed validation,
//     ready to be shown next to the inputs of a re-rendered form.
//
// This package decouples validation logic from transport layers and storage,
// so services validate the same way regardless of who calls them.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input. It returns nil, a [FieldErrors]
	// describing every invalid field, or [ErrUnsupportedType].
	Validate(ctx context.Context, obj any) error
}
