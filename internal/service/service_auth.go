// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the resolution of
// session tokens into users.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions resolves session tokens into user ids.
	sessions SessionService

	validator validators.Validator

	// passwordIterations is the PBKDF2 cost of newly created hashes.
	passwordIterations int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessions SessionService, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		sessions:           sessions,
		validator:          validator,
		passwordIterations: cfg.PasswordIterations,
		logger:             logger,
	}
}

// Register creates a new account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - a [ValidationError] for missing or malformed fields.
//   - a [NameTakenError] (wrapping ErrNameTaken) if the name is in use.
//   - ErrEmailInUse if the email is already registered.
func (a *authService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, validationError(err)
	}

	// the pre-checks only pick the message; the unique constraints decide
	if _, err := a.userRepository.FindUserByName(ctx, form.Name); err == nil {
		return models.User{}, &NameTakenError{Name: form.Name}
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, form.Email); err == nil {
		return models.User{}, ErrEmailInUse
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(form.Password, a.passwordIterations)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrNameAlreadyExists):
		return models.User{}, &NameTakenError{Name: form.Name}
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailInUse
	case err != nil:
		log.Err(err).Str("name", form.Name).Str("email", form.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("name", user.Name).Msg("user registered")

	return user, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, form.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("login with unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, form.Password)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("stored password hash is unreadable")
		return models.User{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CurrentUser tells a dead session (ErrSessionInvalid) apart from a failed
// lookup so callers only discard the former.
func (a *authService) CurrentUser(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrSessionInvalid
	}

	userID, err := a.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionInvalid) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: user %d no longer exists", ErrSessionInvalid, userID)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("loading session user %d failed: %w", userID, err)
	}

	return user, nil
}

// validationError wraps field errors in a [ValidationError]; other
// validator failures are returned as is.
func validationError(err error) error {
	if fe, ok := validators.AsFieldErrors(err); ok {
		return &ValidationError{Fields: fe}
	}
	return err
}
