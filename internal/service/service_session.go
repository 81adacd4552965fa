// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// NewSessionService builds the session backend selected by
// cfg.SessionBackend. The redis backend requires a non-nil storage.
func NewSessionService(cfg config.App, storage store.SessionStorage, logger *logger.Logger) (SessionService, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendSigned, "":
		return NewSignedSessionService(cfg, logger), nil
	case config.SessionBackendRedis:
		if storage == nil {
			return nil, errors.New("redis session backend requires a session storage")
		}
		return NewStoredSessionService(cfg, storage, logger), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

// signedSessionService keeps no server-side state: the token is an HS256
// JWT whose subject is the user id.
type signedSessionService struct {
	signKey  string
	issuer   string
	duration time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSignedSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &signedSessionService{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *signedSessionService) Start(ctx context.Context, userID int64) (string, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.duration, s.signKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("failed to sign session token")
		return "", fmt.Errorf("error starting session: %w", err)
	}

	return token.String(), nil
}

func (s *signedSessionService) Resolve(ctx context.Context, token string) (int64, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return 0, ErrSessionInvalid
	}

	return parsed.UserID, nil
}

// End is a no-op: a signed token cannot be revoked, the cookie is cleared
// instead.
func (s *signedSessionService) End(ctx context.Context, token string) error {
	return nil
}

// storedSessionService issues opaque UUIDv7 tokens and keeps the binding to
// the user id in a [store.SessionStorage].
type storedSessionService struct {
	storage  store.SessionStorage
	ids      *utils.UUIDGenerator
	duration time.Duration

	logger *logger.Logger
}

func NewStoredSessionService(cfg config.App, storage store.SessionStorage, logger *logger.Logger) SessionService {
	return &storedSessionService{
		storage:  storage,
		ids:      utils.NewUUIDGenerator(),
		duration: cfg.SessionDuration,
		logger:   logger,
	}
}

func (s *storedSessionService) Start(ctx context.Context, userID int64) (string, error) {
	if userID < 1 {
		return "", fmt.Errorf("error starting session: invalid user id %d", userID)
	}

	token := s.ids.Generate()
	if err := s.storage.SaveSession(ctx, token, userID, s.duration); err != nil {
		return "", fmt.Errorf("error starting session: %w", err)
	}

	return token, nil
}

func (s *storedSessionService) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrSessionInvalid
	}

	userID, err := s.storage.GetSession(ctx, token)
	if errors.Is(err, store.ErrSessionNotFound) {
		return 0, ErrSessionInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("error resolving session: %w", err)
	}

	return userID, nil
}

func (s *storedSessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.storage.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("error ending session: %w", err)
	}

	return nil
}
