// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session keys inside a shared redis database.
const sessionKeyPrefix = "blog:session:"

// redisSessionStorage is the redis implementation of [SessionStorage].
// Each session is a plain string key holding the user id, expired by redis.
type redisSessionStorage struct {
	client redis.UniversalClient
	logger *logger.Logger
}

func NewSessionStorage(client redis.UniversalClient, logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating redis session storage")
	return &redisSessionStorage{
		client: client,
		logger: logger,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (s *redisSessionStorage) SaveSession(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisSessionStorage.SaveSession").
			Int64("user_id", userID).
			Msg("failed to save session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (s *redisSessionStorage) GetSession(ctx context.Context, token string) (int64, error) {
	value, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisSessionStorage.GetSession").Msg("failed to read session")
		return 0, fmt.Errorf("error reading session: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value: %w", err)
	}

	return userID, nil
}

func (s *redisSessionStorage) DeleteSession(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisSessionStorage.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}
