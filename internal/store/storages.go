// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every repository the services depend on.
//
// SessionStorage is nil unless the redis session backend is configured.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
	SessionStorage    SessionStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. With the redis session backend it also connects
// to redis.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	storages := NewSQLStorages(db, log)

	if cfg.App.SessionBackend == config.SessionBackendRedis {
		client, redisErr := NewConnectRedis(ctx, cfg.Storage.Redis, log)
		if redisErr != nil {
			_ = db.Close()
			return nil, redisErr
		}
		storages.redis = client
		storages.SessionStorage = NewSessionStorage(client, log)
	}

	log.Info().Str("driver", db.Driver()).Msg("storages created")

	return storages, nil
}

// NewSQLStorages builds the SQL repositories over an open db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		db:                db,
	}
}

// PingContext checks the database and, if configured, redis.
func (s *Storages) PingContext(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Close releases the database pool and the redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
