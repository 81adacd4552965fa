// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewConnectRedis opens a redis client for cfg and verifies it with PING.
// Address may be "host:port" or a redis:// URL.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	var opts *redis.Options
	if strings.Contains(cfg.Address, "://") {
		parsed, err := redis.ParseURL(cfg.Address)
		if err != nil {
			log.Err(err).Str("func", "NewConnectRedis").Msg("invalid redis URL")
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}
