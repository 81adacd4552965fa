// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStorage(t *testing.T) (SessionStorage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStorage(client, logger.Nop()), mr
}

func TestSessionStorage_SaveGetDelete(t *testing.T) {
	s, mr := newTestSessionStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "tok", 42, time.Hour))
	assert.True(t, mr.Exists("blog:session:tok"))

	userID, err := s.GetSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	require.NoError(t, s.DeleteSession(ctx, "tok"))
	_, err = s.GetSession(ctx, "tok")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// deleting twice is fine
	assert.NoError(t, s.DeleteSession(ctx, "tok"))
}

func TestSessionStorage_Expiry(t *testing.T) {
	s, mr := newTestSessionStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "tok", 1, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := s.GetSession(ctx, "tok")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStorage_CorruptValue(t *testing.T) {
	s, mr := newTestSessionStorage(t)

	require.NoError(t, mr.Set("blog:session:tok", "not-a-number"))

	_, err := s.GetSession(context.Background(), "tok")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStorage_RedisDown(t *testing.T) {
	s, mr := newTestSessionStorage(t)
	mr.Close()

	_, err := s.GetSession(context.Background(), "tok")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestNewConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewConnectRedis(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	defer client.Close()

	client, err = NewConnectRedis(context.Background(), config.Redis{Address: "redis://" + mr.Addr() + "/0"}, logger.Nop())
	require.NoError(t, err)
	defer client.Close()

	_, err = NewConnectRedis(context.Background(), config.Redis{Address: "redis://%zz"}, logger.Nop())
	assert.Error(t, err)
}
