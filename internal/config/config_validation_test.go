// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with sign key", mutate: func(*StructuredConfig) {}},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "signed backend without key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "redis backend without address",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.SessionBackend = SessionBackendRedis
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "redis backend with address needs no sign key",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.SessionBackend = SessionBackendRedis
				cfg.App.SessionSignKey = ""
				cfg.Storage.Redis.Address = "localhost:6379"
			},
		},
		{
			name:    "unknown session backend",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionBackend = "memcached" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero session duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "owner id zero",
			mutate:  func(cfg *StructuredConfig) { cfg.App.OwnerID = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "too few iterations",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordIterations = 10 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
