// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// minPasswordIterations is the lowest accepted PBKDF2 iteration count.
const minPasswordIterations = 1000

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.App.SessionBackend {
	case SessionBackendSigned:
		if cfg.App.SessionSignKey == "" {
			return fmt.Errorf("%w: session sign key is required for the %q backend", ErrInvalidAppConfigs, SessionBackendSigned)
		}
	case SessionBackendRedis:
		if cfg.Storage.Redis.Address == "" {
			return fmt.Errorf("%w: redis address is required for the %q session backend", ErrInvalidStorageConfigs, SessionBackendRedis)
		}
	default:
		return fmt.Errorf("%w: unsupported session backend %q", ErrInvalidAppConfigs, cfg.App.SessionBackend)
	}

	if cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: session duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.OwnerID < 1 {
		return fmt.Errorf("%w: owner id must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordIterations < minPasswordIterations {
		return fmt.Errorf("%w: password iterations must be at least %d", ErrInvalidAppConfigs, minPasswordIterations)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	return nil
}
