// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted both as strings ("30s") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		OwnerID            int64    `json:"owner_id"`
		SessionBackend     string   `json:"session_backend"`
		SessionSignKey     string   `json:"session_sign_key"`
		SessionIssuer      string   `json:"session_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		SecureCookies      bool     `json:"secure_cookies"`
		PasswordIterations int      `json:"password_iterations"`
		LogLevel           string   `json:"log_level"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ReadTimeout    Duration `json:"read_timeout"`
		WriteTimeout   Duration `json:"write_timeout"`
		IdleTimeout    Duration `json:"idle_timeout"`
	} `json:"server,omitempty"`

	Seed struct {
		OwnerName     string `json:"owner_name"`
		OwnerEmail    string `json:"owner_email"`
		OwnerPassword string `json:"owner_password"`
		Posts         int    `json:"posts"`
	} `json:"seed,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			OwnerID:            jsonCfg.App.OwnerID,
			SessionBackend:     jsonCfg.App.SessionBackend,
			SessionSignKey:     jsonCfg.App.SessionSignKey,
			SessionIssuer:      jsonCfg.App.SessionIssuer,
			SessionDuration:    time.Duration(jsonCfg.App.SessionDuration),
			SecureCookies:      jsonCfg.App.SecureCookies,
			PasswordIterations: jsonCfg.App.PasswordIterations,
			LogLevel:           jsonCfg.App.LogLevel,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			ReadTimeout:    time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:   time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:    time.Duration(jsonCfg.Server.IdleTimeout),
		},
		Seed: Seed{
			OwnerName:     jsonCfg.Seed.OwnerName,
			OwnerEmail:    jsonCfg.Seed.OwnerEmail,
			OwnerPassword: jsonCfg.Seed.OwnerPassword,
			Posts:         jsonCfg.Seed.Posts,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
