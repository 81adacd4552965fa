// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 5000}, expected: ":5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "0.0.0.0:5000", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 5000}},
		{name: "empty host", input: ":5000", expectedAddr: NetAddress{Host: "", Port: 5000}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number must be in range 1-65535"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number must be in range 1-65535"},
		{name: "invalid host", input: "example.com:80", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-driver", "postgres",
		"-d", "postgres://localhost/blog",
		"-redis", "127.0.0.1:6379",
		"-config", "/etc/blog.json",
		"-owner-id", "3",
		"-session-backend", "redis",
		"-session-sign-key", "k",
		"-session-duration", "2h",
		"-request-timeout", "15s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/blog", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "/etc/blog.json", cfg.JSONFilePath)
	assert.Equal(t, int64(3), cfg.App.OwnerID)
	assert.Equal(t, SessionBackendRedis, cfg.App.SessionBackend)
	assert.Equal(t, "k", cfg.App.SessionSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionDuration)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nowhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-tls-cert", "cert.pem"})
	require.Error(t, err)
}
