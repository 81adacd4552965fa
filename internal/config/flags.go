// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-driver database driver (sqlite or postgres)
//	-d database DSN
//	-redis redis address for the redis session backend
//	-c/-config json file path with configs
//	-owner-id id of the owner account
//	-session-backend session backend (signed or redis)
//	-session-sign-key session token signing key
//	-session-duration session duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var driver, databaseDSN, redisAddress string
	var jsonConfigPath string
	var ownerID int64
	var sessionBackend, sessionSignKey string
	var sessionDuration, requestTimeout time.Duration

	fs := flag.NewFlagSet("go-blog", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite or postgres)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Int64Var(&ownerID, "owner-id", 0, "Owner account id")
	fs.StringVar(&sessionBackend, "session-backend", "", "Session backend (signed or redis)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			OwnerID:         ownerID,
			SessionBackend:  sessionBackend,
			SessionSignKey:  sessionSignKey,
			SessionDuration: sessionDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
