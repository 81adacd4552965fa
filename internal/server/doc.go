// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the application.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that drains in-flight requests.
package server
