// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails.
	RunServer()

	// Shutdown stops accepting connections and drains in-flight requests.
	Shutdown()
}
