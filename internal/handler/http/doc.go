// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTML transport of the blog.
//
// It wires the chi router, the middleware chain (trace ids, access log,
// metrics, panic recovery, request timeout, session resolution) and the
// page and form handlers that delegate to the service layer and render
// through a [view.Renderer].
package http
