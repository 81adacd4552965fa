// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders the HTML pages of the blog.
//
// Handlers build a [PageData] and hand it to a [Renderer] together with the
// page name. The default implementation parses the embedded html/template
// set once at startup; every page is executed inside the shared "base"
// layout.
package view
