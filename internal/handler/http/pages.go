// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/view"
)

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageAbout, h.pageData(w, r, "About"))
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageContact, h.pageData(w, r, "Contact"))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderStatus(w, r, http.StatusNotFound)
}
