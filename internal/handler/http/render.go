// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/go-chi/chi/v5"
)

// pageData fills the fields every template expects: the visitor, the owner
// flag, the footer year and a pending flash message.
func (h *Handler) pageData(w http.ResponseWriter, r *http.Request, title string) view.PageData {
	user, _ := utils.UserFromContext(r.Context())

	flash, err := h.popFlash(w, r)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.pageData").Send()
	}

	return view.PageData{
		Title:       title,
		CurrentUser: user,
		IsOwner:     h.services.BlogService.IsOwner(user.ID),
		Year:        h.now().Year(),
		Flash:       flash,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.PageData) {
	log := logger.FromRequest(r)

	buf := new(bytes.Buffer)
	if err := h.renderer.Render(buf, page, data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError shows the error page with the status mapped from err.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.renderError").Msg("request failed")
	}
	h.renderStatus(w, r, status)
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int) {
	data := h.pageData(w, r, http.StatusText(status))
	data.Status = status
	data.Message = errorMessage(status)

	h.render(w, r, status, view.PageError, data)
}

func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// pathID parses the numeric {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}
