// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// withSession resolves the session cookie into the current user and binds
// it to the request context. Unknown or expired sessions are treated as
// anonymous and their cookie is cleared. When the lookup itself fails the
// request is served anonymously but the cookie is kept.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.CurrentUser(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrSessionInvalid) {
				h.clearSessionCookie(w)
			} else {
				logger.FromRequest(r).Err(err).
					Str("func", "*Handler.withSession").
					Msg("session lookup failed, serving as anonymous")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// requireLogin redirects anonymous visitors to the login page.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.UserFromContext(r.Context()); !ok {
			h.setFlash(w, msgLoginRequired)
			redirect(w, r, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ownerOnly answers 403 to everyone but the owner, anonymous visitors
// included.
func (h *Handler) ownerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.UserFromContext(r.Context())
		if !ok || !h.services.BlogService.IsOwner(user.ID) {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.ownerOnly").
				Int64("user_id", user.ID).
				Str("uri", r.RequestURI).
				Msg("owner-only route denied")
			h.renderStatus(w, r, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
