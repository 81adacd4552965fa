// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer, middleware.GetHead)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// machine-readable endpoints
	router.Get("/api/version", h.getServerVersion)
	router.Get("/healthz", h.health)
	router.Handle("/metrics", h.metrics.handler())

	// html pages
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withSession)

		r.Get("/", h.index)
		r.Get("/about", h.about)
		r.Get("/contact", h.contact)

		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)

		r.Get("/post/{id:[0-9]+}", h.showPost)
		r.Post("/post/{id:[0-9]+}", h.addComment)

		r.Group(func(r chi.Router) {
			r.Use(h.requireLogin)
			r.Get("/logout", h.logout)

			r.Group(func(r chi.Router) {
				r.Use(h.ownerOnly)
				r.Get("/new-post", h.newPostPage)
				r.Post("/new-post", h.createPost)
				r.Get("/edit-post/{id:[0-9]+}", h.editPostPage)
				r.Post("/edit-post/{id:[0-9]+}", h.editPost)
				r.Get("/delete/{id:[0-9]+}", h.deletePost)
			})
		})
	})

	router.NotFound(h.withSession(http.HandlerFunc(h.notFound)).ServeHTTP)

	return router
}
