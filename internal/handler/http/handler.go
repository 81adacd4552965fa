// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/view"
)

type Handler struct {
	services *service.Services
	renderer view.Renderer
	pinger   store.Pinger
	metrics  *httpMetrics

	sessionDuration time.Duration
	secureCookies   bool
	requestTimeout  time.Duration

	// now is used for the footer year.
	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer view.Renderer, pinger store.Pinger, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		renderer:        renderer,
		pinger:          pinger,
		metrics:         newHTTPMetrics(),
		sessionDuration: cfg.App.SessionDuration,
		secureCookies:   cfg.App.SecureCookies,
		requestTimeout:  cfg.Server.RequestTimeout,
		now:             time.Now,
		logger:          logger,
	}
}
