// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	BlogService    BlogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	sessions, err := NewSessionService(cfg.App, storages.SessionStorage, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewFormValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, sessions, validator, cfg.App, logger),
		SessionService: sessions,
		BlogService:    NewBlogService(storages.PostRepository, storages.CommentRepository, validator, cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
