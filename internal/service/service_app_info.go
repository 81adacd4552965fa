// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type appInfoService struct {
	info models.VersionInfo

	logger *logger.Logger
}

// NewAppInfoService reports the linker-injected build version when there is
// one, falling back to the configured version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" || version == "N/A" {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.VersionInfo{
			Version: version,
			Date:    build.BuildDate(),
			Commit:  build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionInfo {
	return s.info
}
