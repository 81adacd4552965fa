// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seed registers the owner account on an empty database and fills
// the blog with fake posts.
package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

func main() {
	log := logger.NewLogger("blog-seed", "info")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, models.NewAppBuildInfo("", "", ""), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	s := newSeeder(storages.UserRepository, services.AuthService, services.BlogService, cfg.App.OwnerID, 0, log)

	if err = s.ensureOwner(ctx, cfg.Seed); err != nil {
		log.Fatal().Err(err).Msg("error registering owner")
	}

	created, err := s.seedPosts(ctx, cfg.Seed.Posts)
	if err != nil && !errors.Is(err, service.ErrTitleTaken) {
		log.Fatal().Err(err).Int("created", created).Msg("error creating posts")
	}

	log.Info().Int("created", created).Msg("seed finished")
}
