// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/brianvoe/gofakeit/v6"
)

var errNoOwnerPassword = errors.New("SEED_OWNER_PASSWORD is required to register the owner")

// maxTitleAttempts bounds retries when a fake title collides.
const maxTitleAttempts = 3

type seeder struct {
	users   store.UserRepository
	auth    service.AuthService
	blog    service.BlogService
	ownerID int64
	faker   *gofakeit.Faker
	logger  *logger.Logger
}

// newSeeder builds a seeder; seed 0 picks a random fake-data sequence.
func newSeeder(users store.UserRepository, auth service.AuthService, blog service.BlogService, ownerID int64, seed int64, log *logger.Logger) *seeder {
	return &seeder{
		users:   users,
		auth:    auth,
		blog:    blog,
		ownerID: ownerID,
		faker:   gofakeit.New(seed),
		logger:  log,
	}
}

// ensureOwner registers the configured owner when no account exists yet.
// Being the first row, it receives id 1.
func (s *seeder) ensureOwner(ctx context.Context, cfg config.Seed) error {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info().Int64("users", count).Msg("users exist, owner registration skipped")
		return nil
	}

	if cfg.OwnerPassword == "" {
		return errNoOwnerPassword
	}

	owner, err := s.auth.Register(ctx, models.RegisterForm{
		Name:     cfg.OwnerName,
		Email:    cfg.OwnerEmail,
		Password: cfg.OwnerPassword,
	})
	if err != nil {
		return err
	}
	if owner.ID != s.ownerID {
		s.logger.Warn().Int64("id", owner.ID).Int64("owner_id", s.ownerID).Msg("registered account is not the configured owner")
	}

	s.logger.Info().Int64("id", owner.ID).Str("name", owner.Name).Str("email", owner.Email).Msg("owner registered")
	return nil
}

// seedPosts creates n fake posts as the owner and returns how many were
// stored.
func (s *seeder) seedPosts(ctx context.Context, n int) (int, error) {
	created := 0
	for i := 0; i < n; i++ {
		post, err := s.createPost(ctx)
		if err != nil {
			return created, fmt.Errorf("post %d: %w", i+1, err)
		}
		created++
		s.logger.Debug().Int64("post_id", post.ID).Str("title", post.Title).Msg("post created")
	}
	return created, nil
}

func (s *seeder) createPost(ctx context.Context) (models.Post, error) {
	var err error
	for attempt := 0; attempt < maxTitleAttempts; attempt++ {
		var post models.Post
		post, err = s.blog.CreatePost(ctx, s.ownerID, s.fakePost())
		if !errors.Is(err, service.ErrTitleTaken) {
			return post, err
		}
	}
	return models.Post{}, err
}

func (s *seeder) fakePost() models.PostForm {
	return models.PostForm{
		Title:    truncate(s.faker.Sentence(5), 250),
		Subtitle: truncate(s.faker.Sentence(10), 250),
		ImgURL:   s.faker.ImageURL(1200, 800),
		Body:     s.faker.Paragraph(3, 4, 12, "\n"),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
