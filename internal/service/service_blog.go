// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// blogService implements BlogService on top of the post and comment
// repositories.
type blogService struct {
	postRepository    store.PostRepository
	commentRepository store.CommentRepository
	validator         validators.Validator

	// ownerID is the only account allowed to create, edit and delete posts.
	ownerID int64

	// now stamps the date of new posts.
	now func() time.Time

	logger *logger.Logger
}

func NewBlogService(posts store.PostRepository, comments store.CommentRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) BlogService {
	return &blogService{
		postRepository:    posts,
		commentRepository: comments,
		validator:         validator,
		ownerID:           cfg.OwnerID,
		now:               time.Now,
		logger:            logger,
	}
}

func (b *blogService) IsOwner(userID int64) bool {
	return userID != 0 && userID == b.ownerID
}

// authorizeOwner returns ErrUnauthenticated for anonymous actors and
// ErrNotOwner for everyone but the owner.
func (b *blogService) authorizeOwner(actorID int64) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}
	if !b.IsOwner(actorID) {
		return ErrNotOwner
	}
	return nil
}

func (b *blogService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := b.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

func (b *blogService) GetPost(ctx context.Context, id int64) (models.PostWithComments, error) {
	post, err := b.findPost(ctx, id)
	if err != nil {
		return models.PostWithComments{}, err
	}

	comments, err := b.commentRepository.ListCommentsByPost(ctx, id)
	if err != nil {
		return models.PostWithComments{}, fmt.Errorf("listing comments failed: %w", err)
	}

	return models.PostWithComments{Post: post, Comments: comments}, nil
}

func (b *blogService) AddComment(ctx context.Context, postID, authorID int64, form models.CommentForm) (models.Comment, error) {
	if authorID == 0 {
		return models.Comment{}, ErrUnauthenticated
	}

	if _, err := b.findPost(ctx, postID); err != nil {
		return models.Comment{}, err
	}

	if err := b.validator.Validate(ctx, form); err != nil {
		return models.Comment{}, validationError(err)
	}

	comment, err := b.commentRepository.CreateComment(ctx, models.Comment{
		AuthorID: authorID,
		PostID:   postID,
		Text:     form.Text,
	})
	if err != nil {
		return models.Comment{}, mapStoreError(err, "creating comment failed")
	}

	return comment, nil
}

// CreatePost stamps the post with today's date and the actor as author.
func (b *blogService) CreatePost(ctx context.Context, actorID int64, form models.PostForm) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := b.authorizeOwner(actorID); err != nil {
		log.Warn().Int64("actor_id", actorID).Msg("post creation denied")
		return models.Post{}, err
	}

	if err := b.validator.Validate(ctx, form); err != nil {
		return models.Post{}, validationError(err)
	}

	post, err := b.postRepository.CreatePost(ctx, models.Post{
		AuthorID: actorID,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     b.now().Format(models.PostDateLayout),
		Body:     form.Body,
		ImgURL:   form.ImgURL,
	})
	if err != nil {
		return models.Post{}, mapStoreError(err, "creating post failed")
	}

	return post, nil
}

// EditPost overwrites the editable fields; date and author are kept.
func (b *blogService) EditPost(ctx context.Context, actorID, id int64, form models.PostForm) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := b.authorizeOwner(actorID); err != nil {
		log.Warn().Int64("actor_id", actorID).Int64("post_id", id).Msg("post edit denied")
		return models.Post{}, err
	}

	post, err := b.findPost(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if err = b.validator.Validate(ctx, form); err != nil {
		return models.Post{}, validationError(err)
	}

	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.ImgURL = form.ImgURL
	post.Body = form.Body

	if err = b.postRepository.UpdatePost(ctx, post); err != nil {
		return models.Post{}, mapStoreError(err, "updating post failed")
	}

	return post, nil
}

// DeletePost removes the post together with its comments.
func (b *blogService) DeletePost(ctx context.Context, actorID, id int64) error {
	log := logger.FromContext(ctx)

	if err := b.authorizeOwner(actorID); err != nil {
		log.Warn().Int64("actor_id", actorID).Int64("post_id", id).Msg("post deletion denied")
		return err
	}

	if err := b.postRepository.DeletePost(ctx, id); err != nil {
		return mapStoreError(err, "deleting post failed")
	}

	return nil
}

func (b *blogService) findPost(ctx context.Context, id int64) (models.Post, error) {
	post, err := b.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, mapStoreError(err, "loading post failed")
	}
	return post, nil
}

// mapStoreError translates repository sentinels into service errors.
func mapStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrPostNotFound):
		return ErrPostNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrTitleAlreadyExists):
		return ErrTitleTaken
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
