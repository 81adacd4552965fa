// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "blog_posts" table.
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost persists post and returns it with the server-assigned ID.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Str("title", post.Title).
			Int64("author_id", post.AuthorID).
			Msg("failed to insert post")
		return models.Post{}, p.writeError(err, ErrUserNotFound)
	}

	log.Info().
		Str("func", "postRepository.CreatePost").
		Int64("post_id", post.ID).
		Msg("post created")

	return post, nil
}

// ListPosts returns all posts with their authors in id order.
// Returns an empty slice when there are none.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(p.builder)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)

	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

func (p *postRepository) FindPostByID(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPostByID").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPostByID").Int64("post_id", id).Msg("failed to select post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// UpdatePost overwrites the editable fields of post.ID.
func (p *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Int64("post_id", post.ID).Msg("failed to update post")
		return p.writeError(err, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "postRepository.UpdatePost").Int64("post_id", post.ID).Msg("post not found")
		return ErrPostNotFound
	}

	log.Info().Str("func", "postRepository.UpdatePost").Int64("post_id", post.ID).Msg("post updated")

	return nil
}

// DeletePost removes the comments of the post and then the post itself in
// a single transaction.
//
// The transaction is rolled back automatically (via defer) if either delete
// fails or the post does not exist.
func (p *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	commentsQuery, commentsArgs, err := buildDeletePostCommentsQuery(p.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	postQuery, postArgs, err := buildDeletePostQuery(p.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	commentsResult, err := tx.ExecContext(ctx, commentsQuery, commentsArgs...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("failed to delete comments")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	postResult, err := tx.ExecContext(ctx, postQuery, postArgs...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := postResult.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("post not found")
		return ErrPostNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	deletedComments, _ := commentsResult.RowsAffected()
	log.Info().
		Str("func", "postRepository.DeletePost").
		Int64("post_id", id).
		Int64("deleted_comments", deletedComments).
		Msg("post deleted")

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Subtitle,
		&post.Date,
		&post.Body,
		&post.ImgURL,
		&post.Author.ID,
		&post.Author.Name,
		&post.Author.Email,
	)
	return post, err
}
