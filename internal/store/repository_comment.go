// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type commentRepository struct {
	*DB
	logger *logger.Logger
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateComment persists comment and returns it with the server-assigned ID.
//
// A foreign key violation is reported as [ErrPostNotFound]: the author is
// always the authenticated user, so a dangling reference means the post was
// deleted in the meantime.
func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCommentQuery(c.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "commentRepository.CreateComment").Msg("failed to build query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.DB.QueryRowContext(ctx, query, args...).Scan(&comment.ID); err != nil {
		log.Err(err).
			Str("func", "commentRepository.CreateComment").
			Int64("post_id", comment.PostID).
			Int64("author_id", comment.AuthorID).
			Msg("failed to insert comment")
		return models.Comment{}, c.writeError(err, ErrPostNotFound)
	}

	log.Info().
		Str("func", "commentRepository.CreateComment").
		Int64("comment_id", comment.ID).
		Int64("post_id", comment.PostID).
		Msg("comment created")

	return comment, nil
}

// ListCommentsByPost returns the comments of postID with their authors.
func (c *commentRepository) ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsQuery(c.builder, postID)
	if err != nil {
		log.Err(err).Str("func", "commentRepository.ListCommentsByPost").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "commentRepository.ListCommentsByPost").
			Int64("post_id", postID).
			Msg("failed to execute query for listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 8)

	for rows.Next() {
		var comment models.Comment
		scanErr := rows.Scan(
			&comment.ID,
			&comment.AuthorID,
			&comment.PostID,
			&comment.Text,
			&comment.Author.ID,
			&comment.Author.Name,
			&comment.Author.Email,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "commentRepository.ListCommentsByPost").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "commentRepository.ListCommentsByPost").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}
