// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog/models"
)

var (
	usersTable    = models.User{}.TableName()
	postsTable    = models.Post{}.TableName()
	commentsTable = models.Comment{}.TableName()
)

var userColumns = []string{"id", "name", "email", "password"}

// postColumns selects a post joined with its author ("p" and "u").
var postColumns = []string{
	"p.id", "p.author_id", "p.title", "p.subtitle", "p.date", "p.body", "p.img_url",
	"u.id", "u.name", "u.email",
}

// commentColumns selects a comment joined with its author ("c" and "u").
var commentColumns = []string{
	"c.id", "c.author_id", "c.post_id", "c.text",
	"u.id", "u.name", "u.email",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(usersTable).ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(postsTable).
		Columns("author_id", "title", "subtitle", "date", "body", "img_url").
		Values(post.AuthorID, post.Title, post.Subtitle, post.Date, post.Body, post.ImgURL).
		Suffix("RETURNING id").
		ToSql()
}

func selectPosts(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(postColumns...).
		From(postsTable + " p").
		Join(usersTable + " u ON u.id = p.author_id")
}

func buildSelectPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectPosts(b).OrderBy("p.id ASC").ToSql()
}

func buildSelectPostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return selectPosts(b).Where(sq.Eq{"p.id": postID}).ToSql()
}

// buildUpdatePostQuery overwrites the editable columns only; author_id and
// date are fixed at creation.
func buildUpdatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Update(postsTable).
		Set("title", post.Title).
		Set("subtitle", post.Subtitle).
		Set("body", post.Body).
		Set("img_url", post.ImgURL).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Delete(postsTable).Where(sq.Eq{"id": postID}).ToSql()
}

func buildDeletePostCommentsQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Delete(commentsTable).Where(sq.Eq{"post_id": postID}).ToSql()
}

func buildInsertCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return b.Insert(commentsTable).
		Columns("author_id", "post_id", "text").
		Values(comment.AuthorID, comment.PostID, comment.Text).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectCommentsQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Select(commentColumns...).
		From(commentsTable + " c").
		Join(usersTable + " u ON u.id = c.author_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.id ASC").
		ToSql()
}
