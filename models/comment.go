// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is a piece of text left by an authenticated user under a post.
// Comments are never edited; they are removed together with their post.
type Comment struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"author_id"`
	Author   User   `json:"author"`
	PostID   int64  `json:"post_id"`
	Text     string `json:"text"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
