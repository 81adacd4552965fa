// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PostDateLayout is the human-readable layout used to stamp [Post.Date]
// at creation time, e.g. "October 14, 2026".
const PostDateLayout = "January 02, 2006"

// Post is a blog post authored by the owner account.
//
// Date and AuthorID are captured when the post is created and never change
// afterwards; edits only touch Title, Subtitle, Body and ImgURL.
type Post struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"author_id"`
	Author   User   `json:"author"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "blog_posts"
}

// PostWithComments is a post together with its comments, each comment
// carrying its author for display.
type PostWithComments struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}
