// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterForm holds the fields submitted on the registration page.
type RegisterForm struct {
	Name     string `form:"name" validate:"notblank,max=50"`
	Email    string `form:"email" validate:"notblank,email,max=100"`
	Password string `form:"password" validate:"notblank"`
}

// LoginForm holds the fields submitted on the login page.
type LoginForm struct {
	Email    string `form:"email" validate:"notblank,email"`
	Password string `form:"password" validate:"notblank"`
}

// PostForm holds the editable fields of a post. It is shared by the create
// and edit pages.
type PostForm struct {
	Title    string `form:"title" validate:"notblank,max=250"`
	Subtitle string `form:"subtitle" validate:"notblank,max=250"`
	ImgURL   string `form:"img_url" validate:"notblank,url,max=250"`
	Body     string `form:"body" validate:"notblank"`
}

// FormFromPost pre-fills a [PostForm] with the current values of p.
func FormFromPost(p Post) PostForm {
	return PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		ImgURL:   p.ImgURL,
		Body:     p.Body,
	}
}

// CommentForm holds the comment text submitted under a post.
type CommentForm struct {
	Text string `form:"comment" validate:"notblank"`
}
