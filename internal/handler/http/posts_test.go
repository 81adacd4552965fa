// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var postValues = url.Values{
	"title":    {"Hello World"},
	"subtitle": {"First"},
	"body":     {"text"},
	"img_url":  {"http://x/img.png"},
}

var helloForm = models.PostForm{Title: "Hello World", Subtitle: "First", Body: "text", ImgURL: "http://x/img.png"}

func TestIndex_ListsPosts(t *testing.T) {
	env := newTestEnv(t)
	posts := []models.Post{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	env.blog.EXPECT().ListPosts(gomock.Any()).Return(posts, nil)

	rec := env.serve(get("/"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, view.PageIndex, env.renderer.page)
	assert.Equal(t, posts, env.renderer.data.Posts)
}

func TestShowPost(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		post := models.PostWithComments{
			Post:     models.Post{ID: 4, Title: "Hello"},
			Comments: []models.Comment{{ID: 1, Text: "hi"}},
		}
		env.blog.EXPECT().GetPost(gomock.Any(), int64(4)).Return(post, nil)

		rec := env.serve(get("/post/4"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, view.PagePost, env.renderer.page)
		assert.Equal(t, "Hello", env.renderer.data.Title)
		assert.Equal(t, post.Comments, env.renderer.data.Comments)
	})

	t.Run("missing", func(t *testing.T) {
		env := newTestEnv(t)
		env.blog.EXPECT().GetPost(gomock.Any(), int64(4)).Return(models.PostWithComments{}, service.ErrPostNotFound)

		rec := env.serve(get("/post/4"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, view.PageError, env.renderer.page)
	})
}

func TestAddComment(t *testing.T) {
	values := url.Values{"comment": {"nice"}}

	t.Run("anonymous is sent to login without persisting", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.serve(postForm("/post/4", values))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Equal(t, msgLoginToComment, flashValue(t, findCookie(rec, flashCookieName)))
	})

	t.Run("logged in", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/post/4", values)
		env.loginAs(req, reader)
		env.blog.EXPECT().AddComment(gomock.Any(), int64(4), reader.ID, models.CommentForm{Text: "nice"}).Return(models.Comment{ID: 1}, nil)

		rec := env.serve(req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/post/4", rec.Header().Get("Location"))
	})

	t.Run("blank comment re-renders the post", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/post/4", url.Values{"comment": {" "}})
		env.loginAs(req, reader)
		fields := validators.FieldErrors{{Field: "comment", Message: "This field is required."}}
		env.blog.EXPECT().AddComment(gomock.Any(), int64(4), reader.ID, gomock.Any()).Return(models.Comment{}, &service.ValidationError{Fields: fields})
		env.blog.EXPECT().GetPost(gomock.Any(), int64(4)).Return(models.PostWithComments{Post: models.Post{ID: 4}}, nil)

		rec := env.serve(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, view.PagePost, env.renderer.page)
		assert.Equal(t, "This field is required.", env.renderer.data.FormErrors["comment"])
	})
}

func TestOwnerRoutes_DeniedForNonOwner(t *testing.T) {
	requests := map[string]func() *http.Request{
		"GET /new-post":     func() *http.Request { return get("/new-post") },
		"POST /new-post":    func() *http.Request { return postForm("/new-post", postValues) },
		"GET /edit-post/4":  func() *http.Request { return get("/edit-post/4") },
		"POST /edit-post/4": func() *http.Request { return postForm("/edit-post/4", postValues) },
		"GET /delete/4":     func() *http.Request { return get("/delete/4") },
	}

	for name, build := range requests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			req := build()
			env.loginAs(req, reader)

			rec := env.serve(req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, view.PageError, env.renderer.page)
			assert.Equal(t, http.StatusForbidden, env.renderer.data.Status)
		})
	}
}

func TestOwnerRoutes_AnonymousIsSentToLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(get("/new-post"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestCreatePost(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/new-post", postValues)
		env.loginAs(req, owner)
		env.blog.EXPECT().CreatePost(gomock.Any(), owner.ID, helloForm).Return(models.Post{ID: 1, Title: "Hello World"}, nil)

		rec := env.serve(req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("title taken", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/new-post", postValues)
		env.loginAs(req, owner)
		env.blog.EXPECT().CreatePost(gomock.Any(), owner.ID, helloForm).Return(models.Post{}, service.ErrTitleTaken)

		rec := env.serve(req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, view.PageMakePost, env.renderer.page)
		assert.Equal(t, msgTitleTaken, env.renderer.data.FormErrors["title"])
		assert.Equal(t, helloForm, env.renderer.data.Form)
		assert.False(t, env.renderer.data.IsEdit)
	})

	t.Run("invalid form", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/new-post", url.Values{})
		env.loginAs(req, owner)
		fields := validators.FieldErrors{{Field: "title", Message: "This field is required."}}
		env.blog.EXPECT().CreatePost(gomock.Any(), owner.ID, models.PostForm{}).Return(models.Post{}, &service.ValidationError{Fields: fields})

		rec := env.serve(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "This field is required.", env.renderer.data.FormErrors["title"])
	})
}

func TestEditPost(t *testing.T) {
	t.Run("page is pre-filled", func(t *testing.T) {
		env := newTestEnv(t)
		req := get("/edit-post/4")
		env.loginAs(req, owner)
		post := models.Post{ID: 4, Title: "Old", Subtitle: "s", Body: "b", ImgURL: "http://x/i.png", Date: "January 02, 2026"}
		env.blog.EXPECT().GetPost(gomock.Any(), int64(4)).Return(models.PostWithComments{Post: post}, nil)

		rec := env.serve(req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, view.PageMakePost, env.renderer.page)
		assert.True(t, env.renderer.data.IsEdit)
		assert.Equal(t, models.FormFromPost(post), env.renderer.data.Form)
	})

	t.Run("success redirects to the post", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/edit-post/4", postValues)
		env.loginAs(req, owner)
		env.blog.EXPECT().EditPost(gomock.Any(), owner.ID, int64(4), helloForm).Return(models.Post{ID: 4}, nil)

		rec := env.serve(req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/post/4", rec.Header().Get("Location"))
	})

	t.Run("missing post", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/edit-post/4", postValues)
		env.loginAs(req, owner)
		env.blog.EXPECT().EditPost(gomock.Any(), owner.ID, int64(4), helloForm).Return(models.Post{}, service.ErrPostNotFound)

		rec := env.serve(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		req := get("/delete/4")
		env.loginAs(req, owner)
		env.blog.EXPECT().DeletePost(gomock.Any(), owner.ID, int64(4)).Return(nil)

		rec := env.serve(req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("missing post", func(t *testing.T) {
		env := newTestEnv(t)
		req := get("/delete/404")
		env.loginAs(req, owner)
		env.blog.EXPECT().DeletePost(gomock.Any(), owner.ID, int64(404)).Return(service.ErrPostNotFound)

		rec := env.serve(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, view.PageError, env.renderer.page)
	})
}
