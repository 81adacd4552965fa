// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.BlogService.ListPosts(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := h.pageData(w, r, "")
	data.Posts = posts
	h.render(w, r, http.StatusOK, view.PageIndex, data)
}

func (h *Handler) showPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderPost(w, r, id, http.StatusOK, nil, nil)
}

// renderPost shows post id with its comments. form and formErrors re-fill
// the comment box after a rejected submission.
func (h *Handler) renderPost(w http.ResponseWriter, r *http.Request, id int64, status int, form any, formErrors map[string]string) {
	post, err := h.services.BlogService.GetPost(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := h.pageData(w, r, post.Post.Title)
	data.Post = post.Post
	data.Comments = post.Comments
	data.Form = form
	data.FormErrors = formErrors
	h.render(w, r, status, view.PagePost, data)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	user, ok := utils.UserFromContext(ctx)
	if !ok {
		h.setFlash(w, msgLoginToComment)
		redirect(w, r, "/login")
		return
	}

	if err = r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.addComment").Msg("invalid form was passed")
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}
	form := models.CommentForm{Text: r.PostFormValue("comment")}

	_, err = h.services.BlogService.AddComment(ctx, id, user.ID, form)
	switch {
	case err == nil:
		redirect(w, r, fmt.Sprintf("/post/%d", id))
	case errors.Is(err, service.ErrUnauthenticated):
		h.setFlash(w, msgLoginToComment)
		redirect(w, r, "/login")
	case errors.Is(err, service.ErrValidation):
		h.renderPost(w, r, id, http.StatusBadRequest, form, fieldErrors(err))
	default:
		h.renderError(w, r, err)
	}
}

func (h *Handler) newPostPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageMakePost, h.pageData(w, r, "New Post"))
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	post, err := h.services.BlogService.CreatePost(ctx, utils.UserIDFromContext(ctx), form)
	if err != nil {
		h.rejectPostForm(w, r, err, view.PageData{Title: "New Post", Form: form})
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", post.ID).Str("title", post.Title).Msg("post created")
	redirect(w, r, "/")
}

func (h *Handler) editPostPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	post, err := h.services.BlogService.GetPost(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := h.pageData(w, r, "Edit Post")
	data.IsEdit = true
	data.Post = post.Post
	data.Form = models.FormFromPost(post.Post)
	h.render(w, r, http.StatusOK, view.PageMakePost, data)
}

func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	post, err := h.services.BlogService.EditPost(ctx, utils.UserIDFromContext(ctx), id, form)
	if err != nil {
		h.rejectPostForm(w, r, err, view.PageData{Title: "Edit Post", Form: form, IsEdit: true, Post: models.Post{ID: id}})
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", post.ID).Msg("post edited")
	redirect(w, r, fmt.Sprintf("/post/%d", post.ID))
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = h.services.BlogService.DeletePost(ctx, utils.UserIDFromContext(ctx), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", id).Msg("post deleted")
	redirect(w, r, "/")
}

func (h *Handler) parsePostForm(w http.ResponseWriter, r *http.Request) (models.PostForm, bool) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.parsePostForm").Msg("invalid form was passed")
		h.renderStatus(w, r, http.StatusBadRequest)
		return models.PostForm{}, false
	}

	return models.PostForm{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		ImgURL:   r.PostFormValue("img_url"),
		Body:     r.PostFormValue("body"),
	}, true
}

// rejectPostForm re-renders the post editor for validation and title
// errors, and the error page for anything else.
func (h *Handler) rejectPostForm(w http.ResponseWriter, r *http.Request, err error, form view.PageData) {
	var status int
	var formErrors map[string]string

	switch {
	case errors.Is(err, service.ErrValidation):
		status, formErrors = http.StatusBadRequest, fieldErrors(err)
	case errors.Is(err, service.ErrTitleTaken):
		status, formErrors = http.StatusConflict, map[string]string{"title": msgTitleTaken}
	default:
		h.renderError(w, r, err)
		return
	}

	data := h.pageData(w, r, form.Title)
	data.Form = form.Form
	data.IsEdit = form.IsEdit
	data.Post = form.Post
	data.FormErrors = formErrors
	h.render(w, r, status, view.PageMakePost, data)
}
