// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"bytes"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	return r
}

func render(t *testing.T, page string, data PageData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Render(&buf, page, data))
	return buf.String()
}

func TestNewTemplateRenderer_ParsesEveryPage(t *testing.T) {
	r := newRenderer(t)

	for _, page := range []string{PageIndex, PagePost, PageRegister, PageLogin, PageMakePost, PageAbout, PageContact, PageError} {
		assert.Contains(t, r.pages, page)
	}
}

func TestRender_UnknownPage(t *testing.T) {
	var buf bytes.Buffer
	err := newRenderer(t).Render(&buf, "missing", PageData{})

	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Zero(t, buf.Len())
}

func TestRender_IndexListsPostsAndFooterYear(t *testing.T) {
	out := render(t, PageIndex, PageData{
		Year: 2026,
		Posts: []models.Post{
			{ID: 7, Title: "Hello World", Subtitle: "First", Date: "October 14, 2026", Author: models.User{Name: "admin"}},
		},
	})

	assert.Contains(t, out, `href="/post/7"`)
	assert.Contains(t, out, "Hello World")
	assert.Contains(t, out, "Posted by admin on October 14, 2026")
	assert.Contains(t, out, "go-blog 2026")
	assert.NotContains(t, out, "/delete/")
}

func TestRender_NavigationDependsOnIdentity(t *testing.T) {
	anonymous := render(t, PageAbout, PageData{})
	assert.Contains(t, anonymous, `href="/login"`)
	assert.Contains(t, anonymous, `href="/register"`)
	assert.NotContains(t, anonymous, `href="/logout"`)
	assert.NotContains(t, anonymous, `href="/new-post"`)

	reader := render(t, PageAbout, PageData{CurrentUser: models.User{ID: 2, Name: "reader"}})
	assert.Contains(t, reader, `href="/logout"`)
	assert.Contains(t, reader, "reader")
	assert.NotContains(t, reader, `href="/login"`)
	assert.NotContains(t, reader, `href="/new-post"`)

	owner := render(t, PageIndex, PageData{
		CurrentUser: models.User{ID: 1, Name: "admin"},
		IsOwner:     true,
		Posts:       []models.Post{{ID: 3, Title: "t"}},
	})
	assert.Contains(t, owner, `href="/new-post"`)
	assert.Contains(t, owner, `href="/delete/3"`)
}

func TestRender_EscapesUserContent(t *testing.T) {
	out := render(t, PagePost, PageData{
		Post:     models.Post{ID: 1, Title: "<b>t</b>", Body: "<p>owner markup</p>"},
		Comments: []models.Comment{{ID: 1, Text: "<script>alert(1)</script>", Author: models.User{Name: "<i>eve</i>"}}},
	})

	assert.Contains(t, out, "<p>owner markup</p>")
	assert.Contains(t, out, "&lt;b&gt;t&lt;/b&gt;")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<i>eve</i>")
}

func TestRender_FormErrorsAndValues(t *testing.T) {
	out := render(t, PageRegister, PageData{
		Form:       models.RegisterForm{Name: "bob", Email: "bob@example.com", Password: "secret"},
		FormErrors: map[string]string{"name": "bob is already taken."},
	})

	assert.Contains(t, out, `value="bob"`)
	assert.Contains(t, out, `value="bob@example.com"`)
	assert.Contains(t, out, "bob is already taken.")
	assert.NotContains(t, out, "secret")
}

func TestRender_MakePostModes(t *testing.T) {
	create := render(t, PageMakePost, PageData{})
	assert.Contains(t, create, `action="/new-post"`)
	assert.Contains(t, create, "New Post")

	edit := render(t, PageMakePost, PageData{
		IsEdit: true,
		Post:   models.Post{ID: 9},
		Form:   models.PostForm{Title: "Old title"},
	})
	assert.Contains(t, edit, `action="/edit-post/9"`)
	assert.Contains(t, edit, `value="Old title"`)
	assert.Contains(t, edit, "Edit Post")
}

func TestRender_ErrorPage(t *testing.T) {
	out := render(t, PageError, PageData{Status: http.StatusNotFound, Message: "Post not found."})

	assert.Contains(t, out, "404")
	assert.Contains(t, out, "Post not found.")
}

func TestRender_FailingTemplateWritesNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/base.html": {Data: []byte(`{{define "base"}}<html>{{template "content" .}}</html>{{end}}`)},
	}
	for _, page := range []string{PageIndex, PagePost, PageRegister, PageLogin, PageMakePost, PageAbout, PageContact, PageError} {
		fsys["templates/"+page+".html"] = &fstest.MapFile{Data: []byte(`{{define "content"}}{{.Form.Missing}}{{end}}`)}
	}

	r, err := newTemplateRenderer(fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageAbout, PageData{Form: models.CommentForm{}})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
