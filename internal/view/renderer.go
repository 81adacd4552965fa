// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// Page names understood by [TemplateRenderer].
const (
	PageIndex    = "index"
	PagePost     = "post"
	PageRegister = "register"
	PageLogin    = "login"
	PageMakePost = "make-post"
	PageAbout    = "about"
	PageContact  = "contact"
	PageError    = "error"
)

const layoutFile = "templates/base.html"

var ErrUnknownPage = errors.New("unknown page")

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer writes a fully rendered page to w. Nothing is written when
// rendering fails.
type Renderer interface {
	Render(w io.Writer, page string, data PageData) error
}

// PageData is the root value passed to every template.
type PageData struct {
	Title string

	// CurrentUser is the zero User for anonymous visitors.
	CurrentUser models.User
	IsOwner     bool
	Year        int
	Flash       string

	Posts    []models.Post
	Post     models.Post
	Comments []models.Comment

	// Form holds the submitted values when a form is re-rendered.
	Form any

	// FormErrors maps a form field name to its message.
	FormErrors map[string]string

	// FormError is a message that belongs to the whole form.
	FormError string

	// IsEdit switches make-post between creating and editing.
	IsEdit bool

	// Status and Message are used by the error page.
	Status  int
	Message string
}

// LoggedIn reports whether the visitor has a session.
func (d PageData) LoggedIn() bool {
	return !d.CurrentUser.IsAnonymous()
}

// TemplateRenderer renders pages from the embedded template set.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	// body is authored by the owner through the post editor and may
	// contain markup.
	"trusted": func(s string) template.HTML {
		return template.HTML(s)
	},
	"paragraphs": func(s string) []string {
		var out []string
		for _, p := range strings.Split(s, "\n") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	},
}

// NewTemplateRenderer parses the layout and every page template.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	return newTemplateRenderer(templatesFS)
}

func newTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	pages := []string{PageIndex, PagePost, PageRegister, PageLogin, PageMakePost, PageAbout, PageContact, PageError}
	r := &TemplateRenderer{pages: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		layout, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", page, err)
		}

		t, err := layout.ParseFS(fsys, "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", page, err)
		}
		r.pages[page] = t
	}

	return r, nil
}

func (r *TemplateRenderer) Render(w io.Writer, page string, data PageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	// render into a buffer so a failing template does not leave half a page
	buf := new(bytes.Buffer)
	if err := t.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
