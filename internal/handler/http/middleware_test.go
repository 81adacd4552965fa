// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsFirstStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ab"))
	_, _ = w.Write([]byte("cde"))

	assert.Equal(t, http.StatusTeapot, w.Status())
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, w.Status())

	_, _ = w.Write([]byte("x"))
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.status)
}

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("done"))
	})

	req := httptest.NewRequest(http.MethodPost, "/post/1?x=1", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/post/1?x=1", entry["uri"])
	assert.Equal(t, "POST", entry["method"])
	assert.EqualValues(t, 201, entry["status"])
	assert.EqualValues(t, 4, entry["size"])
	assert.Contains(t, entry, "duration")
}

func TestWithTraceID_AttachesLoggerField(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestWithGZip(t *testing.T) {
	page := bytes.Repeat([]byte("<p>hello</p>"), 50)
	pageHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "deflate, gzip")
		rec := httptest.NewRecorder()

		withGZip(pageHandler).ServeHTTP(rec, req)

		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, page, body)
	})

	t.Run("passes through without accept-encoding", func(t *testing.T) {
		rec := httptest.NewRecorder()

		withGZip(pageHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, page, rec.Body.Bytes())
	})

	t.Run("leaves redirects alone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			redirect(w, r, "/")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown", assert.AnError, http.StatusInternalServerError},
		{"bad id", ErrInvalidID, http.StatusNotFound},
		{"validation", &service.ValidationError{Fields: validators.FieldErrors{}}, http.StatusBadRequest},
		{"name taken", &service.NameTakenError{Name: "bob"}, http.StatusConflict},
		{"title taken", service.ErrTitleTaken, http.StatusConflict},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owner", service.ErrNotOwner, http.StatusForbidden},
		{"post missing", service.ErrPostNotFound, http.StatusNotFound},
		{"query failed", fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
