// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:     http.StatusBadRequest,
	service.ErrConflict:       http.StatusConflict,
	service.ErrAuth:           http.StatusUnauthorized,
	service.ErrSessionInvalid: http.StatusUnauthorized,
	service.ErrForbidden:      http.StatusForbidden,
	service.ErrNotFound:       http.StatusNotFound,
	ErrInvalidID:              http.StatusNotFound,

	store.ErrPostNotFound: http.StatusNotFound,
	store.ErrUserNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage is the text shown on the error page for status.
func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you are looking for does not exist."
	case http.StatusForbidden:
		return "You are not allowed to do that."
	case http.StatusUnauthorized:
		return "Please log in first."
	case http.StatusBadRequest:
		return "The request could not be understood."
	default:
		return "Something went wrong on our side."
	}
}
