// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

type healthStatus struct {
	Status string `json:"status"`
}

// health reports whether the storage backends answer a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("storage ping failed")
		utils.WriteJSON(w, healthStatus{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, healthStatus{Status: "ok"}, http.StatusOK)
}
