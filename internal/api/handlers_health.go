// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/bytewise/internal/state"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady handles readiness probe requests.
// Ready means the state store answers and a catalog has been loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	storeOK := h.store != nil && h.store.Ping(r.Context()) == nil

	catalogItems := 0
	if storeOK {
		items, err := h.store.LoadCatalog(r.Context())
		switch {
		case err == nil:
			catalogItems = len(items)
		case errors.Is(err, state.ErrNotFound):
		default:
			h.logger.Warn().Err(err).Msg("Readiness check failed to read catalog")
		}
	}

	ready := storeOK && catalogItems > 0
	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondSuccess(w, r, statusCode, map[string]interface{}{
		"status":          status,
		"store_connected": storeOK,
		"catalog_items":   catalogItems,
	}, start)
}
