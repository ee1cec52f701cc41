// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/bytewise/internal/catalog"
	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/models"
	"github.com/tomtom215/bytewise/internal/state"
)

// GetCatalog handles GET /catalog. A catalog that was never loaded is
// returned as an empty list.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	items, err := h.store.LoadCatalog(r.Context())
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load catalog", err)
		return
	}
	if items == nil {
		items = []models.FoodItem{}
	}

	respondSuccess(w, r, http.StatusOK, models.CatalogResponse{Items: items, Count: len(items)}, start)
}

// PutCatalog handles PUT /catalog. Records in either column schema are
// normalized and replace the stored catalog; field failures degrade to
// defaults and never reject the upload.
func (h *Handler) PutCatalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CatalogRequest
	if !decodeAndValidate(w, r, maxCatalogBodyBytes, &req) {
		return
	}

	items := h.normalizer.Normalize(catalog.RecordsFromMaps(req.Records))

	if err := h.store.SaveCatalog(r.Context(), items); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to save catalog", err)
		return
	}
	metrics.SetCatalogItems(len(items))
	h.logger.Info().Int("items", len(items)).Msg("Catalog replaced via API")

	respondSuccess(w, r, http.StatusOK, models.CatalogResponse{Items: items, Count: len(items)}, start)
}
