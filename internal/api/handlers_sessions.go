// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/bytewise/internal/logging"
	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/models"
	"github.com/tomtom215/bytewise/internal/recommend"
	"github.com/tomtom215/bytewise/internal/state"
)

// sessionID returns the {id} URL parameter.
func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// RequireSession rejects requests for unknown sessions and adds the session
// ID to the logging context.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		if _, err := uuid.Parse(id); err != nil {
			respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Session not found", nil)
			return
		}

		exists, err := h.store.SessionExists(r.Context(), id)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to look up session", err)
			return
		}
		if !exists {
			respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Session not found", nil)
			return
		}

		ctx := logging.ContextWithSessionID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CreateSession handles POST /sessions.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := h.store.CreateSession(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to create session", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("session_id", id).Msg("Session created")
	respondSuccess(w, r, http.StatusCreated, models.SessionResponse{SessionID: id}, start)
}

// DeleteSession handles DELETE /sessions/{id}, removing every key of the session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := h.store.DeleteSession(r.Context(), sessionID(r)); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to delete session", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]bool{"deleted": true}, start)
}

// loadRestrictions returns the session's list, treating a missing key as empty.
func (h *Handler) loadRestrictions(r *http.Request) ([]models.DietaryRestriction, error) {
	list, err := h.store.LoadRestrictions(r.Context(), sessionID(r))
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		return nil, err
	}
	if list == nil {
		list = []models.DietaryRestriction{}
	}
	return list, nil
}

// GetRestrictions handles GET /sessions/{id}/restrictions.
func (h *Handler) GetRestrictions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	list, err := h.loadRestrictions(r)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load restrictions", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, list, start)
}

// PutRestrictions handles PUT /sessions/{id}/restrictions, replacing the list.
// Entries without an id are numbered after the existing ones.
func (h *Handler) PutRestrictions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RestrictionsRequest
	if !decodeAndValidate(w, r, maxBodyBytes, &req) {
		return
	}

	list := make([]models.DietaryRestriction, 0, len(req.Restrictions))
	seen := make(map[string]bool, len(req.Restrictions))
	for _, rs := range req.Restrictions {
		rs.Name = strings.TrimSpace(rs.Name)
		rs.ID = strings.TrimSpace(rs.ID)
		if rs.ID == "" {
			rs.ID = nextRestrictionID(list)
		}
		if seen[rs.ID] {
			respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Duplicate restriction id: "+rs.ID, nil)
			return
		}
		seen[rs.ID] = true
		list = append(list, rs)
	}

	if err := h.store.SaveRestrictions(r.Context(), sessionID(r), list); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to save restrictions", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, list, start)
}

// AddRestriction handles POST /sessions/{id}/restrictions. The new tag is
// appended already selected.
func (h *Handler) AddRestriction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AddRestrictionRequest
	if !decodeAndValidate(w, r, maxBodyBytes, &req) {
		return
	}

	list, err := h.loadRestrictions(r)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load restrictions", err)
		return
	}

	list = append(list, models.DietaryRestriction{
		ID:       nextRestrictionID(list),
		Name:     strings.TrimSpace(req.Name),
		Selected: true,
	})

	if err := h.store.SaveRestrictions(r.Context(), sessionID(r), list); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to save restrictions", err)
		return
	}
	respondSuccess(w, r, http.StatusCreated, list, start)
}

// ToggleRestriction handles PATCH /sessions/{id}/restrictions/{restrictionID},
// flipping the selected flag.
func (h *Handler) ToggleRestriction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rid := chi.URLParam(r, "restrictionID")

	list, err := h.loadRestrictions(r)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load restrictions", err)
		return
	}

	found := false
	for i := range list {
		if list[i].ID == rid {
			list[i].Selected = !list[i].Selected
			found = true
			break
		}
	}
	if !found {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Restriction not found", nil)
		return
	}

	if err := h.store.SaveRestrictions(r.Context(), sessionID(r), list); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to save restrictions", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, list, start)
}

// nextRestrictionID numbers a new entry len+1, skipping ids already taken.
func nextRestrictionID(list []models.DietaryRestriction) string {
	taken := make(map[string]bool, len(list))
	for _, rs := range list {
		taken[rs.ID] = true
	}
	for n := len(list) + 1; ; n++ {
		id := strconv.Itoa(n)
		if !taken[id] {
			return id
		}
	}
}

// GetParameters handles GET /sessions/{id}/parameters.
func (h *Handler) GetParameters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, err := h.store.LoadParameters(r.Context(), sessionID(r))
	if errors.Is(err, state.ErrNotFound) {
		params = &models.FoodParameters{}
	} else if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load parameters", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, params, start)
}

// PutParameters handles PUT /sessions/{id}/parameters.
func (h *Handler) PutParameters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var params models.FoodParameters
	if !decodeAndValidate(w, r, maxBodyBytes, &params) {
		return
	}
	if (params.Latitude == nil) != (params.Longitude == nil) {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, ErrPartialLocation.Error(), nil)
		return
	}

	if err := h.store.SaveParameters(r.Context(), sessionID(r), &params); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to save parameters", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, &params, start)
}

// Recommend handles POST /sessions/{id}/recommendations.
//
// The body is optional. A choice applies to the top item of the previous
// response for this session.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendationRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil && !errors.Is(err, ErrEmptyBody) {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON body: "+err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	result, err := h.orchestrator.Next(r.Context(), h.store, sessionID(r), req.Choice, req.Limit)
	if errors.Is(err, recommend.ErrEmptyCatalog) {
		respondError(w, r, http.StatusConflict, ErrCodeCatalogNotLoaded, "No catalog has been loaded", nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to update session state", err)
		return
	}

	respondSuccess(w, r, http.StatusOK, toRecommendationResponse(&result), start)
}

// ResetState handles DELETE /sessions/{id}/state. The next recommendation
// starts from a fresh model; restrictions and parameters are kept.
func (h *Handler) ResetState(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := h.store.DeleteModelState(r.Context(), sessionID(r)); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to reset model state", err)
		return
	}
	metrics.RecordModelStateReset(metrics.ResetExplicit)
	logging.Ctx(r.Context()).Info().Msg("Model state reset")

	respondSuccess(w, r, http.StatusOK, map[string]bool{"reset": true}, start)
}

func toRecommendationResponse(result *recommend.Result) models.RecommendationResponse {
	items := make([]models.ScoredFoodItem, len(result.Items))
	for i, si := range result.Items {
		items[i] = models.ScoredFoodItem{FoodItem: si.Item, Score: si.Score}
	}

	resp := models.RecommendationResponse{
		Items:           items,
		Outcome:         result.Outcome,
		Candidates:      result.Candidates,
		FeedbackApplied: result.FeedbackApplied,
	}
	if result.State != nil {
		resp.Iteration = result.State.Iteration
	}
	return resp
}
