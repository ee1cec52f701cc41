// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/bytewise/internal/catalog"
	"github.com/tomtom215/bytewise/internal/config"
	"github.com/tomtom215/bytewise/internal/recommend"
	"github.com/tomtom215/bytewise/internal/state"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and decoding helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_sessions.go: session, restriction, parameter and recommendation endpoints
//   - handlers_catalog.go: catalog read and replace
type Handler struct {
	store        *state.Store
	orchestrator *recommend.Orchestrator
	normalizer   *catalog.Normalizer
	config       *config.Config
	logger       zerolog.Logger
	startTime    time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - store: Badger-backed session and catalog storage
//   - orchestrator: runs one recommendation cycle per request
//   - normalizer: converts uploaded catalog records to FoodItems
//   - cfg: application configuration
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(store *state.Store, orchestrator *recommend.Orchestrator, normalizer *catalog.Normalizer, cfg *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		store:        store,
		orchestrator: orchestrator,
		normalizer:   normalizer,
		config:       cfg,
		logger:       logger.With().Str("component", "api").Logger(),
		startTime:    time.Now(),
	}
}
