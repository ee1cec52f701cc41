// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/bytewise/internal/catalog"
	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/models"
)

// CatalogStore persists a normalized catalog.
type CatalogStore interface {
	SaveCatalog(ctx context.Context, items []models.FoodItem) error
}

// CatalogNormalizer converts raw records into food items.
type CatalogNormalizer interface {
	Normalize(records []catalog.Record) []models.FoodItem
}

// CatalogReloadService loads the catalog CSV at startup and, when an
// interval is set, re-reads it on every tick. Files whose content hash is
// unchanged since the last successful load are skipped.
type CatalogReloadService struct {
	path       string
	interval   time.Duration
	store      CatalogStore
	normalizer CatalogNormalizer
	logger     zerolog.Logger

	lastHash uint64
	loaded   bool
}

// NewCatalogReloadService creates a reloader for path. An interval of 0
// loads the file once and then idles until shutdown.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogReloadService(path string, interval time.Duration, store CatalogStore, normalizer CatalogNormalizer, logger zerolog.Logger) *CatalogReloadService {
	return &CatalogReloadService{
		path:       path,
		interval:   interval,
		store:      store,
		normalizer: normalizer,
		logger:     logger.With().Str("service", "catalog-reload").Str("path", path).Logger(),
	}
}

// Serve implements suture.Service.
func (s *CatalogReloadService) Serve(ctx context.Context) error {
	// A failed initial load is logged and retried on the next tick rather
	// than returned, so a missing file does not put the layer in backoff.
	if err := s.Reload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("initial catalog load failed")
	}

	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Reload(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("catalog reload failed; keeping previous catalog")
			}
		}
	}
}

// Reload reads, normalizes and stores the catalog file once.
func (s *CatalogReloadService) Reload(ctx context.Context) error {
	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		err = fmt.Errorf("read catalog: %w", err)
		metrics.RecordCatalogReload(0, err)
		return err
	}

	hash := xxhash.Sum64(data)
	if s.loaded && hash == s.lastHash {
		metrics.RecordCatalogUnchanged()
		s.logger.Debug().Msg("catalog file unchanged")
		return nil
	}

	records, err := catalog.ReadCSV(bytes.NewReader(data))
	if err != nil {
		err = fmt.Errorf("parse catalog: %w", err)
		metrics.RecordCatalogReload(0, err)
		return err
	}

	items := s.normalizer.Normalize(records)
	if err := s.store.SaveCatalog(ctx, items); err != nil {
		err = fmt.Errorf("save catalog: %w", err)
		metrics.RecordCatalogReload(0, err)
		return err
	}

	s.lastHash = hash
	s.loaded = true
	metrics.RecordCatalogReload(len(items), nil)
	s.logger.Info().Int("records", len(records)).Int("items", len(items)).Msg("catalog loaded")
	return nil
}

// String implements fmt.Stringer for supervisor logging.
func (s *CatalogReloadService) String() string {
	return "catalog-reload"
}
