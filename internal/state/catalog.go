// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/tomtom215/bytewise/internal/models"
)

// LoadCatalog returns the normalized catalog. The returned slice is shared
// with the cache and must not be modified.
func (s *Store) LoadCatalog(ctx context.Context) ([]models.FoodItem, error) {
	if s.catalog != nil {
		if items, ok := s.catalog.Get(catalogKey); ok {
			return items, nil
		}
	}

	var items []models.FoodItem
	if err := s.getJSON(ctx, []byte(catalogKey), KeyFoodItems, &items); err != nil {
		return nil, err
	}

	if s.catalog != nil {
		s.catalog.Set(catalogKey, items)
	}
	return items, nil
}

// SaveCatalog replaces the catalog and refreshes the cache.
func (s *Store) SaveCatalog(ctx context.Context, items []models.FoodItem) error {
	if items == nil {
		items = []models.FoodItem{}
	}
	if err := s.setJSON(ctx, []byte(catalogKey), KeyFoodItems, items); err != nil {
		if s.catalog != nil {
			s.catalog.Delete(catalogKey)
		}
		return fmt.Errorf("save catalog: %w", err)
	}

	if s.catalog != nil {
		s.catalog.Set(catalogKey, slices.Clone(items))
	}
	s.logger.Debug().Int("items", len(items)).Msg("Catalog saved")
	return nil
}

// CatalogCacheStats returns hit/miss statistics of the catalog cache and
// whether the cache is enabled.
func (s *Store) CatalogCacheStats() (hits, misses int64, enabled bool) {
	if s.catalog == nil {
		return 0, 0, false
	}
	st := s.catalog.GetStats()
	return st.Hits, st.Misses, true
}
