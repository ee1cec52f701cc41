// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package recommend

import (
	"context"

	"github.com/tomtom215/bytewise/internal/models"
)

// StateRepository persists session state between recommendation cycles.
// Implementations return state.ErrNotFound for missing keys and an error
// wrapping state.ErrCorrupt for values that cannot be decoded.
type StateRepository interface {
	LoadModelState(ctx context.Context, sessionID string) (*models.ModelState, error)
	SaveModelState(ctx context.Context, sessionID string, st *models.ModelState) error
	DeleteModelState(ctx context.Context, sessionID string) error

	LoadRestrictions(ctx context.Context, sessionID string) ([]models.DietaryRestriction, error)
	SaveRestrictions(ctx context.Context, sessionID string, restrictions []models.DietaryRestriction) error

	LoadParameters(ctx context.Context, sessionID string) (*models.FoodParameters, error)
	SaveParameters(ctx context.Context, sessionID string, p *models.FoodParameters) error

	LoadCatalog(ctx context.Context) ([]models.FoodItem, error)
	SaveCatalog(ctx context.Context, items []models.FoodItem) error
}
