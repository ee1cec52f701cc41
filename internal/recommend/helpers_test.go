// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package recommend

import (
	"github.com/tomtom215/bytewise/internal/models"
)

const testDim = 100

// unit returns the i-th standard basis vector.
func unit(i int) []float64 {
	v := make([]float64, testDim)
	v[i] = 1
	return v
}

func ptr[T any](v T) *T {
	return &v
}

// diningHall mirrors the four catalog rows shipped with the service.
func diningHall() []models.FoodItem {
	return []models.FoodItem{
		{
			ID:           "0",
			Name:         "Gyro",
			Price:        10.99,
			Restrictions: []string{"Dairy", "Eggs", "Soy", "Wheat", "Gluten", "Sesame"},
			Embedding:    unit(0),
			TimeCategory: models.TimeCategoryLunch,
		},
		{
			ID:           "1",
			Name:         "Veggie Bowl",
			Price:        8.99,
			Restrictions: []string{},
			Embedding:    unit(1),
			TimeCategory: models.TimeCategoryOther,
		},
		{
			ID:           "2",
			Name:         "Margherita Pizza",
			Price:        7.50,
			Restrictions: []string{"Dairy", "Wheat", "Gluten"},
			Embedding:    unit(2),
			TimeCategory: models.TimeCategoryLunch,
		},
		{
			ID:           "3",
			Name:         "Chicken Caesar Wrap",
			Price:        9.49,
			Restrictions: []string{"Dairy", "Eggs", "Wheat", "Gluten"},
			Embedding:    unit(3),
			TimeCategory: models.TimeCategoryLunch,
		},
	}
}

func itemNames(items []ScoredItem) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Item.Name
	}
	return out
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
