// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package models

import (
	"strings"
)

// TimeCategory is the meal period an item is served in.
type TimeCategory string

// Time categories. Other covers items with no recognizable availability and
// hours outside every meal range.
const (
	TimeCategoryBreakfast TimeCategory = "Breakfast"
	TimeCategoryLunch     TimeCategory = "Lunch"
	TimeCategoryDinner    TimeCategory = "Dinner"
	TimeCategoryOther     TimeCategory = "Other"
)

// TimeCategories lists every category in evaluation order.
var TimeCategories = []TimeCategory{
	TimeCategoryBreakfast,
	TimeCategoryLunch,
	TimeCategoryDinner,
	TimeCategoryOther,
}

// ParseTimeCategory resolves a category name case-insensitively.
// The empty string is not a category and returns false.
func ParseTimeCategory(s string) (TimeCategory, bool) {
	s = strings.TrimSpace(s)
	for _, c := range TimeCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Location is a point in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FoodItem is a normalized catalog entry.
//
// Latitude and Longitude are pointers because an unknown coordinate is
// distinct from 0. Distance is derived per request and is not part of the
// item's identity. A nil Embedding is treated as the zero vector.
//
// Availability keeps the raw hours text TimeCategory was derived from, so
// clock-dependent texts such as "open all day" can be categorized again at
// request time. It is empty when the category came from an explicit column.
type FoodItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	Distance     float64      `json:"distance"`
	WaitTime     int          `json:"waitTime"`
	Ingredients  []string     `json:"ingredients"`
	Location     string       `json:"location"`
	SubLocation  string       `json:"subLocation,omitempty"`
	Restrictions []string     `json:"restrictions"`
	Embedding    []float64    `json:"embedding,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	Latitude     *float64     `json:"latitude,omitempty"`
	TimeCategory TimeCategory `json:"timeCategory"`
	Availability string       `json:"availability,omitempty"`
}

// Coordinates returns the item's position, or nil when either coordinate
// is unknown.
func (f *FoodItem) Coordinates() *Location {
	if f.Latitude == nil || f.Longitude == nil {
		return nil
	}
	return &Location{Latitude: *f.Latitude, Longitude: *f.Longitude}
}

// HasAnyRestriction reports whether any of the item's tags is in tags.
// Matching ignores case and surrounding whitespace.
func (f *FoodItem) HasAnyRestriction(tags []string) bool {
	for _, have := range f.Restrictions {
		have = strings.TrimSpace(have)
		for _, want := range tags {
			if strings.EqualFold(have, strings.TrimSpace(want)) {
				return true
			}
		}
	}
	return false
}

// DietaryRestriction is a user-selectable exclusion tag.
type DietaryRestriction struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,max=64,tagname"`
	Selected bool   `json:"selected"`
}

// SelectedRestrictionNames returns the names of the selected restrictions in
// list order.
func SelectedRestrictionNames(restrictions []DietaryRestriction) []string {
	names := make([]string, 0, len(restrictions))
	for _, r := range restrictions {
		if r.Selected {
			names = append(names, r.Name)
		}
	}
	return names
}

// FoodParameters holds per-session request parameters.
//
// Distance is the user's travel preference in miles. It is stored with the
// session for clients but does not filter candidates.
type FoodParameters struct {
	Distance     *float64     `json:"distance,omitempty" validate:"omitempty,gte=0"`
	TimeCategory TimeCategory `json:"timeCategory,omitempty" validate:"omitempty,oneof=Breakfast Lunch Dinner Other"`
	Latitude     *float64     `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64     `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// UserLocation returns the user's position, or nil when either coordinate
// is unknown.
func (p *FoodParameters) UserLocation() *Location {
	if p == nil || p.Latitude == nil || p.Longitude == nil {
		return nil
	}
	return &Location{Latitude: *p.Latitude, Longitude: *p.Longitude}
}
