// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package timeofday

import (
	"fmt"

	"github.com/tomtom215/bytewise/internal/models"
)

// Range is a half-open hour interval [Start, End) on a 24-hour clock.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether hour falls in [Start, End).
func (r Range) Contains(hour int) bool {
	return hour >= r.Start && hour < r.End
}

// Thresholds is the hour table used to map a clock hour to a meal period.
// Hours outside every range map to Other.
type Thresholds struct {
	Breakfast Range `json:"breakfast"`
	Lunch     Range `json:"lunch"`
	Dinner    Range `json:"dinner"`
}

// DefaultThresholds returns the standard table:
// Breakfast [5,11), Lunch [11,16), Dinner [16,22).
func DefaultThresholds() Thresholds {
	return Thresholds{
		Breakfast: Range{Start: 5, End: 11},
		Lunch:     Range{Start: 11, End: 16},
		Dinner:    Range{Start: 16, End: 22},
	}
}

// NarrowThresholds returns the table used by dining halls with fixed
// service windows: Breakfast [7,11), Lunch [11,14), Dinner [17,20).
func NarrowThresholds() Thresholds {
	return Thresholds{
		Breakfast: Range{Start: 7, End: 11},
		Lunch:     Range{Start: 11, End: 14},
		Dinner:    Range{Start: 17, End: 20},
	}
}

// Current returns the category for a clock hour (0-23).
func (t Thresholds) Current(hour int) models.TimeCategory {
	switch {
	case t.Breakfast.Contains(hour):
		return models.TimeCategoryBreakfast
	case t.Lunch.Contains(hour):
		return models.TimeCategoryLunch
	case t.Dinner.Contains(hour):
		return models.TimeCategoryDinner
	default:
		return models.TimeCategoryOther
	}
}

// Validate checks that every range lies within [0,24], is non-empty, and
// that the ranges are ordered without overlap.
func (t Thresholds) Validate() error {
	named := []struct {
		name string
		r    Range
	}{
		{"breakfast", t.Breakfast},
		{"lunch", t.Lunch},
		{"dinner", t.Dinner},
	}

	for _, n := range named {
		if n.r.Start < 0 || n.r.Start > 23 {
			return fmt.Errorf("time_of_day.%s.start must be between 0 and 23, got %d", n.name, n.r.Start)
		}
		if n.r.End <= n.r.Start || n.r.End > 24 {
			return fmt.Errorf("time_of_day.%s.end must be in (%d, 24], got %d", n.name, n.r.Start, n.r.End)
		}
	}

	for i := 1; i < len(named); i++ {
		prev, cur := named[i-1], named[i]
		if cur.r.Start < prev.r.End {
			return fmt.Errorf("time_of_day.%s must start at or after time_of_day.%s ends (%d), got %d",
				cur.name, prev.name, prev.r.End, cur.r.Start)
		}
	}

	return nil
}
