// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

// Package geo provides great-circle distance calculations in miles.
package geo

import (
	"math"

	"github.com/tomtom215/bytewise/internal/models"
)

// EarthRadiusMiles is the mean Earth radius used by Distance.
const EarthRadiusMiles = 3958.8

// Distance returns the Haversine great-circle distance in miles between two
// points given in decimal degrees. It never fails; coincident points yield 0.
// NaN inputs propagate to the result and are the caller's to normalize.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	// Rounding can push a slightly past 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// Between returns the distance between two locations. It reports false when
// either location is nil, leaving the substitution policy to the caller.
func Between(from, to *models.Location) (float64, bool) {
	if from == nil || to == nil {
		return 0, false
	}
	return Distance(from.Latitude, from.Longitude, to.Latitude, to.Longitude), true
}
