// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package catalog

import (
	"maps"
	"slices"
	"strings"
)

// Canonical field names. Both catalog schemas are folded onto these.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldPrice        = "price"
	FieldDistance     = "distance"
	FieldWaitTime     = "waitTime"
	FieldIngredients  = "ingredients"
	FieldLocation     = "location"
	FieldSubLocation  = "subLocation"
	FieldRestrictions = "restrictions"
	FieldEmbedding    = "embedding"
	FieldLongitude    = "longitude"
	FieldLatitude     = "latitude"
	FieldAvailability = "availability"
	FieldTimeCategory = "timeCategory"
)

// headerAliases maps a folded header to its canonical field.
var headerAliases = map[string]string{
	"id":              FieldID,
	"name":            FieldName,
	"price":           FieldPrice,
	"distance":        FieldDistance,
	"waittime":        FieldWaitTime,
	"ingredients":     FieldIngredients,
	"fullingredients": FieldIngredients,
	"location":        FieldLocation,
	"sublocation":     FieldSubLocation,
	"restrictions":    FieldRestrictions,
	"allergens":       FieldRestrictions,
	"embedding":       FieldEmbedding,
	"longitude":       FieldLongitude,
	"lon":             FieldLongitude,
	"lng":             FieldLongitude,
	"latitude":        FieldLatitude,
	"lat":             FieldLatitude,
	"time":            FieldAvailability,
	"availability":    FieldAvailability,
	"timecategory":    FieldTimeCategory,
}

// CanonicalField returns the canonical field for a raw header, ignoring case,
// underscores, hyphens and spaces. It reports false for unknown headers.
func CanonicalField(header string) (string, bool) {
	folded := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '\t', '\ufeff':
			return -1
		}
		return r
	}, strings.ToLower(header))
	field, ok := headerAliases[folded]
	return field, ok
}

// Record is one raw tabular record keyed by header.
type Record map[string]string

// canonical folds the record's headers onto canonical fields. Headers are
// visited in sorted byte order, so when several map to the same field the
// first non-empty value in that order wins.
func (r Record) canonical() map[string]string {
	out := make(map[string]string, len(r))
	for _, header := range slices.Sorted(maps.Keys(r)) {
		field, ok := CanonicalField(header)
		if !ok || strings.TrimSpace(out[field]) != "" {
			continue
		}
		out[field] = r[header]
	}
	return out
}
