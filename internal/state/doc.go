// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package state persists per-session recommendation state in BadgerDB.

# Key Layout

	session:<id>:created              session marker (RFC 3339 timestamp)
	session:<id>:modelState           models.ModelState
	session:<id>:dietaryRestrictions  []models.DietaryRestriction
	session:<id>:foodParameters       models.FoodParameters
	catalog:foodItems                 []models.FoodItem

Values are JSON encoded with goccy/go-json. Writes are last-write-wins.

# Errors

Missing keys return ErrNotFound. Values that no longer decode return an
error wrapping ErrCorrupt so callers can discard them and start fresh.

# Catalog Cache

The normalized catalog is read on every recommendation request. Store keeps
the decoded slice in an in-memory TTL cache that SaveCatalog refreshes.
*/
package state
