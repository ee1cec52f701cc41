// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package models defines data structures for the Bytewise application.

This package contains the plain data shared by every layer: catalog items,
dietary restrictions, per-session request parameters, persisted model state,
and the API response envelope. Types here carry no behavior beyond small
helpers; the recommendation engine rebuilds its behavior objects from these
values on every request.

Key Components:

  - FoodItem: a normalized catalog entry with optional embedding and coordinates
  - DietaryRestriction: a user-selectable exclusion tag
  - FoodParameters: per-session request parameters (location, time category)
  - ModelState: persisted preference vector and interaction bookkeeping
  - Choice: feedback values (dislike=0, shuffle=1, like=2)
  - TimeCategory: Breakfast, Lunch, Dinner, Other
  - APIResponse: Standard response wrapper

Persistence:

Persisted shapes use camelCase JSON keys (skippedItemIds, dislikedItemIds,
timeCategory) so stored state stays compatible with browser clients that
keep the same values in local storage.

Thread Safety:

All types are plain values. Callers that share a value across goroutines
must copy it (see ModelState.Clone) or synchronize access.
*/
package models
