// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package catalog turns raw tabular records into normalized FoodItems.

Two record schemas are accepted and folded onto one set of canonical fields
by CanonicalField, which ignores case, underscores, hyphens and spaces:

	Name, Location, Sub_Location, Time, Longitude, Latitude, Allergens,
	Full_Ingredients, Embedding, Price

	id, name, price, distance, waitTime, ingredients, location, restrictions

Field rules:

  - price, distance: non-negative float, otherwise 0
  - embedding: one enclosing bracket pair stripped, split on whitespace or
    commas; any bad token leaves the embedding undefined
  - restrictions: a list literal when the value starts with '[' (single
    quotes accepted), otherwise a comma list; trimmed and deduplicated
  - ingredients: comma list, trimmed
  - timeCategory: derived from the availability (Time) text
  - waitTime: explicit column, else the first integer in the availability text
  - id: the positional index when absent
  - latitude, longitude: parsed when present, otherwise unknown (never 0)

A field that fails to parse takes its default, is logged at warn level and
counted in bytewise_catalog_field_errors_total. The record itself is never
dropped.

ReadCSV and RecordsFromJSON produce records from CSV text or a JSON array.
*/
package catalog
