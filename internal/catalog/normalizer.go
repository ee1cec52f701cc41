// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/models"
)

// Categorizer derives a meal period from availability text.
type Categorizer interface {
	Categorize(text string) models.TimeCategory
}

// FieldError reports a field that failed to parse and fell back to its default.
type FieldError struct {
	Record int
	Field  string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: field %s: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Normalizer converts raw catalog records into FoodItems.
// A field failure degrades that field to its default; it never drops the record.
type Normalizer struct {
	categorizer Categorizer
	logger      zerolog.Logger
}

// NewNormalizer creates a Normalizer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewNormalizer(categorizer Categorizer, logger zerolog.Logger) *Normalizer {
	return &Normalizer{
		categorizer: categorizer,
		logger:      logger.With().Str("component", "catalog").Logger(),
	}
}

// Normalize converts every record, logging and counting field failures.
// The output has one item per input record, in input order.
func (n *Normalizer) Normalize(records []Record) []models.FoodItem {
	items := make([]models.FoodItem, 0, len(records))
	for i, rec := range records {
		item, errs := n.NormalizeRecord(i, rec)
		for _, fe := range errs {
			n.logger.Warn().
				Str("field", fe.Field).
				Int("record", fe.Record).
				Str("value", truncate(fe.Value, 80)).
				Err(fe.Err).
				Msg("Catalog field parse failed, using default")
			metrics.RecordCatalogFieldError(fe.Field)
		}
		items = append(items, item)
	}
	return items
}

// NormalizeRecord converts a single record at position index. Field failures
// are returned alongside the item rather than logged.
func (n *Normalizer) NormalizeRecord(index int, rec Record) (models.FoodItem, []*FieldError) {
	fields := rec.canonical()
	var errs []*FieldError
	fail := func(field string, err error) {
		errs = append(errs, &FieldError{Record: index, Field: field, Value: fields[field], Err: err})
	}

	item := models.FoodItem{
		ID:          strings.TrimSpace(fields[FieldID]),
		Name:        strings.TrimSpace(fields[FieldName]),
		Location:    strings.TrimSpace(fields[FieldLocation]),
		SubLocation: strings.TrimSpace(fields[FieldSubLocation]),
		Ingredients: parseIngredients(fields[FieldIngredients]),
	}
	if item.ID == "" {
		item.ID = strconv.Itoa(index)
	}

	var err error
	if item.Price, err = parseNonNegative(fields[FieldPrice]); err != nil {
		fail(FieldPrice, err)
	}
	if item.Distance, err = parseNonNegative(fields[FieldDistance]); err != nil {
		fail(FieldDistance, err)
	}
	if item.WaitTime, err = parseWaitTime(fields[FieldWaitTime], fields[FieldAvailability]); err != nil {
		fail(FieldWaitTime, err)
	}
	if item.Restrictions, err = parseRestrictions(fields[FieldRestrictions]); err != nil {
		fail(FieldRestrictions, err)
	}
	if item.Embedding, err = parseEmbedding(fields[FieldEmbedding]); err != nil {
		fail(FieldEmbedding, err)
	}
	if item.Latitude, err = parseCoordinate(fields[FieldLatitude], 90); err != nil {
		fail(FieldLatitude, err)
	}
	if item.Longitude, err = parseCoordinate(fields[FieldLongitude], 180); err != nil {
		fail(FieldLongitude, err)
	}

	item.TimeCategory = n.timeCategory(fields, fail)
	if !isKnownCategory(fields[FieldTimeCategory]) {
		item.Availability = strings.TrimSpace(fields[FieldAvailability])
	}

	return item, errs
}

// timeCategory prefers an explicit category column and otherwise derives one
// from the availability text.
func (n *Normalizer) timeCategory(fields map[string]string, fail func(string, error)) models.TimeCategory {
	if explicit := strings.TrimSpace(fields[FieldTimeCategory]); explicit != "" {
		if c, ok := models.ParseTimeCategory(explicit); ok {
			return c
		}
		fail(FieldTimeCategory, fmt.Errorf("%w: %q", ErrUnknownTime, explicit))
	}
	if n.categorizer == nil {
		return models.TimeCategoryOther
	}
	return n.categorizer.Categorize(fields[FieldAvailability])
}

func isKnownCategory(s string) bool {
	_, ok := models.ParseTimeCategory(s)
	return ok
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
