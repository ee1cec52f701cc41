// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/models"
	"github.com/tomtom215/bytewise/internal/timeofday"
)

// newTestNormalizer returns a Normalizer whose clock is fixed at 14:30.
func newTestNormalizer(buf *bytes.Buffer) *Normalizer {
	clock := timeofday.WithClock(func() time.Time {
		return time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	})
	return NewNormalizer(timeofday.NewCategorizer(timeofday.DefaultThresholds(), clock), zerolog.New(buf))
}

func TestNormalizeDiningFixture(t *testing.T) {
	t.Parallel()

	records, err := ReadCSVFile("testdata/dining.csv")
	if err != nil {
		t.Fatalf("ReadCSVFile() error = %v", err)
	}

	var logs bytes.Buffer
	items := newTestNormalizer(&logs).Normalize(records)

	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if logs.Len() != 0 {
		t.Errorf("fixture should parse without warnings, got: %s", logs.String())
	}

	gyro := items[0]
	if gyro.ID != "0" || gyro.Name != "Beef Gyro Bowl" {
		t.Errorf("unexpected first item %q/%q", gyro.ID, gyro.Name)
	}
	if gyro.Price != 10.99 {
		t.Errorf("price = %v, want 10.99", gyro.Price)
	}
	if gyro.Location != "North" || gyro.SubLocation != "HALAL CART- AVAILABLE 2PM-10PM" {
		t.Errorf("unexpected location %q / %q", gyro.Location, gyro.SubLocation)
	}
	if strings.Join(gyro.Restrictions, "|") != "Dairy|Eggs|Soy|Wheat/Gluten|Sesame" {
		t.Errorf("restrictions = %v", gyro.Restrictions)
	}
	if len(gyro.Embedding) != 100 {
		t.Errorf("embedding length = %d, want 100", len(gyro.Embedding))
	}
	if gyro.Latitude == nil || *gyro.Latitude != 40.802696 {
		t.Errorf("latitude = %v", gyro.Latitude)
	}
	if gyro.Longitude == nil || *gyro.Longitude != -77.866049 {
		t.Errorf("longitude = %v", gyro.Longitude)
	}
	if gyro.TimeCategory != models.TimeCategoryLunch {
		t.Errorf("time category = %s, want Lunch", gyro.TimeCategory)
	}
	if len(gyro.Ingredients) < 2 {
		t.Errorf("expected ingredients to be split on commas, got %d", len(gyro.Ingredients))
	}

	veggie := items[1]
	if len(veggie.Restrictions) != 0 {
		t.Errorf("veggie bowl restrictions = %v, want none", veggie.Restrictions)
	}
	// "All Day" follows the clock: 14:30 is Lunch.
	if veggie.TimeCategory != models.TimeCategoryLunch {
		t.Errorf("veggie bowl category = %s, want Lunch", veggie.TimeCategory)
	}

	if items[2].TimeCategory != models.TimeCategoryLunch {
		t.Errorf("margherita category = %s, want Lunch", items[2].TimeCategory)
	}
	if items[2].Price != 7.5 {
		t.Errorf("margherita price = %v, want 7.5", items[2].Price)
	}

	for i, item := range items {
		if item.ID != string(rune('0'+i)) {
			t.Errorf("item %d has id %q, want positional id", i, item.ID)
		}
		if item.Distance != 0 {
			t.Errorf("item %d distance = %v, want 0 before a request", i, item.Distance)
		}
	}
}

func TestNormalizeSimpleSchema(t *testing.T) {
	t.Parallel()

	records, err := ReadCSVFile("testdata/simple.csv")
	if err != nil {
		t.Fatalf("ReadCSVFile() error = %v", err)
	}

	var logs bytes.Buffer
	items := newTestNormalizer(&logs).Normalize(records)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	tofu := items[0]
	if tofu.ID != "a1" || tofu.Price != 6.5 || tofu.Distance != 0.4 || tofu.WaitTime != 10 {
		t.Errorf("unexpected tofu item %+v", tofu)
	}
	if strings.Join(tofu.Ingredients, "|") != "tofu|broccoli|soy sauce" {
		t.Errorf("ingredients = %v", tofu.Ingredients)
	}
	if tofu.Latitude != nil || tofu.Longitude != nil {
		t.Error("coordinates must stay unknown when columns are absent")
	}
	if tofu.Embedding != nil {
		t.Error("embedding must be nil when the column is absent")
	}
	if tofu.TimeCategory != models.TimeCategoryOther {
		t.Errorf("category = %s, want Other without availability", tofu.TimeCategory)
	}

	if strings.Join(items[1].Restrictions, "|") != "Dairy|Wheat/Gluten" {
		t.Errorf("restrictions = %v", items[1].Restrictions)
	}

	fruit := items[2]
	if fruit.ID != "a3" || fruit.Distance != 0 || fruit.WaitTime != 0 {
		t.Errorf("unexpected fruit item %+v", fruit)
	}
	if fruit.Restrictions == nil || len(fruit.Restrictions) != 0 {
		t.Errorf("missing restrictions must be an empty list, got %#v", fruit.Restrictions)
	}
}

func TestNormalizeRecordFieldFailures(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(&bytes.Buffer{})
	item, errs := n.NormalizeRecord(7, Record{
		"Name":      "Mystery Meal",
		"Price":     "about five",
		"Embedding": "[0.1 oops]",
		"Latitude":  "123",
		"Longitude": "-77.86",
		"Allergens": "['Dairy'",
		"Time":      "breakfast",
	})

	if item.Name != "Mystery Meal" || item.ID != "7" {
		t.Errorf("record must survive field failures, got %+v", item)
	}
	if item.Price != 0 || item.Embedding != nil || item.Latitude != nil {
		t.Errorf("failed fields must take defaults, got %+v", item)
	}
	if item.Longitude == nil {
		t.Error("valid longitude must be kept when latitude fails")
	}
	if item.TimeCategory != models.TimeCategoryBreakfast {
		t.Errorf("category = %s, want Breakfast", item.TimeCategory)
	}

	failed := map[string]bool{}
	for _, fe := range errs {
		failed[fe.Field] = true
		if fe.Record != 7 {
			t.Errorf("field error record = %d, want 7", fe.Record)
		}
	}
	for _, field := range []string{FieldPrice, FieldEmbedding, FieldLatitude, FieldRestrictions} {
		if !failed[field] {
			t.Errorf("expected a field error for %s, got %v", field, errs)
		}
	}
	if failed[FieldLongitude] {
		t.Error("longitude parsed fine and should not report an error")
	}

	var fe *FieldError
	if !errors.As(errs[0], &fe) {
		t.Fatal("field errors must be *FieldError")
	}
}

func TestNormalizeLogsAndCountsFailures(t *testing.T) {
	before := testutil.ToFloat64(metrics.CatalogFieldErrors.WithLabelValues(FieldPrice))

	var logs bytes.Buffer
	items := newTestNormalizer(&logs).Normalize([]Record{
		{"name": "Soup", "price": "n/a"},
	})

	if len(items) != 1 || items[0].Price != 0 {
		t.Fatalf("unexpected items %+v", items)
	}
	if got := testutil.ToFloat64(metrics.CatalogFieldErrors.WithLabelValues(FieldPrice)) - before; got != 1 {
		t.Errorf("expected 1 counted price failure, got %v", got)
	}

	out := logs.String()
	for _, want := range []string{`"level":"warn"`, `"field":"price"`, `"record":0`, `"value":"n/a"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %s", want, out)
		}
	}
}

func TestNormalizeExplicitTimeCategory(t *testing.T) {
	t.Parallel()

	n := newTestNormalizer(&bytes.Buffer{})

	item, errs := n.NormalizeRecord(0, Record{"name": "Pancakes", "timeCategory": "breakfast", "availability": "5pm"})
	if len(errs) != 0 || item.TimeCategory != models.TimeCategoryBreakfast {
		t.Errorf("explicit category should win, got %s (%v)", item.TimeCategory, errs)
	}
	if item.Availability != "" {
		t.Errorf("availability = %q, want empty for an explicit category", item.Availability)
	}

	item, errs = n.NormalizeRecord(0, Record{"name": "Pancakes", "timeCategory": "brunch", "availability": "5pm"})
	if len(errs) != 1 || errs[0].Field != FieldTimeCategory {
		t.Fatalf("expected one timeCategory error, got %v", errs)
	}
	if item.TimeCategory != models.TimeCategoryDinner {
		t.Errorf("invalid explicit category should fall back to availability, got %s", item.TimeCategory)
	}
	if item.Availability != "5pm" {
		t.Errorf("availability = %q, want the raw text kept for re-categorizing", item.Availability)
	}
}

func TestNormalizeWithoutCategorizer(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil, zerolog.Nop())
	item, _ := n.NormalizeRecord(0, Record{"name": "Toast", "time": "breakfast"})
	if item.TimeCategory != models.TimeCategoryOther {
		t.Errorf("category = %s, want Other", item.TimeCategory)
	}
}

func TestCanonicalField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Full_Ingredients", FieldIngredients, true},
		{"Sub_Location", FieldSubLocation, true},
		{"Allergens", FieldRestrictions, true},
		{"waitTime", FieldWaitTime, true},
		{"wait time", FieldWaitTime, true},
		{"Time", FieldAvailability, true},
		{"LAT", FieldLatitude, true},
		{"lng", FieldLongitude, true},
		{"\ufeffName", FieldName, true},
		{"calories", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalField(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalField(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRecordCanonicalPrefersNonEmpty(t *testing.T) {
	t.Parallel()

	fields := Record{
		"Allergens":    "",
		"restrictions": "Soy",
	}.canonical()
	if fields[FieldRestrictions] != "Soy" {
		t.Errorf("restrictions = %q, want Soy", fields[FieldRestrictions])
	}
}

func TestRecordCanonicalSortedHeaderWins(t *testing.T) {
	t.Parallel()

	rec := Record{
		"restrictions": "Soy",
		"Allergens":    "Dairy",
		"ALLERGENS":    "Gluten",
	}
	// "ALLERGENS" < "Allergens" < "restrictions" in byte order.
	for i := 0; i < 20; i++ {
		if got := rec.canonical()[FieldRestrictions]; got != "Gluten" {
			t.Fatalf("run %d: restrictions = %q, want Gluten", i, got)
		}
	}
}
