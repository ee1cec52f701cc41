// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/bytewise/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestValidateStruct_FoodParameters(t *testing.T) {
	tests := []struct {
		name      string
		input     models.FoodParameters
		wantField string
		wantTag   string
	}{
		{name: "empty is valid", input: models.FoodParameters{}},
		{
			name: "full valid",
			input: models.FoodParameters{
				Distance:     ptr(2.5),
				TimeCategory: models.TimeCategoryDinner,
				Latitude:     ptr(34.0689),
				Longitude:    ptr(-118.4452),
			},
		},
		{name: "zero coordinates are valid", input: models.FoodParameters{Latitude: ptr(0.0), Longitude: ptr(0.0)}},
		{name: "zero distance is valid", input: models.FoodParameters{Distance: ptr(0.0)}},
		{name: "negative distance", input: models.FoodParameters{Distance: ptr(-1.0)}, wantField: "distance", wantTag: "gte"},
		{name: "bad category", input: models.FoodParameters{TimeCategory: "Brunch"}, wantField: "timeCategory", wantTag: "oneof"},
		{name: "latitude out of range", input: models.FoodParameters{Latitude: ptr(91.0)}, wantField: "latitude", wantTag: "latitude"},
		{name: "longitude out of range", input: models.FoodParameters{Longitude: ptr(-181.0)}, wantField: "longitude", wantTag: "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Errorf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_RecommendationRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   models.RecommendationRequest
		wantErr bool
	}{
		{"no choice", models.RecommendationRequest{}, false},
		{"dislike", models.RecommendationRequest{Choice: ptr(models.ChoiceDislike)}, false},
		{"shuffle", models.RecommendationRequest{Choice: ptr(models.ChoiceShuffle)}, false},
		{"like", models.RecommendationRequest{Choice: ptr(models.ChoiceLike)}, false},
		{"choice 3", models.RecommendationRequest{Choice: ptr(models.Choice(3))}, true},
		{"negative choice", models.RecommendationRequest{Choice: ptr(models.Choice(-1))}, true},
		{"limit in range", models.RecommendationRequest{Limit: 25}, false},
		{"limit too high", models.RecommendationRequest{Limit: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if (verr != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() = %v, wantErr %v", verr, tt.wantErr)
			}
		})
	}
}

func TestValidateStruct_Restrictions(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
	}{
		{"valid add", &models.AddRestrictionRequest{Name: "Dairy"}, ""},
		{"missing name", &models.AddRestrictionRequest{}, "name"},
		{"blank name", &models.AddRestrictionRequest{Name: "   "}, "name"},
		{"comma in name", &models.AddRestrictionRequest{Name: "Dairy, Eggs"}, "name"},
		{"too long", &models.AddRestrictionRequest{Name: strings.Repeat("x", 65)}, "name"},
		{"valid list", &models.RestrictionsRequest{Restrictions: []models.DietaryRestriction{
			{ID: "1", Name: "Dairy", Selected: true},
			{ID: "2", Name: "Tree Nuts"},
		}}, ""},
		{"empty list", &models.RestrictionsRequest{}, ""},
		{"bad entry in list", &models.RestrictionsRequest{Restrictions: []models.DietaryRestriction{
			{ID: "1", Name: "Dairy"},
			{ID: "2", Name: ""},
		}}, "restrictions[1].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Errorf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := verr.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("Field() = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestValidateStruct_CatalogRequest(t *testing.T) {
	if verr := ValidateStruct(&models.CatalogRequest{}); verr == nil {
		t.Error("CatalogRequest without records should fail")
	}
	req := &models.CatalogRequest{Records: []map[string]interface{}{{"name": "Gyro"}}}
	if verr := ValidateStruct(req); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil", verr)
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	verr := ValidateStruct(&models.FoodParameters{TimeCategory: "Brunch"})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "timeCategory must be one of: Breakfast Lunch Dinner Other" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "timeCategory" {
		t.Errorf("Details[field] = %v, want timeCategory", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&models.FoodParameters{
		Distance:     ptr(-3.0),
		TimeCategory: "Brunch",
	})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %#v, want 2 entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "distance must be greater than or equal to 0") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() = %q, want joined messages", verr.Error())
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty Error() message changed")
	}
}

func TestErrorMessages(t *testing.T) {
	type sample struct {
		Name  string   `json:"name" validate:"min=3"`
		Tags  []string `json:"tags" validate:"max=1"`
		Count int      `json:"count" validate:"max=5"`
	}

	verr := ValidateStruct(&sample{Name: "ab", Tags: []string{"a", "b"}, Count: 9})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	want := map[string]string{
		"name":  "name must be at least 3 characters",
		"tags":  "tags must be at most 1 items",
		"count": "count must be at most 5",
	}
	for _, e := range verr.Errors() {
		if w, ok := want[e.Field()]; ok && e.Error() != w {
			t.Errorf("%s message = %q, want %q", e.Field(), e.Error(), w)
		}
	}
	if len(verr.Errors()) != 3 {
		t.Errorf("len(Errors()) = %d, want 3", len(verr.Errors()))
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("ValidateStruct(string) = nil, want error")
	}
	if verr.Errors()[0].Field() != "unknown" {
		t.Errorf("Field() = %q, want unknown", verr.Errors()[0].Field())
	}
}
