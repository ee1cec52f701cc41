// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package models

// RecommendationRequest is the body of POST /sessions/{id}/recommendations.
// A missing choice requests a ranking without feedback.
type RecommendationRequest struct {
	Choice *Choice `json:"choice,omitempty" validate:"omitempty,oneof=0 1 2"`
	Limit  int     `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// RestrictionsRequest is the body of PUT /sessions/{id}/restrictions.
type RestrictionsRequest struct {
	Restrictions []DietaryRestriction `json:"restrictions" validate:"max=200,dive"`
}

// AddRestrictionRequest is the body of POST /sessions/{id}/restrictions.
type AddRestrictionRequest struct {
	Name string `json:"name" validate:"required,max=64,tagname"`
}

// CatalogRequest is the body of PUT /catalog: raw records in either
// supported column schema.
type CatalogRequest struct {
	Records []map[string]interface{} `json:"records" validate:"required,max=100000"`
}

// RecommendationResponse is returned by the recommendations endpoint.
type RecommendationResponse struct {
	Items           []ScoredFoodItem `json:"items"`
	Outcome         string           `json:"outcome"`
	Candidates      int              `json:"candidates"`
	FeedbackApplied bool             `json:"feedbackApplied"`
	Iteration       int              `json:"iteration"`
}

// ScoredFoodItem is a ranked item as returned to clients.
type ScoredFoodItem struct {
	FoodItem
	Score float64 `json:"score"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CatalogResponse summarizes the stored catalog.
type CatalogResponse struct {
	Items []FoodItem `json:"items"`
	Count int        `json:"count"`
}
