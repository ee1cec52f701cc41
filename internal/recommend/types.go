// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package recommend

import (
	"errors"

	"github.com/tomtom215/bytewise/internal/models"
)

// Sentinel errors.
var (
	// ErrNoCurrentItem is returned by Model.Feedback when no item is given and
	// nothing has been ranked yet.
	ErrNoCurrentItem = errors.New("recommend: feedback without a current item")

	// ErrNotScored is returned by Model.Max before any ranking.
	ErrNotScored = errors.New("recommend: no scores calculated")

	// ErrEmptyCatalog is returned when the state repository holds no catalog.
	ErrEmptyCatalog = errors.New("recommend: catalog is empty")

	// ErrInvalidChoice is returned for feedback values outside dislike/shuffle/like.
	ErrInvalidChoice = errors.New("recommend: invalid choice")
)

// ScoredItem is a catalog item with its ranking score.
type ScoredItem struct {
	// Item is the food item, with Distance set for this request.
	Item models.FoodItem `json:"item"`

	// Score is SimilarityWeight*cosine(ideal, embedding) minus the distance penalty.
	Score float64 `json:"score"`

	// Similarity is the raw cosine similarity component.
	Similarity float64 `json:"similarity"`

	// DistancePenalty is the miles subtracted from the score.
	DistancePenalty float64 `json:"distance_penalty"`
}

// Request is one recommendation cycle.
type Request struct {
	// Catalog is the full item list. It is not modified.
	Catalog []models.FoodItem

	// Restrictions are the session's dietary restrictions; selected ones
	// become the model's allergies.
	Restrictions []models.DietaryRestriction

	// UserLocation is nil when geolocation is unavailable or denied.
	UserLocation *models.Location

	// TimeCategory filters by meal period. Empty disables the filter.
	TimeCategory models.TimeCategory

	// PriorState is the persisted state from the previous cycle, or nil.
	PriorState *models.ModelState

	// Choice is feedback on the previous top item, or nil on a plain request.
	Choice *models.Choice

	// K is the number of items to return. Zero uses Limits.DefaultK.
	K int
}

// Result is the outcome of one recommendation cycle.
type Result struct {
	// Items are ranked best first. Empty (never nil) when nothing qualifies.
	Items []ScoredItem `json:"items"`

	// State is the plain data to persist for the next cycle.
	State *models.ModelState `json:"state"`

	// Outcome is one of "ranked", "empty" or "fallback".
	Outcome string `json:"outcome"`

	// Candidates is the pool size after exclusion and time filtering.
	Candidates int `json:"candidates"`

	// FeedbackApplied reports whether Choice updated the model.
	FeedbackApplied bool `json:"feedback_applied"`

	// TimeFilterSkipped reports that the time filter would have emptied the
	// pool and was not applied.
	TimeFilterSkipped bool `json:"time_filter_skipped,omitempty"`
}
