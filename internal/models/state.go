// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package models

import (
	"fmt"
	"slices"
)

// Choice is user feedback on the previously shown top item.
type Choice int

// Feedback values as sent by clients.
const (
	ChoiceDislike Choice = 0
	ChoiceShuffle Choice = 1
	ChoiceLike    Choice = 2
)

// Valid reports whether c is one of the defined choices.
func (c Choice) Valid() bool {
	return c >= ChoiceDislike && c <= ChoiceLike
}

func (c Choice) String() string {
	switch c {
	case ChoiceDislike:
		return "dislike"
	case ChoiceShuffle:
		return "shuffle"
	case ChoiceLike:
		return "like"
	default:
		return fmt.Sprintf("choice(%d)", int(c))
	}
}

// ModelState is the persisted form of a preference model plus the session's
// interaction bookkeeping. It is plain data; the engine rebuilds the model
// from it on every request.
type ModelState struct {
	Ideal           []float64 `json:"ideal"`
	Iteration       int       `json:"iteration"`
	Allergies       []string  `json:"allergies"`
	SkippedItemIDs  []string  `json:"skippedItemIds"`
	DislikedItemIDs []string  `json:"dislikedItemIds"`
	LastItemID      string    `json:"lastItemId,omitempty"`
}

// Clone returns a deep copy of s. A nil receiver returns nil.
func (s *ModelState) Clone() *ModelState {
	if s == nil {
		return nil
	}
	return &ModelState{
		Ideal:           slices.Clone(s.Ideal),
		Iteration:       s.Iteration,
		Allergies:       slices.Clone(s.Allergies),
		SkippedItemIDs:  slices.Clone(s.SkippedItemIDs),
		DislikedItemIDs: slices.Clone(s.DislikedItemIDs),
		LastItemID:      s.LastItemID,
	}
}

// ExcludedIDs returns the union of skipped and disliked item IDs.
func (s *ModelState) ExcludedIDs() map[string]struct{} {
	if s == nil {
		return map[string]struct{}{}
	}
	out := make(map[string]struct{}, len(s.SkippedItemIDs)+len(s.DislikedItemIDs))
	for _, id := range s.SkippedItemIDs {
		out[id] = struct{}{}
	}
	for _, id := range s.DislikedItemIDs {
		out[id] = struct{}{}
	}
	return out
}
