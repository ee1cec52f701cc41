// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package recommend

import (
	"fmt"
	"slices"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/bytewise/internal/geo"
	"github.com/tomtom215/bytewise/internal/models"
)

// Model is the online preference-vector updater for one session.
//
// A Model is rebuilt from persisted plain data on every request and is not
// safe for concurrent use.
type Model struct {
	cfg       ModelConfig
	defaultK  int
	ideal     []float64
	iteration int
	allergies []string

	items    []models.FoodItem
	location *models.Location

	// scores holds the last ranking, best first. Nil when stale.
	scores []ScoredItem

	logger zerolog.Logger
}

// NewModel restores a model from its persisted parts. A nil ideal starts a
// fresh vector filled with ModelConfig.InitialValue. The ideal and allergy
// slices are copied.
func NewModel(cfg *Config, ideal []float64, iteration int, allergies []string) *Model {
	m := &Model{
		cfg:       cfg.Model,
		defaultK:  cfg.Limits.DefaultK,
		iteration: iteration,
		allergies: slices.Clone(allergies),
		logger:    zerolog.Nop(),
	}
	if ideal == nil {
		m.ideal = InitialIdeal(cfg.Model)
	} else {
		m.ideal = slices.Clone(ideal)
	}
	return m
}

// InitialIdeal returns a fresh ideal vector.
func InitialIdeal(cfg ModelConfig) []float64 {
	v := make([]float64, cfg.Dimension)
	for i := range v {
		v[i] = cfg.InitialValue
	}
	return v
}

// LoadCatalog replaces the candidate set with the items whose restriction
// tags do not intersect the model's allergies. The input is not modified.
func (m *Model) LoadCatalog(items []models.FoodItem) {
	m.items = make([]models.FoodItem, 0, len(items))
	for i := range items {
		if items[i].HasAnyRestriction(m.allergies) {
			continue
		}
		m.items = append(m.items, items[i])
	}
	m.scores = nil
}

// SetLogger sets the logger for scoring warnings. The default discards.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (m *Model) SetLogger(logger zerolog.Logger) {
	m.logger = logger
}

// SetLocation sets the user's position. Nil means unknown.
func (m *Model) SetLocation(loc *models.Location) {
	if loc == nil {
		m.location = nil
	} else {
		l := *loc
		m.location = &l
	}
	m.scores = nil
}

// Score computes SimilarityWeight*cosine(ideal, embedding) minus the
// distance penalty. A missing embedding scores a similarity of 0.
func (m *Model) Score(item *models.FoodItem) ScoredItem {
	sim := CosineSimilarity(m.ideal, item.Embedding)
	penalty := m.distancePenalty(item)
	return ScoredItem{
		Item:            *item,
		Score:           sim*m.cfg.SimilarityWeight - penalty,
		Similarity:      sim,
		DistancePenalty: penalty,
	}
}

// distancePenalty prefers Haversine when both points are known, then the
// item's precomputed distance, then 0. Non-finite distances count as 0.
func (m *Model) distancePenalty(item *models.FoodItem) float64 {
	if m.location != nil {
		if d, ok := geo.Between(m.location, item.Coordinates()); ok {
			if isFinite(d) {
				return d
			}
			m.logger.Warn().Str("item_id", item.ID).Msg("Haversine distance is not finite, using 0")
			return 0
		}
	}
	if !isFinite(item.Distance) {
		m.logger.Warn().Str("item_id", item.ID).Msg("Item distance is not finite, using 0")
		return 0
	}
	if item.Distance < 0 {
		return 0
	}
	return item.Distance
}

// Rank scores every loaded item and returns the top n, best first. Ties
// keep catalog order. n <= 0 uses the configured default.
func (m *Model) Rank(n int) []ScoredItem {
	if n <= 0 {
		n = m.defaultK
	}

	scored := make([]ScoredItem, len(m.items))
	for i := range m.items {
		scored[i] = m.Score(&m.items[i])
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	m.scores = scored

	if n > len(scored) {
		n = len(scored)
	}
	return slices.Clone(scored[:n])
}

// Max returns the top item of the last ranking.
func (m *Model) Max() (ScoredItem, error) {
	if m.scores == nil {
		return ScoredItem{}, ErrNotScored
	}
	if len(m.scores) == 0 {
		return ScoredItem{}, ErrEmptyCatalog
	}
	return m.scores[0], nil
}

// Feedback applies a choice to item, or to the current top item when item
// is nil. Like adds embedding/UpdateDivisor to the ideal vector, dislike
// subtracts it, and shuffle leaves it unchanged. Every choice advances the
// iteration; each CenterInterval-th iteration mean-centers the vector.
func (m *Model) Feedback(choice models.Choice, item *models.FoodItem) error {
	if !choice.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidChoice, int(choice))
	}
	if item == nil {
		top, err := m.Max()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoCurrentItem, err)
		}
		item = &top.Item
	}

	var sign float64
	switch choice {
	case models.ChoiceLike:
		sign = 1
	case models.ChoiceDislike:
		sign = -1
	}

	if sign != 0 {
		n := min(len(m.ideal), len(item.Embedding))
		for i := 0; i < n; i++ {
			m.ideal[i] += sign * item.Embedding[i] / m.cfg.UpdateDivisor
		}
	}

	m.iteration++
	if m.iteration%m.cfg.CenterInterval == 0 {
		meanCenter(m.ideal)
	}

	m.scores = nil
	return nil
}

// Ideal returns a copy of the ideal vector.
func (m *Model) Ideal() []float64 {
	return slices.Clone(m.ideal)
}

// Iteration returns the feedback counter.
func (m *Model) Iteration() int {
	return m.iteration
}

// Allergies returns a copy of the excluded restriction tags.
func (m *Model) Allergies() []string {
	return slices.Clone(m.allergies)
}

// Items returns the loaded candidate set.
func (m *Model) Items() []models.FoodItem {
	return m.items
}
