// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/bytewise/internal/geo"
	"github.com/tomtom215/bytewise/internal/logging"
	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/models"
	"github.com/tomtom215/bytewise/internal/state"
)

// Orchestrator runs one recommendation cycle: exclusion, time filtering,
// distance calculation, model restore, feedback and ranking.
//
// Orchestrator holds no session state and is safe for concurrent use.
type Orchestrator struct {
	cfg         *Config
	logger      zerolog.Logger
	categorizer Categorizer

	// rank is replaced in tests to exercise the fallback path.
	rank func(m *Model, k int) []ScoredItem
}

// Categorizer derives a meal period from availability text at request time.
type Categorizer interface {
	Categorize(text string) models.TimeCategory
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithCategorizer re-derives each item's TimeCategory from its Availability
// text on every cycle, so clock-dependent hours follow the current time
// instead of the time the catalog was loaded.
func WithCategorizer(c Categorizer) OrchestratorOption {
	return func(o *Orchestrator) {
		o.categorizer = c
	}
}

// NewOrchestrator creates an orchestrator. The config is cloned.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewOrchestrator(cfg *Config, logger zerolog.Logger, opts ...OrchestratorOption) *Orchestrator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	o := &Orchestrator{
		cfg:    cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		rank:   (*Model).Rank,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Recommend runs one cycle. It never fails: parse, state and scoring
// problems degrade the result and are logged and counted.
func (o *Orchestrator) Recommend(ctx context.Context, req Request) Result {
	start := time.Now()
	log := o.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		log = log.With().Str("request_id", id).Logger()
	}
	if id := logging.SessionIDFromContext(ctx); id != "" {
		log = log.With().Str("session_id", id).Logger()
	}

	st := o.restoreState(&log, req.PriorState)
	st.Allergies = models.SelectedRestrictionNames(req.Restrictions)

	choice := req.Choice
	if choice != nil && !choice.Valid() {
		log.Warn().Int("choice", int(*choice)).Msg("Ignoring invalid feedback choice")
		choice = nil
	}

	var previous *models.FoodItem
	if choice != nil {
		previous = findItem(req.Catalog, st.LastItemID)
		if previous == nil {
			log.Debug().Str("last_item_id", st.LastItemID).Msg("Previous item not in catalog, feedback will not update the model")
		}
	}

	// Only the prior skip and dislike sets exclude; this cycle's feedback
	// joins them in the returned state and takes effect next cycle.
	pool := excludeIDs(req.Catalog, st.ExcludedIDs())
	pool = o.recategorize(pool)
	pool, timeSkipped := filterByTime(pool, req.TimeCategory)
	if timeSkipped {
		log.Debug().Str("time_category", string(req.TimeCategory)).Msg("Time filter would empty the pool, ignoring it")
	}

	userLoc := usableLocation(req.UserLocation)
	if userLoc != nil {
		pool = withDistances(&log, pool, userLoc)
	}

	result := Result{
		Items:             []ScoredItem{},
		Candidates:        len(pool),
		TimeFilterSkipped: timeSkipped,
	}

	if len(pool) == 0 {
		st.LastItemID = ""
		result.State = st
		result.Outcome = metrics.OutcomeEmpty
		metrics.RecordRecommendation(result.Outcome, time.Since(start))
		log.Debug().Msg("No candidates for recommendation")
		return result
	}

	model := NewModel(o.cfg, st.Ideal, st.Iteration, st.Allergies)
	model.SetLogger(log)
	model.SetLocation(userLoc)
	model.LoadCatalog(pool)

	if choice != nil && previous != nil {
		if err := model.Feedback(*choice, previous); err != nil {
			log.Warn().Err(err).Msg("Feedback not applied")
		} else {
			result.FeedbackApplied = true
			metrics.RecordFeedback(choice.String())
		}
	}

	k := o.limitK(req.K)
	items, err := o.safeRank(model, k)
	if err != nil {
		log.Error().Err(err).Msg("Ranking failed, falling back to distance order")
		items = rankByDistance(model.Items(), k)
		result.Outcome = metrics.OutcomeFallback
	} else {
		result.Outcome = metrics.OutcomeRanked
	}
	if len(items) == 0 {
		result.Outcome = metrics.OutcomeEmpty
	}
	result.Items = items

	ideal := model.Ideal()
	if allFinite(ideal) {
		st.Ideal = ideal
		st.Iteration = model.Iteration()
	} else {
		log.Warn().Msg("Preference vector became non-finite, keeping previous state")
	}

	if result.FeedbackApplied {
		switch *choice {
		case models.ChoiceShuffle:
			st.SkippedItemIDs = appendUnique(st.SkippedItemIDs, previous.ID)
		case models.ChoiceDislike:
			st.DislikedItemIDs = appendUnique(st.DislikedItemIDs, previous.ID)
		}
	}

	st.LastItemID = ""
	if len(items) > 0 {
		st.LastItemID = items[0].Item.ID
	}
	result.State = st

	metrics.RecordRecommendation(result.Outcome, time.Since(start))
	log.Debug().
		Int("candidates", result.Candidates).
		Int("returned", len(items)).
		Int("iteration", st.Iteration).
		Str("outcome", result.Outcome).
		Msg("Recommendation complete")

	return result
}

// Next loads the session from repo, runs one cycle and saves the new model
// state. Missing restrictions, parameters or model state are treated as
// empty; a corrupt model state is discarded. An absent catalog returns
// ErrEmptyCatalog. k follows the same limits as Request.K.
func (o *Orchestrator) Next(ctx context.Context, repo StateRepository, sessionID string, choice *models.Choice, k int) (Result, error) {
	catalog, err := repo.LoadCatalog(ctx)
	if errors.Is(err, state.ErrNotFound) {
		return Result{}, ErrEmptyCatalog
	}
	if err != nil {
		return Result{}, fmt.Errorf("load catalog: %w", err)
	}

	restrictions, err := repo.LoadRestrictions(ctx, sessionID)
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		return Result{}, fmt.Errorf("load restrictions: %w", err)
	}

	params, err := repo.LoadParameters(ctx, sessionID)
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		return Result{}, fmt.Errorf("load parameters: %w", err)
	}

	prior, err := repo.LoadModelState(ctx, sessionID)
	switch {
	case err == nil:
	case errors.Is(err, state.ErrNotFound):
		prior = nil
	case errors.Is(err, state.ErrCorrupt):
		o.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Discarding corrupt model state")
		metrics.RecordModelStateReset(metrics.ResetCorrupt)
		prior = nil
	default:
		return Result{}, fmt.Errorf("load model state: %w", err)
	}

	req := Request{
		Catalog:      catalog,
		Restrictions: restrictions,
		PriorState:   prior,
		Choice:       choice,
		K:            k,
	}
	if params != nil {
		req.UserLocation = params.UserLocation()
		req.TimeCategory = params.TimeCategory
	}

	result := o.Recommend(ctx, req)

	if err := repo.SaveModelState(ctx, sessionID, result.State); err != nil {
		return result, fmt.Errorf("save model state: %w", err)
	}
	return result, nil
}

// restoreState validates prior and returns a working copy, or a fresh state
// when prior is missing or unusable.
func (o *Orchestrator) restoreState(log *zerolog.Logger, prior *models.ModelState) *models.ModelState {
	if prior == nil {
		return o.freshState()
	}

	switch {
	case len(prior.Ideal) != o.cfg.Model.Dimension:
		log.Warn().
			Int("got", len(prior.Ideal)).
			Int("want", o.cfg.Model.Dimension).
			Msg("Model state dimension mismatch, starting fresh")
		metrics.RecordModelStateReset(metrics.ResetDimensionMismatch)
		return o.freshState()
	case !allFinite(prior.Ideal) || prior.Iteration < 0:
		log.Warn().Int("iteration", prior.Iteration).Msg("Model state corrupt, starting fresh")
		metrics.RecordModelStateReset(metrics.ResetCorrupt)
		return o.freshState()
	}

	st := prior.Clone()
	if st.SkippedItemIDs == nil {
		st.SkippedItemIDs = []string{}
	}
	if st.DislikedItemIDs == nil {
		st.DislikedItemIDs = []string{}
	}
	return st
}

func (o *Orchestrator) freshState() *models.ModelState {
	return &models.ModelState{
		Ideal:           InitialIdeal(o.cfg.Model),
		Allergies:       []string{},
		SkippedItemIDs:  []string{},
		DislikedItemIDs: []string{},
	}
}

func (o *Orchestrator) limitK(k int) int {
	if k <= 0 {
		return o.cfg.Limits.DefaultK
	}
	if k > o.cfg.Limits.MaxK {
		return o.cfg.Limits.MaxK
	}
	return k
}

// safeRank runs the ranker and converts a panic into an error.
func (o *Orchestrator) safeRank(m *Model, k int) (items []ScoredItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("rank panicked: %v", r)
		}
	}()
	return o.rank(m, k), nil
}

// rankByDistance orders items nearest first. The score is the negated
// distance so that higher is still better.
func rankByDistance(items []models.FoodItem, k int) []ScoredItem {
	out := make([]ScoredItem, len(items))
	for i := range items {
		d := items[i].Distance
		if !isFinite(d) || d < 0 {
			d = 0
		}
		out[i] = ScoredItem{Item: items[i], Score: -d, DistancePenalty: d}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistancePenalty < out[j].DistancePenalty
	})
	if k < len(out) {
		out = out[:k]
	}
	return out
}

// recategorize refreshes TimeCategory in place for items that carry
// availability text. items must already be a private copy.
func (o *Orchestrator) recategorize(items []models.FoodItem) []models.FoodItem {
	if o.categorizer == nil {
		return items
	}
	for i := range items {
		if items[i].Availability != "" {
			items[i].TimeCategory = o.categorizer.Categorize(items[i].Availability)
		}
	}
	return items
}

func excludeIDs(items []models.FoodItem, excluded map[string]struct{}) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(items))
	for i := range items {
		if _, skip := excluded[items[i].ID]; skip {
			continue
		}
		out = append(out, items[i])
	}
	return out
}

// filterByTime keeps items in the requested category or Other. When that
// would leave nothing the input is returned unchanged and skipped is true.
func filterByTime(items []models.FoodItem, category models.TimeCategory) (out []models.FoodItem, skipped bool) {
	if category == "" || len(items) == 0 {
		return items, false
	}
	out = make([]models.FoodItem, 0, len(items))
	for i := range items {
		tc := items[i].TimeCategory
		if tc == category || tc == models.TimeCategoryOther {
			out = append(out, items[i])
		}
	}
	if len(out) == 0 {
		return items, true
	}
	return out, false
}

// withDistances returns copies of items with Distance set to the miles from
// user. Items without coordinates get 0.
func withDistances(log *zerolog.Logger, items []models.FoodItem, user *models.Location) []models.FoodItem {
	out := make([]models.FoodItem, len(items))
	for i := range items {
		out[i] = items[i]
		d, ok := geo.Between(user, items[i].Coordinates())
		if !ok {
			out[i].Distance = 0
			continue
		}
		if !isFinite(d) {
			log.Warn().Str("item_id", items[i].ID).Msg("Distance is not a number, using 0")
			d = 0
		}
		out[i].Distance = d
	}
	return out
}

// usableLocation drops locations with non-finite coordinates.
func usableLocation(loc *models.Location) *models.Location {
	if loc == nil || !isFinite(loc.Latitude) || !isFinite(loc.Longitude) {
		return nil
	}
	return loc
}

func findItem(items []models.FoodItem, id string) *models.FoodItem {
	if id == "" {
		return nil
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item
		}
	}
	return nil
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}
	return true
}
