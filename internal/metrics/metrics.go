// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the recommendation engine.
// This package instruments:
// - Recommendation outcomes and latency
// - Feedback events
// - Catalog normalization and reloads
// - Model state resets
// - State store operations (Badger)
// - API endpoint latency and throughput

// Recommendation outcome label values.
const (
	OutcomeRanked   = "ranked"
	OutcomeEmpty    = "empty"
	OutcomeFallback = "fallback"
)

// Model state reset reasons.
const (
	ResetCorrupt           = "corrupt"
	ResetDimensionMismatch = "dimension_mismatch"
	ResetExplicit          = "explicit"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bytewise_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ranked", "empty", "fallback"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bytewise_recommend_duration_seconds",
			Help:    "Duration of a single recommendation computation in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
	)

	FeedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bytewise_feedback_total",
			Help: "Total number of feedback events applied to preference models",
		},
		[]string{"choice"}, // "dislike", "shuffle", "like"
	)

	ModelStateResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bytewise_model_state_resets_total",
			Help: "Total number of model states discarded and recreated",
		},
		[]string{"reason"},
	)

	// Catalog Metrics
	CatalogFieldErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bytewise_catalog_field_errors_total",
			Help: "Total number of catalog fields that failed to parse and fell back to defaults",
		},
		[]string{"field"},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bytewise_catalog_items",
			Help: "Number of items in the most recently loaded catalog",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bytewise_catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"result"}, // "success", "error", "unchanged"
	)

	CatalogLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bytewise_catalog_last_reload_timestamp",
			Help: "Unix timestamp of the last successful catalog reload",
		},
	)

	// State Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bytewise_store_operation_duration_seconds",
			Help:    "Duration of state store operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation", "key"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bytewise_store_operation_errors_total",
			Help: "Total number of failed state store operations",
		},
		[]string{"operation", "key", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordRecommendation records the outcome and duration of one recommendation.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordFeedback records an applied feedback event.
func RecordFeedback(choice string) {
	FeedbackTotal.WithLabelValues(choice).Inc()
}

// RecordModelStateReset records a discarded model state.
func RecordModelStateReset(reason string) {
	ModelStateResets.WithLabelValues(reason).Inc()
}

// RecordCatalogFieldError records a catalog field that degraded to its default.
func RecordCatalogFieldError(field string) {
	CatalogFieldErrors.WithLabelValues(field).Inc()
}

// RecordCatalogReload records a catalog reload attempt. On success the item
// gauge and last-reload timestamp are updated.
func RecordCatalogReload(items int, err error) {
	if err != nil {
		CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
	CatalogItems.Set(float64(items))
	CatalogLastReload.Set(float64(time.Now().Unix()))
}

// RecordCatalogUnchanged records a reload that found no new catalog data.
func RecordCatalogUnchanged() {
	CatalogReloads.WithLabelValues("unchanged").Inc()
}

// SetCatalogItems sets the current catalog size.
func SetCatalogItems(n int) {
	CatalogItems.Set(float64(n))
}

// RecordStoreOperation records a state store operation metric. Callers pass
// a nil error for missing keys.
func RecordStoreOperation(operation, key string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation, key).Observe(duration.Seconds())
	if err == nil {
		return
	}
	errorType := err.Error()
	// Truncate long error messages
	if len(errorType) > 50 {
		errorType = errorType[:50]
	}
	StoreOperationErrors.WithLabelValues(operation, key, errorType).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
