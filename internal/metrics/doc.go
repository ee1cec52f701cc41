// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:3857/metrics

# Available Metrics

Recommendation Metrics:
  - bytewise_recommendations_total: Recommendation requests (counter)
    Labels: outcome (ranked, empty, fallback)
  - bytewise_recommend_duration_seconds: Computation time (histogram)
  - bytewise_feedback_total: Applied feedback events (counter)
    Labels: choice (dislike, shuffle, like)
  - bytewise_model_state_resets_total: Discarded model states (counter)
    Labels: reason (corrupt, dimension_mismatch, explicit)

Catalog Metrics:
  - bytewise_catalog_field_errors_total: Fields that fell back to defaults (counter)
    Labels: field
  - bytewise_catalog_items: Current catalog size (gauge)
  - bytewise_catalog_reloads_total: Reload attempts (counter)
    Labels: result (success, error, unchanged)
  - bytewise_catalog_last_reload_timestamp: Unix time of last good reload (gauge)

State Store Metrics:
  - bytewise_store_operation_duration_seconds (histogram)
    Labels: operation (load, save, delete), key
  - bytewise_store_operation_errors_total (counter)
    Labels: operation, key, error_type

API Metrics:
  - api_requests_total: Labels method, endpoint, status_code
  - api_request_duration_seconds: Labels method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Labels endpoint

# Usage

Components call the Record* helpers rather than touching collectors directly:

	start := time.Now()
	items, state := orchestrator.Recommend(...)
	metrics.RecordRecommendation(metrics.OutcomeRanked, time.Since(start))

# Thread Safety

All helpers are safe for concurrent use.
*/
package metrics
