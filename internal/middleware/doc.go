// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - Request ID: propagates X-Request-ID into the response and the logging
    context so every log line for a request carries request_id
  - Prometheus Metrics: request counts, latency, and in-flight requests,
    labeled by chi route pattern

Both use the plain http.HandlerFunc middleware shape. The api package adapts
them to chi with a small wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Thread Safety:

All middleware is safe for concurrent use.
*/
package middleware
