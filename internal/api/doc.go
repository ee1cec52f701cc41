// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package api provides the HTTP REST API layer for Bytewise.

The API exposes recommendation sessions. A client creates a session, stores
its dietary restrictions and parameters, then calls the recommendations
endpoint repeatedly, sending feedback on the item it was shown last.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers backed by the Badger state store and the
    recommendation orchestrator
  - Response formatting: every response uses the models.APIResponse envelope
  - Rate limiting and CORS via go-chi/httprate and go-chi/cors

Endpoints:

	POST   /api/v1/sessions
	DELETE /api/v1/sessions/{id}
	GET    /api/v1/sessions/{id}/restrictions
	PUT    /api/v1/sessions/{id}/restrictions
	POST   /api/v1/sessions/{id}/restrictions
	PATCH  /api/v1/sessions/{id}/restrictions/{restrictionID}
	GET    /api/v1/sessions/{id}/parameters
	PUT    /api/v1/sessions/{id}/parameters
	POST   /api/v1/sessions/{id}/recommendations
	DELETE /api/v1/sessions/{id}/state
	GET    /api/v1/catalog
	PUT    /api/v1/catalog
	GET    /api/v1/health/live
	GET    /api/v1/health/ready
	GET    /metrics

Feedback:

The recommendations body carries an optional choice (0 dislike, 1 shuffle,
2 like) that applies to the top item of the previous response for the same
session. The first call for a session omits it.

	POST /api/v1/sessions/{id}/recommendations
	{"choice": 2}

Usage Example:

	handler := api.NewHandler(store, orchestrator, normalizer, cfg, logger)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Thread Safety:

Handlers are safe for concurrent use. Two concurrent recommendation calls for
the same session are not serialized; the later save wins.
*/
package api
