// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package main is the entry point for the Bytewise server.

Bytewise recommends one food item at a time from a campus dining catalog,
learning a per-session taste vector from like, skip and dislike feedback.

# Application Architecture

	RootSupervisor ("bytewise")
	├── DataSupervisor ("data-layer")
	│   └── Badger value log GC (STORAGE_GC_INTERVAL > 0)
	├── CatalogSupervisor ("catalog-layer")
	│   └── Catalog reload (CATALOG_PATH set)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog, with an slog bridge for the supervisor
 3. State store: BadgerDB (on disk or in memory)
 4. Catalog pipeline: time-of-day categorizer and record normalizer
 5. Recommendation orchestrator
 6. HTTP router and server
 7. Supervisor tree

# Configuration

Settings are layered (highest priority wins):
  - Environment variables (HTTP_PORT, BADGER_PATH, CATALOG_PATH, ...)
  - Config file (CONFIG_PATH or config.yaml)
  - Built-in defaults

Example:

	export BADGER_PATH=/data/bytewise
	export CATALOG_PATH=/data/dining.csv
	export CATALOG_RELOAD_INTERVAL=5m
	./bytewise

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to HTTP_SHUTDOWN_TIMEOUT, then the state store is closed.
*/
package main
