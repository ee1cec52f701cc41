// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package config loads and validates Bytewise configuration.

# Sources

Configuration is layered with Koanf v2, lowest priority first:

 1. Built-in defaults (structs provider)
 2. YAML file from CONFIG_PATH, ./config.yaml or /etc/bytewise/config.yaml
 3. Environment variables listed in envMappings

# Example config.yaml

	server:
	  port: 8080
	  environment: production
	storage:
	  path: /data/bytewise
	  catalog_cache_ttl: 1m
	catalog:
	  path: /data/dining.csv
	  reload_interval: 5m
	recommend:
	  dimension: 100
	  similarity_weight: 5
	time_of_day:
	  preset: narrow
	security:
	  cors_origins: [https://bytewise.example.com]
	logging:
	  level: info
	  format: json

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_*_TIMEOUT, ENVIRONMENT
	BADGER_PATH, STORAGE_IN_MEMORY, STORAGE_SYNC_WRITES, STORAGE_GC_INTERVAL, CATALOG_CACHE_TTL
	CATALOG_PATH, CATALOG_RELOAD_INTERVAL
	RECOMMEND_DIMENSION, RECOMMEND_INITIAL_VALUE, RECOMMEND_UPDATE_DIVISOR,
	RECOMMEND_CENTER_INTERVAL, RECOMMEND_SIMILARITY_WEIGHT, RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K
	TIME_OF_DAY_PRESET, BREAKFAST_START, BREAKFAST_END, LUNCH_START, LUNCH_END, DINNER_START, DINNER_END
	CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Durations use Go syntax ("30s", "5m").

# Validation

Load calls Config.Validate, which returns the first invalid setting with the
name of the variable that controls it.
*/
package config
