// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package api

import "errors"

// Error codes used in API error responses.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeCatalogNotLoaded   = "CATALOG_NOT_LOADED"
	ErrCodeStorage            = "STORAGE_ERROR"
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

var (
	// ErrEmptyBody indicates a request that requires a JSON body had none.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrPartialLocation indicates only one of latitude and longitude was sent.
	ErrPartialLocation = errors.New("latitude and longitude must be provided together")
)
