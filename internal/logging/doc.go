// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

// Package logging provides centralized zerolog-based structured logging for Bytewise.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once at startup with Init
//   - JSON output for production, console output for development
//   - Context-aware logging that carries request and session IDs
//   - An slog adapter so the Suture supervisor logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Model state discarded")
//
// Components create child loggers with a component field:
//
//	logger := logging.WithComponent("catalog")
//
// # Configuration
//
// Logging is configured from the logging section of the application config
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER environment variables).
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
