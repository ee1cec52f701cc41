// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

// Package services contains the suture.Service implementations run by the
// supervisor tree: the HTTP server, the catalog file reloader and the state
// store garbage collector.
//
// Every service follows the same contract. Serve blocks until ctx is
// canceled and then returns ctx.Err(); any other return is a failure that
// suture restarts with backoff. String names the service in supervisor logs.
package services
