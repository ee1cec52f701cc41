// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

// Package recommend ranks food items for a session from a learned
// preference vector, dietary filters, distance and meal period.
//
// # Model
//
// The preference model is an online linear updater over a dense embedding
// (100 dimensions by default). Each item scores
//
//	score = SimilarityWeight * cosine(ideal, embedding) - distancePenalty
//
// where the penalty is the Haversine distance in miles when both the user
// and the item have coordinates, otherwise the item's precomputed distance.
// Feedback moves the ideal vector toward (like) or away from (dislike) the
// item's embedding by embedding/UpdateDivisor. Every CenterInterval-th
// feedback mean-centers the vector.
//
// # Cycle
//
// Orchestrator.Recommend runs one request:
//
//  1. Exclude items the session skipped or disliked
//  2. Keep items in the requested meal period or Other (fail open)
//  3. Recompute distances when the user location is known
//  4. Restore the model from plain ModelState, or start fresh
//  5. Drop items whose restriction tags intersect the selected restrictions
//  6. Apply feedback to the previously returned top item
//  7. Rank and record the new top item in the returned state
//
// A ranking failure degrades to nearest-first ordering. Corrupt or
// mismatched state is discarded. Neither is returned as an error.
//
// # Usage
//
//	orch := recommend.NewOrchestrator(recommend.DefaultConfig(), logger)
//
//	like := models.ChoiceLike
//	res, err := orch.Next(ctx, store, sessionID, &like, 0)
//	if errors.Is(err, recommend.ErrEmptyCatalog) {
//	    // no catalog loaded yet
//	}
//
// # Thread Safety
//
// Orchestrator is stateless between calls and safe for concurrent use.
// Model is rebuilt per request and must not be shared.
package recommend
