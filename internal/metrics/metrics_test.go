// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	for _, outcome := range []string{OutcomeRanked, OutcomeEmpty, OutcomeFallback} {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(outcome))
			RecordRecommendation(outcome, 2*time.Millisecond)
			after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(outcome))
			if after-before != 1 {
				t.Errorf("expected counter to increase by 1, got %v", after-before)
			}
		})
	}
}

func TestRecordFeedback(t *testing.T) {
	before := testutil.ToFloat64(FeedbackTotal.WithLabelValues("like"))
	RecordFeedback("like")
	RecordFeedback("like")
	if got := testutil.ToFloat64(FeedbackTotal.WithLabelValues("like")) - before; got != 2 {
		t.Errorf("expected 2 like events, got %v", got)
	}
}

func TestRecordModelStateReset(t *testing.T) {
	before := testutil.ToFloat64(ModelStateResets.WithLabelValues(ResetCorrupt))
	RecordModelStateReset(ResetCorrupt)
	if got := testutil.ToFloat64(ModelStateResets.WithLabelValues(ResetCorrupt)) - before; got != 1 {
		t.Errorf("expected 1 reset, got %v", got)
	}
}

func TestRecordCatalogFieldError(t *testing.T) {
	before := testutil.ToFloat64(CatalogFieldErrors.WithLabelValues("embedding"))
	RecordCatalogFieldError("embedding")
	if got := testutil.ToFloat64(CatalogFieldErrors.WithLabelValues("embedding")) - before; got != 1 {
		t.Errorf("expected 1 field error, got %v", got)
	}
}

func TestRecordCatalogReload(t *testing.T) {
	t.Run("success updates gauges", func(t *testing.T) {
		before := testutil.ToFloat64(CatalogReloads.WithLabelValues("success"))
		RecordCatalogReload(4, nil)
		if got := testutil.ToFloat64(CatalogReloads.WithLabelValues("success")) - before; got != 1 {
			t.Errorf("expected 1 success, got %v", got)
		}
		if got := testutil.ToFloat64(CatalogItems); got != 4 {
			t.Errorf("catalog items = %v, want 4", got)
		}
		if testutil.ToFloat64(CatalogLastReload) <= 0 {
			t.Error("expected last reload timestamp to be set")
		}
	})

	t.Run("error leaves item gauge alone", func(t *testing.T) {
		SetCatalogItems(7)
		before := testutil.ToFloat64(CatalogReloads.WithLabelValues("error"))
		RecordCatalogReload(0, errors.New("open catalog.csv: no such file"))
		if got := testutil.ToFloat64(CatalogReloads.WithLabelValues("error")) - before; got != 1 {
			t.Errorf("expected 1 error, got %v", got)
		}
		if got := testutil.ToFloat64(CatalogItems); got != 7 {
			t.Errorf("catalog items = %v, want 7", got)
		}
	})

	t.Run("unchanged", func(t *testing.T) {
		before := testutil.ToFloat64(CatalogReloads.WithLabelValues("unchanged"))
		RecordCatalogUnchanged()
		if got := testutil.ToFloat64(CatalogReloads.WithLabelValues("unchanged")) - before; got != 1 {
			t.Errorf("expected 1 unchanged, got %v", got)
		}
	})
}

func TestRecordStoreOperation(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLabel string
	}{
		{"success", nil, ""},
		{"short error", errors.New("disk full"), "disk full"},
		{
			"long error is truncated to 50 chars",
			errors.New("this is a very long error message that exceeds fifty characters and should be truncated"),
			"this is a very long error message that exceeds fif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordStoreOperation("save", "modelState", time.Millisecond, tt.err)
			if tt.wantLabel == "" {
				return
			}
			got := testutil.ToFloat64(StoreOperationErrors.WithLabelValues("save", "modelState", tt.wantLabel))
			if got < 1 {
				t.Errorf("expected error counter for label %q", tt.wantLabel)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/sessions", "201"))
	RecordAPIRequest("POST", "/api/v1/sessions", "201", 3*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/sessions", "201")) - before; got != 1 {
		t.Errorf("expected 1 request, got %v", got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	before := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/api/v1/catalog"))
	RecordRateLimitHit("/api/v1/catalog")
	if got := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/api/v1/catalog")) - before; got != 1 {
		t.Errorf("expected 1 rate limit hit, got %v", got)
	}
}

func TestTrackActiveRequestConcurrent(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}
