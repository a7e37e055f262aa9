// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// histogramCount returns the number of observations recorded by o.
func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	m, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a prometheus.Metric", o)
	}
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return pb.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/test-record", "200"))
	beforeObs := histogramCount(t, APIRequestDuration.WithLabelValues("GET", "/api/test-record"))

	RecordAPIRequest("GET", "/api/test-record", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/test-record", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
	if got := histogramCount(t, APIRequestDuration.WithLabelValues("GET", "/api/test-record")); got != beforeObs+1 {
		t.Errorf("duration sample count = %d, want %d", got, beforeObs+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		outcome      string
		wantDuration uint64
		wantResults  uint64
	}{
		{OutcomeOK, 1, 1},
		{OutcomeCached, 0, 1},
		{OutcomeNotFound, 0, 0},
		{OutcomeNotLoaded, 0, 0},
		{OutcomeError, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			strategy := "test-" + tt.outcome
			RecordRecommendation(strategy, tt.outcome, 2*time.Millisecond, 10)

			if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(strategy, tt.outcome)); got != 1 {
				t.Errorf("recommendations_total = %v, want 1", got)
			}
			if got := histogramCount(t, RecommendationDuration.WithLabelValues(strategy)); got != tt.wantDuration {
				t.Errorf("duration samples = %d, want %d", got, tt.wantDuration)
			}
			if got := histogramCount(t, RecommendationResults.WithLabelValues(strategy)); got != tt.wantResults {
				t.Errorf("results samples = %d, want %d", got, tt.wantResults)
			}
		})
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	RecordCatalogLoad("test-src", 41, 5*time.Millisecond, nil)
	if got := testutil.ToFloat64(CatalogLoadsTotal.WithLabelValues("test-src", "success")); got != 1 {
		t.Errorf("success loads = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CatalogTracks); got != 41 {
		t.Errorf("catalog_tracks = %v, want 41", got)
	}
	if testutil.ToFloat64(CatalogLastLoad) == 0 {
		t.Error("catalog_last_load_timestamp_seconds not set")
	}

	RecordCatalogLoad("test-src", 0, time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(CatalogLoadsTotal.WithLabelValues("test-src", "error")); got != 1 {
		t.Errorf("error loads = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CatalogTracks); got != 41 {
		t.Errorf("catalog_tracks after failed load = %v, want 41", got)
	}
}

func TestRecordModelBuild(t *testing.T) {
	RecordModelBuild("test-build", 10*time.Millisecond, 123)
	if got := testutil.ToFloat64(ModelVocabularySize); got != 123 {
		t.Errorf("vocabulary = %v, want 123", got)
	}

	RecordModelBuild("test-build", 10*time.Millisecond, -1)
	if got := testutil.ToFloat64(ModelVocabularySize); got != 123 {
		t.Errorf("vocabulary after negative = %v, want unchanged 123", got)
	}
	if got := histogramCount(t, ModelBuildDuration.WithLabelValues("test-build")); got != 2 {
		t.Errorf("build samples = %d, want 2", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	RecordCacheLookup("test-cache", true)
	RecordCacheLookup("test-cache", true)
	RecordCacheLookup("test-cache", false)
	UpdateCacheSize("test-cache", 7)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test-cache")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test-cache")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("test-cache")); got != 7 {
		t.Errorf("size = %v, want 7", got)
	}
}

func TestOutcomeFor(t *testing.T) {
	errNotFound := errors.New("not found")
	errNotLoaded := errors.New("not loaded")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeOK},
		{"not found", errNotFound, OutcomeNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", errNotFound), OutcomeNotFound},
		{"not loaded", errNotLoaded, OutcomeNotLoaded},
		{"other", errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutcomeFor(tt.err, errNotFound, errNotLoaded); got != tt.want {
				t.Errorf("OutcomeFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("test", "vector")
	if testutil.ToFloat64(AppStartTime) == 0 {
		t.Error("app_start_time_seconds not set")
	}
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint() error = %v", err)
	}
	for _, p := range problems {
		t.Logf("lint %s: %s", p.Metric, p.Text)
	}
}
