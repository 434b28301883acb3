// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

func getCounterValue(counter prometheus.Counter) float64 {
	var m io_prometheus_client.Metric
	if err := counter.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getHistogramCount(observer prometheus.Observer) uint64 {
	var m io_prometheus_client.Metric
	if err := observer.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordCacheLookup(t *testing.T) {
	hitsBefore := getCounterValue(SearchCacheHits)
	missesBefore := getCounterValue(SearchCacheMisses)

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	if got := getCounterValue(SearchCacheHits) - hitsBefore; got != 1 {
		t.Errorf("cache hits delta = %v, want 1", got)
	}
	if got := getCounterValue(SearchCacheMisses) - missesBefore; got != 2 {
		t.Errorf("cache misses delta = %v, want 2", got)
	}
}

func TestRecordSearchFailure(t *testing.T) {
	causes := []string{"validation", "upstream_http", "circuit_open"}
	for _, cause := range causes {
		before := testutil.ToFloat64(SearchFailures.WithLabelValues(cause))
		RecordSearchFailure(cause)
		after := testutil.ToFloat64(SearchFailures.WithLabelValues(cause))
		if after-before != 1 {
			t.Errorf("SearchFailures{cause=%q} delta = %v, want 1", cause, after-before)
		}
	}
}

func TestRecordVKRequest(t *testing.T) {
	successBefore := getHistogramCount(VKRequestDuration.WithLabelValues("success"))
	errorBefore := getHistogramCount(VKRequestDuration.WithLabelValues("error"))

	RecordVKRequest(120*time.Millisecond, nil)
	RecordVKRequest(2*time.Second, errors.New("timeout"))

	if got := getHistogramCount(VKRequestDuration.WithLabelValues("success")) - successBefore; got != 1 {
		t.Errorf("success observations delta = %d, want 1", got)
	}
	if got := getHistogramCount(VKRequestDuration.WithLabelValues("error")) - errorBefore; got != 1 {
		t.Errorf("error observations delta = %d, want 1", got)
	}
}

func TestRecordSearchResults(t *testing.T) {
	before := getHistogramCount(SearchResults.WithLabelValues("places"))
	RecordSearchResults(30, 4, 2)
	if got := getHistogramCount(SearchResults.WithLabelValues("places")) - before; got != 1 {
		t.Errorf("places observations delta = %d, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/search", "200"))
	RecordAPIRequest("GET", "/search", "200", 30*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/search", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}
