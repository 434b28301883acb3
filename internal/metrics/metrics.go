// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of inbound rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Search Pipeline Metrics
	SearchCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postmap_search_cache_hits_total",
			Help: "Search responses served from cache",
		},
	)

	SearchCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postmap_search_cache_misses_total",
			Help: "Search responses fetched from VK",
		},
	)

	SearchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postmap_search_failures_total",
			Help: "Search requests that degraded, by cause",
		},
		[]string{"cause"}, // validation, upstream_http, upstream_api, malformed_response, circuit_open, ranking, map_render
	)

	SearchResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postmap_search_results",
			Help:    "Number of items per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
		},
		[]string{"kind"}, // posts, geo_points, places
	)

	// VK Upstream Metrics
	VKRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postmap_vk_request_duration_seconds",
			Help:    "Duration of newsfeed.search calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"}, // success, error
	)

	VKRateLimitWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "postmap_vk_rate_limit_wait_seconds",
			Help:    "Time spent waiting for the outbound rate limiter",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
		},
	)

	// Embedding Metrics
	EmbeddingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postmap_embedding_duration_seconds",
			Help:    "Duration of embedding batches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	EmbeddingBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "postmap_embedding_batch_size",
			Help:    "Texts per embedding batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 201},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a search cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		SearchCacheHits.Inc()
	} else {
		SearchCacheMisses.Inc()
	}
}

// RecordSearchFailure counts a degraded search by cause.
func RecordSearchFailure(cause string) {
	SearchFailures.WithLabelValues(cause).Inc()
}

// RecordSearchResults records result sizes for one completed search.
func RecordSearchResults(posts, geoPoints, places int) {
	SearchResults.WithLabelValues("posts").Observe(float64(posts))
	SearchResults.WithLabelValues("geo_points").Observe(float64(geoPoints))
	SearchResults.WithLabelValues("places").Observe(float64(places))
}

// RecordVKRequest records one newsfeed.search call.
func RecordVKRequest(duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	VKRequestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordEmbedding records one embedding batch.
func RecordEmbedding(provider string, batchSize int, duration time.Duration) {
	EmbeddingDuration.WithLabelValues(provider).Observe(duration.Seconds())
	EmbeddingBatchSize.Observe(float64(batchSize))
}
