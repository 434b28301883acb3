// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry through promauto at
// package init. Callers use the Record* helpers rather than touching the
// vectors directly so label sets stay consistent.
//
// Metric families:
//   - api_*: inbound HTTP traffic (see middleware.PrometheusMetrics)
//   - postmap_search_*: pipeline outcomes, cache efficiency, result sizes
//   - postmap_vk_*: outbound newsfeed.search calls
//   - postmap_embedding_*: embedding model latency
//   - circuit_breaker_*: breaker state per upstream
package metrics
