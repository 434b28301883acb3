// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package middleware provides HTTP middleware for the search server.

Key Components:

  - PrometheusMetrics: per-route request count, latency and in-flight gauge
  - Compression: gzip for HTML and JSON responses

Both are written as func(http.HandlerFunc) http.HandlerFunc and adapted to
chi in the api package:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

PrometheusMetrics labels requests with the chi route pattern
("/api/v1/search") rather than the raw path, so arbitrary URLs cannot grow
the label set. Requests that match no route are labelled "unmatched".
*/
package middleware
