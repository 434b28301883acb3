// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package api serves the search page and its JSON twin over a chi router.

# Routes

	GET /                      redirect to /search
	GET /search                HTML search page
	GET /api/v1/search         JSON search (APIResponse envelope)
	GET /api/v1/health/live    liveness
	GET /api/v1/health/ready   readiness (model loaded, cache reachable)
	GET /metrics               Prometheus
	GET /swagger/*             OpenAPI UI

# Status Codes

Both search endpoints share semantics:

  - blank or missing query: 200 with no posts and no map
  - missing or non-numeric count, count out of range, malformed start_time: 400
  - VK unreachable or failing: 502, with the page still rendered (HTML) or
    an EXTERNAL_SERVICE_FAILED error (JSON)

# Middleware

Global: request ID with logging context, RealIP, Recoverer, CORS. Search
and API routes add per-IP rate limiting (go-chi/httprate), security
headers, Prometheus instrumentation and gzip.
*/
package api
