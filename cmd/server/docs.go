// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// @title Postmap API
// @version 1.0
// @description Keyword search over VK posts with semantic ranking and geotag aggregation.
// @description
// @description ## Rate Limiting
// @description
// @description Search endpoints are limited per client IP (default 60 requests per minute).
// @description Rejected requests receive 429 with the standard error envelope.
// @description
// @description ## Errors
// @description
// @description Every JSON response uses the envelope `{success, data, error, metadata}`.
// @description Upstream VK failures return 502 with `error.details.cause`.
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Search
// @tag.description Post search, ranking and place statistics
// @tag.name Core
// @tag.description Liveness and readiness probes
package main
