// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package vk is the outbound client for the VK newsfeed.search method.
//
// Client issues one GET per Search call with the query, count, access token
// and API version, adding start_time and end_time only when a window is
// set. Calls wait on a token-bucket limiter (golang.org/x/time/rate) sized
// to VK's per-token quota. There are no retries.
//
// CircuitBreakerClient wraps Client so that a failing VK fails fast instead
// of tying up request goroutines for the full timeout.
//
// # Errors
//
// Every failure wraps ErrUpstream. More specific sentinels are wrapped
// alongside it:
//   - ErrMalformedResponse: body was not valid JSON
//   - *APIError: VK answered 200 with an "error" object
//   - ErrCircuitOpen: the breaker rejected the call
package vk
