// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package search

import (
	"errors"
	"fmt"

	"github.com/tomtom215/postmap/internal/vk"
)

// Failure causes, used as the cause label of postmap_search_failures_total.
const (
	CauseValidation        = "validation"
	CauseUpstreamHTTP      = "upstream_http"
	CauseUpstreamAPI       = "upstream_api"
	CauseMalformedResponse = "malformed_response"
	CauseCircuitOpen       = "circuit_open"
	CauseRanking           = "ranking"
	CauseMapRender         = "map_render"
)

// ValidationError reports a request parameter that cannot be used.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamCause classifies a search failure into one of the Cause
// constants. Errors not recognised as validation or a specific upstream
// failure count as upstream_http.
func UpstreamCause(err error) string {
	var apiErr *vk.APIError
	switch {
	case IsValidationError(err):
		return CauseValidation
	case errors.Is(err, vk.ErrCircuitOpen):
		return CauseCircuitOpen
	case errors.Is(err, vk.ErrMalformedResponse):
		return CauseMalformedResponse
	case errors.As(err, &apiErr):
		return CauseUpstreamAPI
	default:
		return CauseUpstreamHTTP
	}
}

// noticeFor returns the user-facing message for an upstream failure cause.
func noticeFor(cause string) string {
	switch cause {
	case CauseCircuitOpen:
		return "The post search service is temporarily unavailable after repeated failures. Please try again in a minute."
	case CauseUpstreamAPI:
		return "The post search service rejected the request. No posts could be loaded."
	case CauseMalformedResponse:
		return "The post search service returned an unreadable response. No posts could be loaded."
	default:
		return "The post search service could not be reached. No posts could be loaded."
	}
}
