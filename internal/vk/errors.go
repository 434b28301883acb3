// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package vk

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream marks every failure to obtain a search response.
	ErrUpstream = errors.New("vk upstream failure")

	// ErrMalformedResponse marks a body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed vk response")

	// ErrCircuitOpen marks a call rejected by the circuit breaker.
	ErrCircuitOpen = errors.New("vk circuit breaker open")
)

// APIError is a VK API-level error delivered in a 200 response body.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vk api error %d: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrUpstream) hold for API errors.
func (e *APIError) Is(target error) bool {
	return target == ErrUpstream
}

// StatusError is a non-200 HTTP response from VK.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("newsfeed.search request failed with status %d: %s", e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrUpstream) hold for status errors.
func (e *StatusError) Is(target error) bool {
	return target == ErrUpstream
}
