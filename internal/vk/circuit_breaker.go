// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package vk

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/postmap/internal/breaker"
	"github.com/tomtom215/postmap/internal/models"
)

// BreakerName labels the VK breaker in metrics and logs.
const BreakerName = "vk-api"

// CircuitBreakerClient wraps a Searcher with a circuit breaker. It opens
// after at least 10 calls in a minute with a 60% failure rate and half-opens
// after 60 seconds.
type CircuitBreakerClient struct {
	client Searcher
	cb     *breaker.Breaker[*models.SearchResponse]
}

// NewCircuitBreakerClient wraps client.
func NewCircuitBreakerClient(client Searcher) *CircuitBreakerClient {
	return newCircuitBreakerClient(client, breaker.Settings{})
}

func newCircuitBreakerClient(client Searcher, s breaker.Settings) *CircuitBreakerClient {
	// A caller that gives up is not evidence that VK is unhealthy.
	s.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, context.Canceled)
	}
	return &CircuitBreakerClient{
		client: client,
		cb:     breaker.New[*models.SearchResponse](BreakerName, s),
	}
}

// Search runs the wrapped Search through the breaker.
func (c *CircuitBreakerClient) Search(ctx context.Context, params SearchParams) (*models.SearchResponse, error) {
	resp, err := c.cb.Execute(func() (*models.SearchResponse, error) {
		return c.client.Search(ctx, params)
	})
	if err != nil {
		if breaker.IsRejected(err) {
			return nil, fmt.Errorf("%w: %w: %w", ErrUpstream, ErrCircuitOpen, err)
		}
		return nil, err
	}
	return resp, nil
}

// State returns the breaker state for health reporting.
func (c *CircuitBreakerClient) State() string {
	return c.cb.State()
}
