// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package api

import (
	"context"
	"html/template"
	"time"

	"github.com/tomtom215/postmap/internal/search"
)

// SearchService runs searches. Satisfied by *search.Service.
type SearchService interface {
	Search(ctx context.Context, req search.Request) (*search.Result, error)
	Ping(ctx context.Context) error
	CacheStats() search.CacheStats
}

// ModelStatus reports whether the embedding model is loaded.
// Satisfied by *nlp.Model.
type ModelStatus interface {
	Ready() bool
	Provider() string
}

// BreakerStatus reports a circuit breaker state. Satisfied by
// *vk.CircuitBreakerClient.
type BreakerStatus interface {
	State() string
}

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Search       SearchService
	Model        ModelStatus
	VKBreaker    BreakerStatus // optional
	Location     *time.Location
	DefaultCount int
	MaxCount     int
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	search       SearchService
	model        ModelStatus
	vkBreaker    BreakerStatus
	location     *time.Location
	defaultCount int
	maxCount     int
	page         *template.Template
	startTime    time.Time
}

// NewHandler creates a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		search:       cfg.Search,
		model:        cfg.Model,
		vkBreaker:    cfg.VKBreaker,
		location:     loc,
		defaultCount: cfg.DefaultCount,
		maxCount:     cfg.MaxCount,
		page:         newPageTemplate(),
		startTime:    time.Now(),
	}
}
