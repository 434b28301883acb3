// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package search

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/tomtom215/postmap/internal/geo"
	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/metrics"
	"github.com/tomtom215/postmap/internal/models"
	"github.com/tomtom215/postmap/internal/timewindow"
	"github.com/tomtom215/postmap/internal/vk"
)

// Ranker orders posts by relevance to a query.
type Ranker interface {
	Rank(ctx context.Context, query string, posts []models.Post) ([]models.RankedPost, error)
}

// MapRenderer renders geo points as an embeddable map.
type MapRenderer interface {
	Render(points []models.GeoPoint) (template.HTML, error)
}

// Request is one search as submitted by a user.
type Request struct {
	Query string
	Count int
	// StartTime is "YYYY-MM-DDTHH:MM" in the service time zone, or empty
	// for no time filter.
	StartTime string
}

// Result is everything a search page shows.
type Result struct {
	Query      string                  `json:"query"`
	Count      int                     `json:"count"`
	Window     timewindow.Window       `json:"window"`
	Posts      []models.RankedPost     `json:"posts"`
	Points     []models.GeoPoint       `json:"points"`
	Statistics []models.PlaceStatistic `json:"statistics"`
	MapHTML    template.HTML           `json:"-"`
	TotalCount int                     `json:"total_count"`
	CacheHit   bool                    `json:"cache_hit"`
	// Degraded is set when a stage failed and the result is partial.
	Degraded bool   `json:"degraded"`
	Notice   string `json:"notice,omitempty"`
}

// HasMap reports whether the result carries map markup.
func (r *Result) HasMap() bool {
	return r.MapHTML != ""
}

// EmptyResult is the result of a search that found nothing.
func EmptyResult(req Request) *Result {
	return &Result{
		Query:      req.Query,
		Count:      req.Count,
		Posts:      []models.RankedPost{},
		Points:     []models.GeoPoint{},
		Statistics: []models.PlaceStatistic{},
	}
}

// Config wires a Service.
type Config struct {
	Searcher  vk.Searcher
	Cache     ResponseCache
	Ranker    Ranker
	Renderer  MapRenderer
	Converter *timewindow.Converter
	// MaxCount bounds Request.Count. Zero means no upper bound.
	MaxCount int
}

// Service runs searches. It is safe for concurrent use.
type Service struct {
	searcher  vk.Searcher
	cache     ResponseCache
	ranker    Ranker
	renderer  MapRenderer
	converter *timewindow.Converter
	maxCount  int
}

// NewService creates a Service. Searcher, Cache, Ranker and Renderer are
// required.
func NewService(cfg Config) (*Service, error) {
	switch {
	case cfg.Searcher == nil:
		return nil, errors.New("search: searcher is required")
	case cfg.Cache == nil:
		return nil, errors.New("search: cache is required")
	case cfg.Ranker == nil:
		return nil, errors.New("search: ranker is required")
	case cfg.Renderer == nil:
		return nil, errors.New("search: renderer is required")
	}
	conv := cfg.Converter
	if conv == nil {
		var err error
		if conv, err = timewindow.LoadConverter(timewindow.DefaultZone); err != nil {
			return nil, err
		}
	}
	return &Service{
		searcher:  cfg.Searcher,
		cache:     cfg.Cache,
		ranker:    cfg.Ranker,
		renderer:  cfg.Renderer,
		converter: conv,
		maxCount:  cfg.MaxCount,
	}, nil
}

// Ping reports whether the cache backend is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

// CacheStats reports response cache activity.
func (s *Service) CacheStats() CacheStats {
	return s.cache.Stats()
}

// Search runs the pipeline for req.
//
// A blank query returns an empty result without contacting VK. Invalid
// parameters return a *ValidationError and no result. Upstream failures
// return both an empty, degraded result and an error wrapping
// vk.ErrUpstream, so callers can still render a page.
func (s *Service) Search(ctx context.Context, req Request) (*Result, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return EmptyResult(req), nil
	}

	if req.Count < 1 || (s.maxCount > 0 && req.Count > s.maxCount) {
		msg := "must be at least 1"
		if s.maxCount > 0 {
			msg = fmt.Sprintf("must be between 1 and %d", s.maxCount)
		}
		err := &ValidationError{Field: "count", Message: msg}
		s.recordFailure(ctx, CauseValidation, err)
		return nil, err
	}

	window, err := s.converter.Window(req.StartTime)
	if err != nil {
		verr := &ValidationError{Field: "start_time", Message: "expected YYYY-MM-DDTHH:MM", Err: err}
		s.recordFailure(ctx, CauseValidation, verr)
		return nil, verr
	}

	result := EmptyResult(req)
	result.Window = window

	start := time.Now()
	key := CacheKey(req.Query, req.Count, window)
	resp, hit := s.cache.Get(ctx, key)
	metrics.RecordCacheLookup(hit)
	result.CacheHit = hit

	if !hit {
		resp, err = s.searcher.Search(ctx, vk.SearchParams{
			Query:     req.Query,
			Count:     req.Count,
			StartTime: window.Start,
			EndTime:   window.End,
		})
		if err != nil {
			cause := UpstreamCause(err)
			s.recordFailure(ctx, cause, err)
			result.Degraded = true
			result.Notice = noticeFor(cause)
			return result, fmt.Errorf("search %q: %w", req.Query, err)
		}
		s.cache.Set(ctx, key, resp)
	}

	items := resp.Items()
	if resp.Response != nil {
		result.TotalCount = resp.Response.TotalCount
	}
	if len(items) == 0 {
		metrics.RecordSearchResults(0, 0, 0)
		return result, nil
	}

	ranked, err := s.ranker.Rank(ctx, req.Query, items)
	if err != nil {
		s.recordFailure(ctx, CauseRanking, err)
		result.Degraded = true
		result.Notice = "Relevance ranking is unavailable; posts are shown in the order VK returned them."
	}
	result.Posts = ranked

	// Geotags come from the unranked items so map order matches VK order.
	result.Points = geo.ExtractPoints(items)
	result.Statistics = geo.Aggregate(result.Points)

	mapHTML, err := s.renderer.Render(result.Points)
	if err != nil {
		s.recordFailure(ctx, CauseMapRender, err)
		result.Degraded = true
		if result.Notice == "" {
			result.Notice = "The map could not be drawn."
		}
	}
	result.MapHTML = mapHTML

	metrics.RecordSearchResults(len(result.Posts), len(result.Points), len(result.Statistics))
	logging.Ctx(ctx).Info().
		Str("query", req.Query).
		Int("count", req.Count).
		Str("window", window.String()).
		Bool("cache_hit", hit).
		Int("posts", len(result.Posts)).
		Int("geo_points", len(result.Points)).
		Int("places", len(result.Statistics)).
		Dur("duration", time.Since(start)).
		Msg("Search completed")
	return result, nil
}

func (s *Service) recordFailure(ctx context.Context, cause string, err error) {
	metrics.RecordSearchFailure(cause)
	ev := logging.Ctx(ctx).Warn()
	if cause == CauseValidation {
		ev = logging.Ctx(ctx).Debug()
	}
	ev.Err(err).Str("cause", cause).Msg("Search stage failed")
}
