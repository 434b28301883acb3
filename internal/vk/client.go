// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package vk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/postmap/internal/config"
	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/metrics"
	"github.com/tomtom215/postmap/internal/models"
)

// maxErrorBodySize caps how much of a failed response is kept for the error.
const maxErrorBodySize = 64 * 1024

// maxResponseSize caps a successful response body. 200 posts with
// attachments stay well below this.
const maxResponseSize = 16 << 20

const searchMethod = "newsfeed.search"

// SearchParams are the inputs to one newsfeed.search call. StartTime and
// EndTime are unix seconds and are omitted from the request when nil.
type SearchParams struct {
	Query     string
	Count     int
	StartTime *int64
	EndTime   *int64
}

// Searcher is implemented by Client and CircuitBreakerClient.
type Searcher interface {
	Search(ctx context.Context, params SearchParams) (*models.SearchResponse, error)
}

// Client calls the VK API.
type Client struct {
	baseURL    string
	token      string
	apiVersion string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client from configuration.
func NewClient(cfg *config.VKConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		token:      cfg.AccessToken,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// buildURL assembles the request URL. The token is included, so the result
// must go through logging.RedactURL before it is logged.
func (c *Client) buildURL(params SearchParams) string {
	q := url.Values{}
	q.Set("q", params.Query)
	q.Set("count", strconv.Itoa(params.Count))
	q.Set("access_token", c.token)
	q.Set("v", c.apiVersion)
	if params.StartTime != nil {
		q.Set("start_time", strconv.FormatInt(*params.StartTime, 10))
	}
	if params.EndTime != nil {
		q.Set("end_time", strconv.FormatInt(*params.EndTime, 10))
	}
	return c.baseURL + "/" + searchMethod + "?" + q.Encode()
}

// Search runs newsfeed.search and returns the decoded body.
func (c *Client) Search(ctx context.Context, params SearchParams) (*models.SearchResponse, error) {
	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter wait: %w", ErrUpstream, err)
	}
	metrics.VKRateLimitWait.Observe(time.Since(waitStart).Seconds())

	reqURL := c.buildURL(params)
	start := time.Now()
	resp, err := c.do(ctx, reqURL)
	metrics.RecordVKRequest(time.Since(start), err)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("url", logging.RedactURL(reqURL)).
			Dur("duration", time.Since(start)).
			Msg("newsfeed.search failed")
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("url", logging.RedactURL(reqURL)).
		Int("items", len(resp.Items())).
		Dur("duration", time.Since(start)).
		Msg("newsfeed.search completed")
	return resp, nil
}

func (c *Client) do(ctx context.Context, reqURL string) (*models.SearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL; strip it so the token stays out of logs.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("%w: HTTP request failed: %w", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(readBodyForError(resp.Body))}
	}

	var result models.SearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrUpstream, ErrMalformedResponse, err)
	}
	if result.Error != nil {
		return nil, &APIError{Code: result.Error.Code, Message: result.Error.Message}
	}
	return &result, nil
}
