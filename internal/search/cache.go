// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/tomtom215/postmap/internal/cache"
	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/models"
	"github.com/tomtom215/postmap/internal/timewindow"
)

const cacheKeyPrefix = "search_posts_"

// CacheKey fingerprints a search. Spaces in the query become underscores
// and unset window bounds render as None, e.g.
// "search_posts_red_square_30_1705309200_1705395600".
func CacheKey(query string, count int, window timewindow.Window) string {
	var b strings.Builder
	b.Grow(len(cacheKeyPrefix) + len(query) + 32)
	b.WriteString(cacheKeyPrefix)
	b.WriteString(strings.ReplaceAll(query, " ", "_"))
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(count))
	b.WriteByte('_')
	b.WriteString(window.String())
	return b.String()
}

// ResponseCache stores raw newsfeed.search responses by key.
type ResponseCache interface {
	Get(ctx context.Context, key string) (*models.SearchResponse, bool)
	Set(ctx context.Context, key string, resp *models.SearchResponse)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Stats() CacheStats
}

// CacheStats summarizes response cache activity since startup.
type CacheStats struct {
	Backend   string  `json:"backend"`
	Entries   int64   `json:"entries,omitempty"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions,omitempty"`
	HitRate   float64 `json:"hit_rate"`
}

func hitRate(hits, misses int64) float64 {
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses) * 100
}

// MemoryCache is a process-local ResponseCache. Stored responses are shared
// between requests and must not be mutated.
type MemoryCache struct {
	c *cache.Cache
}

// NewMemoryCache wraps c.
func NewMemoryCache(c *cache.Cache) *MemoryCache {
	return &MemoryCache{c: c}
}

// Get implements ResponseCache.
func (m *MemoryCache) Get(_ context.Context, key string) (*models.SearchResponse, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	resp, ok := v.(*models.SearchResponse)
	return resp, ok
}

// Set implements ResponseCache.
func (m *MemoryCache) Set(_ context.Context, key string, resp *models.SearchResponse) {
	m.c.Set(key, resp)
}

// Ping implements ResponseCache.
func (m *MemoryCache) Ping(context.Context) error { return nil }

// Stats implements ResponseCache.
func (m *MemoryCache) Stats() CacheStats {
	st := m.c.GetStats()
	return CacheStats{
		Backend:   "memory",
		Entries:   st.TotalKeys,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
		HitRate:   m.c.HitRate(),
	}
}

// BadgerResponseCache persists responses as JSON in badger.
type BadgerResponseCache struct {
	db     *cache.BadgerCache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewBadgerResponseCache wraps db.
func NewBadgerResponseCache(db *cache.BadgerCache) *BadgerResponseCache {
	return &BadgerResponseCache{db: db}
}

// Get implements ResponseCache.
func (b *BadgerResponseCache) Get(ctx context.Context, key string) (*models.SearchResponse, bool) {
	raw, ok, err := b.db.Get(key)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Cache read failed, treating as miss")
		b.misses.Add(1)
		return nil, false
	}
	if !ok {
		b.misses.Add(1)
		return nil, false
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		_ = b.db.Delete(key)
		b.misses.Add(1)
		return nil, false
	}
	b.hits.Add(1)
	return &resp, true
}

// Set implements ResponseCache.
func (b *BadgerResponseCache) Set(ctx context.Context, key string, resp *models.SearchResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Failed to encode cache entry")
		return
	}
	if err := b.db.Set(key, raw); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Ping implements ResponseCache.
func (b *BadgerResponseCache) Ping(context.Context) error {
	if err := b.db.Ping(); err != nil {
		return fmt.Errorf("badger cache: %w", err)
	}
	return nil
}

// Stats implements ResponseCache. Entry counts are not tracked for badger.
func (b *BadgerResponseCache) Stats() CacheStats {
	hits, misses := b.hits.Load(), b.misses.Load()
	return CacheStats{
		Backend: "badger",
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate(hits, misses),
	}
}
