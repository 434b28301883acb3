// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	VK        VKConfig        `koanf:"vk"`
	Embedding EmbeddingConfig `koanf:"embedding"`
	Cache     CacheConfig     `koanf:"cache"`
	Search    SearchConfig    `koanf:"search"`
	Map       MapConfig       `koanf:"map"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// VKConfig configures the outbound newsfeed.search client.
type VKConfig struct {
	APIURL      string        `koanf:"api_url"`
	AccessToken string        `koanf:"access_token"`
	APIVersion  string        `koanf:"api_version"`
	Timeout     time.Duration `koanf:"timeout"`
	// RateLimit is the sustained outbound request rate in requests per second.
	// VK allows 3 req/s for user tokens.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// EmbeddingConfig selects and configures the text embedding model.
type EmbeddingConfig struct {
	// Provider is "hashing" (in-process, lexical) or "http" (remote
	// embedding model). Unset means http when URL is set, hashing otherwise.
	Provider string `koanf:"provider"`
	// URL is the OpenAI-compatible API base or its /embeddings endpoint.
	URL        string        `koanf:"url"`
	Model      string        `koanf:"model"`
	APIKey     string        `koanf:"api_key"`
	Timeout    time.Duration `koanf:"timeout"`
	Dimensions int           `koanf:"dimensions"`
}

// CacheConfig configures the search response cache.
type CacheConfig struct {
	// Backend is "memory" or "badger".
	Backend    string        `koanf:"backend"`
	TTL        time.Duration `koanf:"ttl"`
	Path       string        `koanf:"path"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// SearchConfig holds request-level search settings.
type SearchConfig struct {
	Timezone     string `koanf:"timezone"`
	DefaultCount int    `koanf:"default_count"`
	MaxCount     int    `koanf:"max_count"`
}

// MapConfig holds map rendering settings.
type MapConfig struct {
	Width       int    `koanf:"width"`
	Height      int    `koanf:"height"`
	PlotlyJSURL string `koanf:"plotly_js_url"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds inbound rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Embedding provider names.
const (
	EmbeddingProviderHashing = "hashing"
	EmbeddingProviderHTTP    = "http"
)

func (c *Config) resolveEmbeddingProvider() {
	if c.Embedding.Provider != "" {
		return
	}
	if c.Embedding.URL != "" {
		c.Embedding.Provider = EmbeddingProviderHTTP
	} else {
		c.Embedding.Provider = EmbeddingProviderHashing
	}
}

// LexicalRanking reports whether posts are ranked by the in-process hashing
// embedder rather than a language model.
func (c *EmbeddingConfig) LexicalRanking() bool {
	return c.Provider == EmbeddingProviderHashing
}
