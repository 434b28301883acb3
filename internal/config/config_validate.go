// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone database for SEARCH_TIMEZONE on minimal images
)

// Validate checks that required configuration is present and consistent.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateVK,
		c.validateEmbedding,
		c.validateCache,
		c.validateSearch,
		c.validateMap,
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateVK() error {
	if strings.TrimSpace(c.VK.AccessToken) == "" {
		return fmt.Errorf("VK_ACCESS_TOKEN is required")
	}
	if err := validateHTTPURL(c.VK.APIURL, "VK_API_URL"); err != nil {
		return fmt.Errorf("VK_API_URL is invalid: %w", err)
	}
	if c.VK.APIVersion == "" {
		return fmt.Errorf("VK_API_VERSION must not be empty")
	}
	if c.VK.Timeout <= 0 {
		return fmt.Errorf("VK_TIMEOUT must be positive, got %v", c.VK.Timeout)
	}
	if c.VK.RateLimit <= 0 {
		return fmt.Errorf("VK_RATE_LIMIT must be positive, got %v", c.VK.RateLimit)
	}
	if c.VK.RateBurst < 1 {
		return fmt.Errorf("VK_RATE_BURST must be at least 1, got %d", c.VK.RateBurst)
	}
	return nil
}

func (c *Config) validateEmbedding() error {
	switch c.Embedding.Provider {
	case EmbeddingProviderHashing:
		if c.Embedding.Dimensions < 16 {
			return fmt.Errorf("EMBEDDING_DIMENSIONS must be at least 16, got %d", c.Embedding.Dimensions)
		}
	case EmbeddingProviderHTTP:
		if c.Embedding.URL == "" {
			return fmt.Errorf("EMBEDDING_URL is required when EMBEDDING_PROVIDER=http")
		}
		if err := validateHTTPURL(c.Embedding.URL, "EMBEDDING_URL"); err != nil {
			return fmt.Errorf("EMBEDDING_URL is invalid: %w", err)
		}
		if c.Embedding.Timeout <= 0 {
			return fmt.Errorf("EMBEDDING_TIMEOUT must be positive, got %v", c.Embedding.Timeout)
		}
	default:
		return fmt.Errorf("EMBEDDING_PROVIDER must be 'hashing' or 'http', got: %s", c.Embedding.Provider)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL < time.Second {
		return fmt.Errorf("CACHE_TTL must be at least 1s, got %v", c.Cache.TTL)
	}
	switch c.Cache.Backend {
	case "memory":
	case "badger":
		if c.Cache.Path == "" {
			return fmt.Errorf("CACHE_PATH is required when CACHE_BACKEND=badger")
		}
		if c.Cache.GCInterval <= 0 {
			return fmt.Errorf("CACHE_GC_INTERVAL must be positive, got %v", c.Cache.GCInterval)
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be 'memory' or 'badger', got: %s", c.Cache.Backend)
	}
	return nil
}

func (c *Config) validateSearch() error {
	if _, err := time.LoadLocation(c.Search.Timezone); err != nil {
		return fmt.Errorf("SEARCH_TIMEZONE is invalid: %w", err)
	}
	if c.Search.MaxCount < 1 {
		return fmt.Errorf("SEARCH_MAX_COUNT must be at least 1, got %d", c.Search.MaxCount)
	}
	if c.Search.DefaultCount < 1 || c.Search.DefaultCount > c.Search.MaxCount {
		return fmt.Errorf("SEARCH_DEFAULT_COUNT must be between 1 and %d, got %d", c.Search.MaxCount, c.Search.DefaultCount)
	}
	return nil
}

func (c *Config) validateMap() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("MAP_WIDTH and MAP_HEIGHT must be positive, got %dx%d", c.Map.Width, c.Map.Height)
	}
	if err := validateHTTPURL(c.Map.PlotlyJSURL, "MAP_PLOTLY_JS_URL"); err != nil {
		return fmt.Errorf("MAP_PLOTLY_JS_URL is invalid: %w", err)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, staging, production, got: %s", c.Server.Environment)
	}
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL is invalid: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console', got: %s", c.Logging.Format)
	}
	return nil
}
