// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/postmap/config.yaml",
	"/etc/postmap/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		VK: VKConfig{
			APIURL:     "https://api.vk.com/method",
			APIVersion: "5.131",
			Timeout:    30 * time.Second,
			RateLimit:  3,
			RateBurst:  1,
		},
		Embedding: EmbeddingConfig{
			Model:      "text-embedding-3-small",
			Timeout:    10 * time.Second,
			Dimensions: 512,
		},
		Cache: CacheConfig{
			Backend:    "memory",
			TTL:        300 * time.Second,
			Path:       "/data/cache",
			GCInterval: 10 * time.Minute,
		},
		Search: SearchConfig{
			Timezone:     "Europe/Moscow",
			DefaultCount: 30,
			MaxCount:     200,
		},
		Map: MapConfig{
			Width:       850,
			Height:      600,
			PlotlyJSURL: "https://cdn.plot.ly/plotly-2.35.2.min.js",
		},
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     60 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.resolveEmbeddingProvider()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
// Values that came from YAML are already slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"vk_api_url":      "vk.api_url",
	"vk_access_token": "vk.access_token",
	"vk_api_version":  "vk.api_version",
	"vk_timeout":      "vk.timeout",
	"vk_rate_limit":   "vk.rate_limit",
	"vk_rate_burst":   "vk.rate_burst",

	"embedding_provider":   "embedding.provider",
	"embedding_url":        "embedding.url",
	"embedding_model":      "embedding.model",
	"embedding_api_key":    "embedding.api_key",
	"embedding_timeout":    "embedding.timeout",
	"embedding_dimensions": "embedding.dimensions",

	"cache_backend":     "cache.backend",
	"cache_ttl":         "cache.ttl",
	"cache_path":        "cache.path",
	"cache_gc_interval": "cache.gc_interval",

	"search_timezone":      "search.timezone",
	"search_default_count": "search.default_count",
	"search_max_count":     "search.max_count",

	"map_width":         "map.width",
	"map_height":        "map.height",
	"map_plotly_js_url": "map.plotly_js_url",

	"http_port":      "server.port",
	"http_host":      "server.host",
	"server_timeout": "server.timeout",
	"environment":    "server.environment",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped names return "" so koanf skips them.
//
//   - VK_ACCESS_TOKEN -> vk.access_token
//   - CACHE_BACKEND -> cache.backend
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
