// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package main is the entry point for the postmap server.

postmap searches VK posts by keyword, orders them by semantic similarity to
the query, and plots their geotags on an interactive globe with a per-place
count table.

# Application Architecture

	RootSupervisor ("postmap")
	├── DataSupervisor ("data-layer")
	│   ├── ModelWarmService
	│   └── CacheGCService (CACHE_BACKEND=badger)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, bridged to slog for the supervisor
 3. VK client: rate limited, behind a gobreaker circuit breaker
 4. Response cache: in-memory TTL map or BadgerDB
 5. Embedding model, ranker, map renderer
 6. Search service, HTTP handlers, chi router
 7. Supervisor tree

# Configuration

The VK access token is required and is only read from configuration:

	export VK_ACCESS_TOKEN=...

Other commonly set variables:

	HTTP_PORT=8000
	SEARCH_TIMEZONE=Europe/Moscow
	CACHE_BACKEND=badger CACHE_PATH=/data/cache
	EMBEDDING_URL=http://embedder:8080/v1   (selects the http provider)
	LOG_LEVEL=debug LOG_FORMAT=console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up to
10s, then the cache is closed.
*/
package main
