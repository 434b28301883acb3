// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package services adapts postmap components to suture.Service.

  - HTTPServerService runs the *http.Server and drains it on shutdown.
  - ModelWarmService loads the embedding model in the background and retries
    until it succeeds, so an unreachable embedding endpoint delays readiness
    instead of failing startup.
  - CacheGCService periodically reclaims Badger value-log space.

Every service returns ctx.Err() on shutdown and implements fmt.Stringer so
supervisor events name it.
*/
package services
