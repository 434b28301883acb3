// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package services

import (
	"context"
	"time"

	"github.com/tomtom215/postmap/internal/logging"
)

const defaultGCInterval = 10 * time.Minute

// GarbageCollector reclaims space in a persistent cache. Satisfied by
// *cache.BadgerCache.
type GarbageCollector interface {
	RunGC() error
}

// CacheGCService runs value-log GC on a fixed interval. GC errors are
// logged and never stop the service.
type CacheGCService struct {
	gc       GarbageCollector
	interval time.Duration
}

// NewCacheGCService creates the service. A non-positive interval means 10m.
func NewCacheGCService(gc GarbageCollector, interval time.Duration) *CacheGCService {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	return &CacheGCService{gc: gc, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.String())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.gc.RunGC(); err != nil {
				log.Warn().Err(err).Msg("Cache GC failed")
				continue
			}
			log.Debug().Dur("duration", time.Since(start)).Msg("Cache GC completed")
		}
	}
}

func (s *CacheGCService) String() string {
	return "cache-gc"
}
