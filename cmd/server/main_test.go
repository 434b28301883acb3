// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package main

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/postmap/internal/config"
	"github.com/tomtom215/postmap/internal/models"
)

func TestOpenResponseCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        config.CacheConfig
		wantBadger bool
		wantErr    bool
	}{
		{"memory", config.CacheConfig{Backend: "memory", TTL: time.Minute}, false, false},
		{"badger", config.CacheConfig{Backend: "badger", TTL: time.Minute}, true, false},
		{"unknown", config.CacheConfig{Backend: "redis", TTL: time.Minute}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := tt.cfg
			if cfg.Backend == "badger" {
				cfg.Path = t.TempDir()
			}

			rc, db, closeFn, err := openResponseCache(&cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer closeFn()

			if (db != nil) != tt.wantBadger {
				t.Errorf("badger handle = %v, want badger %v", db, tt.wantBadger)
			}

			ctx := context.Background()
			if err := rc.Ping(ctx); err != nil {
				t.Fatalf("Ping() = %v", err)
			}
			resp := &models.SearchResponse{Response: &models.SearchResult{Count: 1, TotalCount: 1}}
			rc.Set(ctx, "k", resp)
			got, ok := rc.Get(ctx, "k")
			if !ok || got.Response == nil || got.Response.TotalCount != 1 {
				t.Errorf("Get() = %+v, %v", got, ok)
			}
		})
	}
}
