// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package cache provides the TTL key/value stores behind the search response
cache.

# Backends

Cache is an in-process map guarded by a sync.RWMutex. Entries expire lazily
on Get and are swept by a background goroutine; Close stops the sweeper.

BadgerCache persists byte values in BadgerDB with native per-entry TTL, so
cached responses survive a restart until they expire. Badger needs periodic
value-log garbage collection; call RunGC from a supervised service.

# Concurrency

Both backends are safe for concurrent Get and Set. Concurrent Sets to the
same key resolve last-writer-wins.

# Usage

	c := cache.New(5 * time.Minute)
	defer c.Close()
	c.Set("search_posts_moscow_30_None_None", resp)
	if v, ok := c.Get("search_posts_moscow_30_None_None"); ok {
	    resp = v.(*models.SearchResponse)
	}
*/
package cache
