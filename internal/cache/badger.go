// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package cache

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/tomtom215/postmap/internal/logging"
)

// ErrClosed is returned by BadgerCache operations after Close.
var ErrClosed = errors.New("cache is closed")

// gcDiscardRatio is the value-log rewrite threshold passed to Badger.
const gcDiscardRatio = 0.5

// BadgerOptions configures a BadgerCache.
type BadgerOptions struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string
	// InMemory keeps all data in RAM. Used by tests.
	InMemory bool
	// TTL is the lifetime of every entry.
	TTL time.Duration
}

// BadgerCache is a persistent byte-valued TTL cache.
type BadgerCache struct {
	db     *badger.DB
	ttl    time.Duration
	closed atomic.Bool
}

// OpenBadger opens (or creates) the cache database.
func OpenBadger(opts BadgerOptions) (*BadgerCache, error) {
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("badger cache TTL must be positive, got %v", opts.TTL)
	}

	bopts := badger.DefaultOptions(opts.Path)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	// Responses are cheap to refetch; skip fsync on every write.
	bopts.SyncWrites = false
	// Cached VK responses are JSON and compress well.
	bopts.Compression = options.Snappy
	bopts.Logger = nil

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", opts.Path).
		Bool("in_memory", opts.InMemory).
		Dur("ttl", opts.TTL).
		Msg("Badger cache opened")

	return &BadgerCache{db: db, ttl: opts.TTL}, nil
}

// Get returns the value for key. A missing or expired key yields
// (nil, false, nil).
func (b *BadgerCache) Get(key string) ([]byte, bool, error) {
	if b.closed.Load() {
		return nil, false, ErrClosed
	}

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with the configured TTL.
func (b *BadgerCache) Set(key string, value []byte) error {
	return b.SetWithTTL(key, value, b.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (b *BadgerCache) SetWithTTL(key string, value []byte, ttl time.Duration) error {
	if b.closed.Load() {
		return ErrClosed
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithTTL(ttl))
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (b *BadgerCache) Delete(key string) error {
	if b.closed.Load() {
		return ErrClosed
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// TTL returns the default entry lifetime.
func (b *BadgerCache) TTL() time.Duration {
	return b.ttl
}

// Ping reports whether the database accepts reads.
func (b *BadgerCache) Ping() error {
	if b.closed.Load() || b.db.IsClosed() {
		return ErrClosed
	}
	return b.db.View(func(*badger.Txn) error { return nil })
}

// RunGC rewrites value-log files until Badger reports nothing left to
// reclaim. In-memory databases have no value log and return nil.
func (b *BadgerCache) RunGC() error {
	if b.closed.Load() {
		return ErrClosed
	}
	for {
		err := b.db.RunValueLogGC(gcDiscardRatio)
		switch {
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		case err != nil:
			return fmt.Errorf("run value log GC: %w", err)
		}
	}
}

// Close closes the database. It is safe to call more than once.
func (b *BadgerCache) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	return b.db.Close()
}
