// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package cache

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func setupBadger(t *testing.T, ttl time.Duration) *BadgerCache {
	t.Helper()

	b, err := OpenBadger(BadgerOptions{InMemory: true, TTL: ttl})
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBadgerGetSet(t *testing.T) {
	t.Parallel()

	b := setupBadger(t, time.Minute)

	want := []byte(`{"response":{"items":[]}}`)
	if err := b.Set("search_posts_q_10_None_None", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := b.Get("search_posts_q_10_None_None")
	if err != nil || !ok {
		t.Fatalf("Get() = _, %v, %v; want hit", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get() = %s, want %s", got, want)
	}

	_, ok, err = b.Get("absent")
	if err != nil || ok {
		t.Errorf("Get(absent) = _, %v, %v; want miss without error", ok, err)
	}
}

func TestBadgerTTLExpiry(t *testing.T) {
	t.Parallel()

	b := setupBadger(t, time.Minute)

	// Badger TTLs have one-second resolution.
	if err := b.SetWithTTL("short", []byte("v"), time.Second); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}
	time.Sleep(2100 * time.Millisecond)

	if _, ok, err := b.Get("short"); ok || err != nil {
		t.Errorf("Get(short) after TTL = _, %v, %v; want miss", ok, err)
	}
}

func TestBadgerDelete(t *testing.T) {
	t.Parallel()

	b := setupBadger(t, time.Minute)
	if err := b.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := b.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := b.Get("k"); ok {
		t.Error("Get(k) after Delete = hit")
	}
}

func TestBadgerGCInMemory(t *testing.T) {
	t.Parallel()

	b := setupBadger(t, time.Minute)
	if err := b.RunGC(); err != nil {
		t.Errorf("RunGC() in-memory error = %v, want nil", err)
	}
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b, err := OpenBadger(BadgerOptions{Path: dir, TTL: time.Minute})
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	if err := b.Set("k", []byte("persisted")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenBadger(BadgerOptions{Path: dir, TTL: time.Minute})
	if err != nil {
		t.Fatalf("OpenBadger() reopen error = %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, ok, err := reopened.Get("k")
	if err != nil || !ok || string(got) != "persisted" {
		t.Errorf("Get() after reopen = %q, %v, %v; want persisted", got, ok, err)
	}
	if err := reopened.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
}

func TestBadgerClosed(t *testing.T) {
	t.Parallel()

	b, err := OpenBadger(BadgerOptions{InMemory: true, TTL: time.Minute})
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}

	if _, _, err := b.Get("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get() after Close error = %v, want ErrClosed", err)
	}
	if err := b.Set("k", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Set() after Close error = %v, want ErrClosed", err)
	}
	if err := b.Ping(); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping() after Close error = %v, want ErrClosed", err)
	}
}

func TestBadgerRejectsZeroTTL(t *testing.T) {
	t.Parallel()

	if _, err := OpenBadger(BadgerOptions{InMemory: true}); err == nil {
		t.Error("OpenBadger() with zero TTL error = nil, want error")
	}
}

func TestBadgerConcurrentWriters(t *testing.T) {
	t.Parallel()

	b := setupBadger(t, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				key := fmt.Sprintf("k%d", i%5)
				if err := b.Set(key, []byte(fmt.Sprintf("%d-%d", g, i))); err != nil {
					t.Errorf("Set() error = %v", err)
					return
				}
				if _, _, err := b.Get(key); err != nil {
					t.Errorf("Get() error = %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if err := b.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
