// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package nlp

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tomtom215/postmap/internal/config"
	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/metrics"
)

// warmupTexts exercise the embedder once at load time.
var warmupTexts = []string{"postmap warmup", "Москва"}

// Model is the process-wide embedding model. It is created once by
// LoadModel and only read afterwards.
type Model struct {
	embedder Embedder
	ready    atomic.Bool
}

// NewModel wraps an already-constructed embedder. The model is not ready
// until Warm succeeds.
func NewModel(e Embedder) *Model {
	return &Model{embedder: e}
}

// BuildModel constructs the configured embedder without warming it.
func BuildModel(cfg *config.EmbeddingConfig) (*Model, error) {
	switch cfg.Provider {
	case HashingProvider:
		return NewModel(NewHashingEmbedder(cfg.Dimensions)), nil
	case HTTPProvider:
		return NewModel(NewHTTPEmbedder(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

// LoadModel builds the configured embedder and warms it.
func LoadModel(ctx context.Context, cfg *config.EmbeddingConfig) (*Model, error) {
	m, err := BuildModel(cfg)
	if err != nil {
		return nil, err
	}
	if err := m.Warm(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Warm embeds a probe batch and marks the model ready.
func (m *Model) Warm(ctx context.Context) error {
	start := time.Now()
	vecs, err := m.embedder.Embed(ctx, warmupTexts)
	if err != nil {
		return fmt.Errorf("warm %s embedder: %w", m.embedder.Name(), err)
	}
	if len(vecs) != len(warmupTexts) {
		return fmt.Errorf("warm %s embedder: %w", m.embedder.Name(), ErrDimensionMismatch)
	}
	m.ready.Store(true)

	logging.Info().
		Str("provider", m.embedder.Name()).
		Int("dimensions", len(vecs[0])).
		Dur("duration", time.Since(start)).
		Msg("Embedding model loaded")
	return nil
}

// Ready reports whether the model finished warming.
func (m *Model) Ready() bool {
	return m.ready.Load()
}

// Provider returns the embedder name.
func (m *Model) Provider() string {
	return m.embedder.Name()
}

// Embed embeds texts and records latency.
func (m *Model) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	vecs, err := m.embedder.Embed(ctx, texts)
	metrics.RecordEmbedding(m.embedder.Name(), len(texts), time.Since(start))
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("%w: sent %d texts, got %d vectors", ErrDimensionMismatch, len(texts), len(vecs))
	}
	return vecs, nil
}
