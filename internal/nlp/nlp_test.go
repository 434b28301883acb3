// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package nlp

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/postmap/internal/config"
	"github.com/tomtom215/postmap/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashingEmbedder(t *testing.T) {
	t.Parallel()

	e := NewHashingEmbedder(0)
	if e.Dimensions() != 512 {
		t.Fatalf("Dimensions() = %d, want 512", e.Dimensions())
	}

	vecs, err := e.Embed(context.Background(), []string{"Красная площадь", "красная ПЛОЩАДЬ!", "beach volleyball", ""})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if len(vecs) != 4 {
		t.Fatalf("Embed() returned %d vectors, want 4", len(vecs))
	}

	if sim := CosineSimilarity(vecs[0], vecs[1]); sim < 0.999 {
		t.Errorf("case and punctuation changed similarity: %v", sim)
	}
	if related, unrelated := CosineSimilarity(vecs[0], vecs[1]), CosineSimilarity(vecs[0], vecs[2]); unrelated >= related {
		t.Errorf("unrelated text scored %v, related %v", unrelated, related)
	}
	if sim := CosineSimilarity(vecs[3], vecs[0]); sim != 0 {
		t.Errorf("empty text similarity = %v, want 0", sim)
	}
}

func TestHashingEmbedderCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHashingEmbedder(64).Embed(ctx, []string{"a"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Embed() error = %v, want context.Canceled", err)
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	got := tokenize("Hello, МИР! 2024-01")
	want := []string{"hello", "мир", "2024", "01"}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadModel(t *testing.T) {
	t.Parallel()

	m, err := LoadModel(context.Background(), &config.EmbeddingConfig{Provider: HashingProvider, Dimensions: 128})
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}
	if !m.Ready() {
		t.Error("model not ready after load")
	}
	if m.Provider() != HashingProvider {
		t.Errorf("Provider() = %q", m.Provider())
	}

	if _, err := LoadModel(context.Background(), &config.EmbeddingConfig{Provider: "bert"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestBuildModelIsNotWarm(t *testing.T) {
	t.Parallel()

	m, err := BuildModel(&config.EmbeddingConfig{Provider: HTTPProvider, URL: "http://127.0.0.1:1/v1/embeddings"})
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}
	if m.Ready() {
		t.Error("model ready before Warm")
	}
	if m.Provider() != HTTPProvider {
		t.Errorf("Provider() = %q", m.Provider())
	}
}

type failingEmbedder struct{ err error }

func (f failingEmbedder) Embed(context.Context, []string) ([][]float32, error) { return nil, f.err }
func (f failingEmbedder) Name() string                                         { return "failing" }

type shortEmbedder struct{}

func (shortEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	return make([][]float32, len(texts)-1), nil
}
func (shortEmbedder) Name() string { return "short" }

func TestModelWarmFailure(t *testing.T) {
	t.Parallel()

	m := NewModel(failingEmbedder{err: errors.New("boom")})
	if err := m.Warm(context.Background()); err == nil {
		t.Fatal("Warm() expected error")
	}
	if m.Ready() {
		t.Error("model ready after failed warm")
	}

	if err := NewModel(shortEmbedder{}).Warm(context.Background()); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Warm() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestRankOrdersBySimilarity(t *testing.T) {
	t.Parallel()

	posts := []models.Post{
		{ID: 1, Text: strPtr("weather report for tomorrow")},
		{ID: 2},
		{ID: 3, Text: strPtr("Red Square in Moscow")},
		{ID: 4, Text: strPtr("   ")},
		{ID: 5, Text: strPtr("a walk near red square")},
	}

	r := NewRanker(NewModel(NewHashingEmbedder(512)))
	ranked, err := r.Rank(context.Background(), "red square in moscow", posts)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(ranked) != len(posts) {
		t.Fatalf("Rank() returned %d posts, want %d", len(ranked), len(posts))
	}

	if ranked[0].Post.ID != 3 {
		t.Errorf("top post = %d, want 3", ranked[0].Post.ID)
	}
	if math.Abs(ranked[0].Score-1) > 1e-5 {
		t.Errorf("identical text score = %v, want ~1", ranked[0].Score)
	}
	if ranked[1].Post.ID != 5 {
		t.Errorf("second post = %d, want 5", ranked[1].Post.ID)
	}

	for i := 1; i < 3; i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("scores not descending at %d: %v > %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}

	// Textless posts trail in original order.
	if ranked[3].Post.ID != 2 || ranked[4].Post.ID != 4 {
		t.Errorf("tail = [%d %d], want [2 4]", ranked[3].Post.ID, ranked[4].Post.ID)
	}
	if ranked[3].Scored || ranked[4].Scored {
		t.Error("textless posts must be unscored")
	}
}

func TestRankEmpty(t *testing.T) {
	t.Parallel()

	r := NewRanker(NewModel(failingEmbedder{err: errors.New("must not be called")}))
	ranked, err := r.Rank(context.Background(), "q", nil)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if ranked == nil || len(ranked) != 0 {
		t.Errorf("Rank(nil) = %v, want empty slice", ranked)
	}
}

func TestRankEmbedFailureKeepsOrder(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("model offline")
	posts := []models.Post{
		{ID: 10, Text: strPtr("b")},
		{ID: 11},
		{ID: 12, Text: strPtr("a")},
	}

	r := NewRanker(NewModel(failingEmbedder{err: sentinel}))
	ranked, err := r.Rank(context.Background(), "q", posts)
	if !errors.Is(err, sentinel) {
		t.Fatalf("Rank() error = %v, want %v", err, sentinel)
	}
	for i, rp := range ranked {
		if rp.Post.ID != posts[i].ID || rp.Scored {
			t.Errorf("ranked[%d] = %+v, want unscored post %d", i, rp, posts[i].ID)
		}
	}
}
