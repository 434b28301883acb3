// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package nlp

import (
	"context"
	"errors"
	"math"
)

// ErrDimensionMismatch is returned when an embedder yields the wrong number
// of vectors for a batch.
var ErrDimensionMismatch = errors.New("embedding batch size mismatch")

// Embedder converts texts into vectors. Implementations must return exactly
// one vector per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Name identifies the provider in logs and metrics.
	Name() string
}

// CosineSimilarity returns the cosine of the angle between a and b. Vectors
// of different lengths or with zero norm score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Rounding can push the ratio just past ±1.
	return math.Max(-1, math.Min(1, sim))
}
