// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package nlp

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// HashingProvider is the provider name of HashingEmbedder.
const HashingProvider = "hashing"

// trigramWeight scales character trigram features relative to whole words.
const trigramWeight = 0.5

// HashingEmbedder is a feature-hashing bag of words and character trigrams.
// It needs no model files and is safe for concurrent use.
type HashingEmbedder struct {
	dims int
}

// NewHashingEmbedder returns an embedder producing dims-dimensional vectors.
func NewHashingEmbedder(dims int) *HashingEmbedder {
	if dims <= 0 {
		dims = 512
	}
	return &HashingEmbedder{dims: dims}
}

// Name implements Embedder.
func (h *HashingEmbedder) Name() string { return HashingProvider }

// Dimensions returns the vector length.
func (h *HashingEmbedder) Dimensions() int { return h.dims }

// Embed implements Embedder.
func (h *HashingEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = h.embed(text)
	}
	return out, nil
}

func (h *HashingEmbedder) embed(text string) []float32 {
	vec := make([]float32, h.dims)
	for _, token := range tokenize(text) {
		h.add(vec, "w:"+token, 1)
		runes := []rune("^" + token + "$")
		for i := 0; i+3 <= len(runes); i++ {
			h.add(vec, "t:"+string(runes[i:i+3]), trigramWeight)
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

// add accumulates a signed feature so that bucket collisions cancel out on
// average instead of inflating similarity.
func (h *HashingEmbedder) add(vec []float32, feature string, weight float32) {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(feature))
	sum := hasher.Sum64()
	idx := int(sum % uint64(h.dims))
	if sum&(1<<63) != 0 {
		weight = -weight
	}
	vec[idx] += weight
}

// tokenize lowercases text and splits it on anything that is not a letter
// or digit. Cyrillic and Latin scripts are both handled.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
