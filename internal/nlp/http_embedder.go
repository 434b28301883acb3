// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package nlp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/tomtom215/postmap/internal/breaker"
	"github.com/tomtom215/postmap/internal/config"
)

// HTTPProvider is the provider name of HTTPEmbedder.
const HTTPProvider = "http"

// HTTPEmbedder calls an OpenAI-compatible embeddings endpoint (OpenAI,
// Hugging Face TEI, LocalAI).
type HTTPEmbedder struct {
	client *openai.Client
	model  string
	cb     *breaker.Breaker[[][]float32]
}

// NewHTTPEmbedder creates an HTTPEmbedder from configuration. cfg.URL may be
// either the API base ("http://tei:8080/v1") or the full embeddings endpoint.
func NewHTTPEmbedder(cfg *config.EmbeddingConfig) *HTTPEmbedder {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = embeddingsBaseURL(cfg.URL)
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &HTTPEmbedder{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		cb: breaker.New[[][]float32]("embedding-api", breaker.Settings{
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
		}),
	}
}

// embeddingsBaseURL strips the "/embeddings" suffix the client appends itself.
func embeddingsBaseURL(url string) string {
	return strings.TrimSuffix(strings.TrimRight(url, "/"), "/embeddings")
}

// Name implements Embedder.
func (e *HTTPEmbedder) Name() string { return HTTPProvider }

// Embed implements Embedder.
func (e *HTTPEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	return e.cb.Execute(func() ([][]float32, error) {
		return e.embed(ctx, texts)
	})
}

func (e *HTTPEmbedder) embed(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed after %v: %w", time.Since(start).Round(time.Millisecond), err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: sent %d texts, got %d vectors", ErrDimensionMismatch, len(texts), len(resp.Data))
	}

	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) || out[d.Index] != nil {
			return nil, fmt.Errorf("embedding response has invalid or duplicate index %d", d.Index)
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}
