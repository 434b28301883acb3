// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package nlp ranks posts by semantic similarity to the search query.

# Embedders

An Embedder turns a batch of texts into dense vectors. Two are provided:

  - HashingEmbedder: in-process, deterministic. Word unigrams and character
    trigrams are hashed into a fixed number of buckets and the vector is
    L2-normalised. Identical texts always embed identically.
  - HTTPEmbedder: calls an OpenAI-compatible /v1/embeddings service through
    the go-openai client, behind a circuit breaker.

# Model Lifecycle

BuildModel constructs the configured embedder once at startup. The server
warms it in the background (Model.Warm with a probe batch) and reports not
ready until that succeeds; LoadModel does both synchronously. The Model is
read-only and shared by every request.

# Ranking

Ranker.Rank embeds the query and all texted posts in one batch, scores each
post by cosine similarity and stable-sorts descending. Posts without text
are kept but unscored; they follow the scored posts in their original order.
*/
package nlp
