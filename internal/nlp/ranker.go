// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package nlp

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomtom215/postmap/internal/models"
)

// Ranker orders posts by similarity to a query.
type Ranker struct {
	model *Model
}

// NewRanker returns a Ranker backed by model.
func NewRanker(model *Model) *Ranker {
	return &Ranker{model: model}
}

// Rank scores posts against query and returns them best first. Posts
// without text keep Scored=false and follow the scored posts in their
// original order.
//
// If embedding fails, every post is returned unscored in its original order
// together with the error, so callers can still display results.
func (r *Ranker) Rank(ctx context.Context, query string, posts []models.Post) ([]models.RankedPost, error) {
	ranked := make([]models.RankedPost, len(posts))
	texts := make([]string, 0, len(posts)+1)
	texts = append(texts, query)
	textIdx := make([]int, 0, len(posts))

	for i := range posts {
		ranked[i] = models.RankedPost{Post: posts[i]}
		if posts[i].HasText() {
			texts = append(texts, posts[i].TextValue())
			textIdx = append(textIdx, i)
		}
	}

	if len(textIdx) == 0 {
		return ranked, nil
	}

	vecs, err := r.model.Embed(ctx, texts)
	if err != nil {
		return ranked, fmt.Errorf("embed %d texts: %w", len(texts), err)
	}

	queryVec := vecs[0]
	for j, i := range textIdx {
		ranked[i].Score = CosineSimilarity(queryVec, vecs[j+1])
		ranked[i].Scored = true
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Scored != ranked[b].Scored {
			return ranked[a].Scored
		}
		return ranked[a].Score > ranked[b].Score
	})
	return ranked, nil
}
