// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package geo

import (
	"sort"

	"github.com/tomtom215/postmap/internal/models"
)

// Aggregate counts points per place name, most frequent first. Equal counts
// are ordered by name.
func Aggregate(points []models.GeoPoint) []models.PlaceStatistic {
	if len(points) == 0 {
		return []models.PlaceStatistic{}
	}

	counts := make(map[string]int, len(points))
	for _, p := range points {
		counts[p.Text]++
	}

	stats := make([]models.PlaceStatistic, 0, len(counts))
	for text, n := range counts {
		stats = append(stats, models.PlaceStatistic{Text: text, Count: n})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Text < stats[j].Text
	})
	return stats
}
