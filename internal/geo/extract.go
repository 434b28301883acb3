// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package geo

import (
	"math"
	"strings"

	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/models"
)

// ExtractPoints returns one GeoPoint per post carrying a complete geotag,
// in input order.
func ExtractPoints(posts []models.Post) []models.GeoPoint {
	points := make([]models.GeoPoint, 0, len(posts))
	skipped := 0

	for i := range posts {
		point, reason := pointFromPost(&posts[i])
		if reason != "" {
			if posts[i].Geo != nil {
				skipped++
				logging.Debug().
					Int64("post_id", posts[i].ID).
					Int64("owner_id", posts[i].OwnerID).
					Str("reason", reason).
					Msg("Skipping malformed geotag")
			}
			continue
		}
		points = append(points, point)
	}

	if skipped > 0 {
		logging.Debug().Int("skipped", skipped).Int("extracted", len(points)).Msg("Geo extraction finished")
	}
	return points
}

// pointFromPost returns the point for p, or a non-empty reason it has none.
func pointFromPost(p *models.Post) (models.GeoPoint, string) {
	switch {
	case p.Geo == nil:
		return models.GeoPoint{}, "no geo"
	case p.Geo.Place == nil:
		return models.GeoPoint{}, "no place"
	case p.Geo.Place.Latitude == nil || p.Geo.Place.Longitude == nil:
		return models.GeoPoint{}, "missing coordinates"
	}

	lat, lon := *p.Geo.Place.Latitude, *p.Geo.Place.Longitude
	if !validCoordinate(lat, 90) || !validCoordinate(lon, 180) {
		return models.GeoPoint{}, "coordinates out of range"
	}

	// An untitled place is still plotted, with an empty label.
	title := strings.TrimSpace(p.Geo.Place.Title)
	return models.GeoPoint{Latitude: lat, Longitude: lon, Text: title}, ""
}

func validCoordinate(v, limit float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= limit
}
