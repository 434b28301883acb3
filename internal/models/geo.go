// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package models

// GeoPoint is one geotagged post reduced to its coordinates and place name.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Text      string  `json:"text"`
}

// PlaceStatistic counts the geotagged posts sharing a place name.
type PlaceStatistic struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// RankedPost pairs a post with its similarity to the query. Scored is false
// for posts that had no text to compare.
type RankedPost struct {
	Post   Post    `json:"post"`
	Score  float64 `json:"score"`
	Scored bool    `json:"scored"`
}
