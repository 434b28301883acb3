// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package models defines the data types shared across Postmap.
//
// Wire types (Post, Geo, Place, SearchResponse) mirror the VK
// newsfeed.search response. Every field VK may omit is a pointer or carries
// omitempty so absence survives a decode and encode round trip through the
// cache.
//
// Derived types (GeoPoint, PlaceStatistic, RankedPost) are built per request
// and never persisted.
package models
