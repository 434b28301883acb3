// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package geo extracts map points from geotagged posts and counts them per
// place name.
//
// Extraction never fails: a post whose geotag is missing a field, or whose
// coordinates are not finite or out of range, is skipped and logged at debug
// level. A place without a title is plotted with an empty label.
package geo
