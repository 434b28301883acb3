// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

/*
Package mapview renders geotagged posts as an interactive Plotly globe.

The output of Render is an HTML fragment (a container div plus the script
that draws into it), meant to be embedded in a page, never a full document.
An empty point list renders nothing, so callers can test the result for ""
to decide whether to show a map at all.

The figure is built from typed structs and encoded with goccy/go-json, which
escapes <, > and & so place names cannot break out of the script element.
*/
package mapview
