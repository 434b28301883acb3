// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package models

// SearchResponse is the newsfeed.search response envelope. VK sets exactly
// one of Response or Error.
type SearchResponse struct {
	Response *SearchResult `json:"response,omitempty"`
	Error    *VKError      `json:"error,omitempty"`
}

// SearchResult holds the matched posts.
type SearchResult struct {
	Items      []Post `json:"items"`
	Count      int    `json:"count,omitempty"`
	TotalCount int    `json:"total_count,omitempty"`
	NextFrom   string `json:"next_from,omitempty"`
}

// VKError is an API-level error returned with HTTP 200.
type VKError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

// Items returns the response items, or nil when the body carried none.
func (r *SearchResponse) Items() []Post {
	if r == nil || r.Response == nil {
		return nil
	}
	return r.Response.Items
}
