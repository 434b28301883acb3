// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package models

import (
	"strconv"
	"strings"
	"time"
)

// Post is a single newsfeed.search item.
type Post struct {
	ID       int64   `json:"id"`
	OwnerID  int64   `json:"owner_id"`
	FromID   int64   `json:"from_id,omitempty"`
	Date     int64   `json:"date"`
	PostType string  `json:"post_type,omitempty"`
	Text     *string `json:"text,omitempty"`
	Geo      *Geo    `json:"geo,omitempty"`
}

// Geo is the geotag attached to a post.
type Geo struct {
	Type        string `json:"type,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
	Place       *Place `json:"place,omitempty"`
}

// Place is the named location inside a geotag.
type Place struct {
	ID        int64    `json:"id,omitempty"`
	Title     string   `json:"title,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Country   int64    `json:"country,omitempty"`
	City      int64    `json:"city,omitempty"`
}

// HasText reports whether the post carries non-blank text.
func (p *Post) HasText() bool {
	return p.Text != nil && strings.TrimSpace(*p.Text) != ""
}

// TextValue returns the post text, or "" when absent.
func (p *Post) TextValue() string {
	if p.Text == nil {
		return ""
	}
	return *p.Text
}

// PublishedAt returns the post date as a time.Time.
func (p *Post) PublishedAt() time.Time {
	return time.Unix(p.Date, 0)
}

// URL returns the vk.com link to the post.
func (p *Post) URL() string {
	return "https://vk.com/wall" + strconv.FormatInt(p.OwnerID, 10) + "_" + strconv.FormatInt(p.ID, 10)
}
