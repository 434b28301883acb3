// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// VK items are decoded field by field. A field of an unexpected type is
// treated as absent so one bad geotag or text cannot fail the whole
// newsfeed.search response.

// UnmarshalJSON decodes a post leniently. Only a post that is not a JSON
// object is an error.
func (p *Post) UnmarshalJSON(data []byte) error {
	fields, ok := rawObject(data)
	if !ok {
		return fmt.Errorf("post is not a JSON object: %.64s", data)
	}

	*p = Post{
		ID:       rawInt64(fields["id"]),
		OwnerID:  rawInt64(fields["owner_id"]),
		FromID:   rawInt64(fields["from_id"]),
		Date:     rawInt64(fields["date"]),
		PostType: rawString(fields["post_type"]),
		Text:     rawStringPtr(fields["text"]),
	}
	if raw, present := fields["geo"]; present && !isNull(raw) {
		p.Geo = &Geo{}
		if err := p.Geo.UnmarshalJSON(raw); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON decodes a geotag leniently. A geotag that is not an object
// decodes to an empty Geo, which carries no place.
func (g *Geo) UnmarshalJSON(data []byte) error {
	*g = Geo{}
	fields, ok := rawObject(data)
	if !ok {
		return nil
	}

	g.Type = rawString(fields["type"])
	g.Coordinates = rawString(fields["coordinates"])
	if raw, present := fields["place"]; present {
		if place, ok := rawObject(raw); ok {
			g.Place = placeFromFields(place)
		}
	}
	return nil
}

func placeFromFields(fields map[string]json.RawMessage) *Place {
	return &Place{
		ID:        rawInt64(fields["id"]),
		Title:     rawString(fields["title"]),
		Latitude:  rawFloat64Ptr(fields["latitude"]),
		Longitude: rawFloat64Ptr(fields["longitude"]),
		Country:   rawInt64(fields["country"]),
		City:      rawInt64(fields["city"]),
	}
}

func rawObject(data []byte) (map[string]json.RawMessage, bool) {
	if isNull(data) {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func rawInt64(raw json.RawMessage) int64 {
	var v int64
	if isNull(raw) || json.Unmarshal(raw, &v) != nil {
		return 0
	}
	return v
}

func rawString(raw json.RawMessage) string {
	if s := rawStringPtr(raw); s != nil {
		return *s
	}
	return ""
}

func rawStringPtr(raw json.RawMessage) *string {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return &s
}

func rawFloat64Ptr(raw json.RawMessage) *float64 {
	var v float64
	if isNull(raw) || json.Unmarshal(raw, &v) != nil {
		return nil
	}
	return &v
}
