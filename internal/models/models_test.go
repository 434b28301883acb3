// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func strPtr(s string) *string { return &s }

func TestPostHasText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text *string
		want bool
	}{
		{"absent", nil, false},
		{"empty", strPtr(""), false},
		{"whitespace", strPtr(" \n\t"), false},
		{"present", strPtr("hello"), true},
	}
	for _, tt := range tests {
		p := Post{Text: tt.text}
		if got := p.HasText(); got != tt.want {
			t.Errorf("%s: HasText() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPostURL(t *testing.T) {
	t.Parallel()

	p := Post{ID: 42, OwnerID: -1001}
	if got := p.URL(); got != "https://vk.com/wall-1001_42" {
		t.Errorf("URL() = %q, want https://vk.com/wall-1001_42", got)
	}
}

func TestSearchResponseDecode(t *testing.T) {
	t.Parallel()

	body := `{"response":{"items":[
		{"id":1,"owner_id":5,"date":1700000000,"text":"hi",
		 "geo":{"type":"point","coordinates":"55.75 37.61",
		        "place":{"title":"Moscow","latitude":55.75,"longitude":37.61}}},
		{"id":2,"owner_id":5,"date":1700000001}
	],"count":2,"total_count":1000}}`

	var resp SearchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	items := resp.Items()
	if len(items) != 2 {
		t.Fatalf("len(Items()) = %d, want 2", len(items))
	}
	if items[0].Geo == nil || items[0].Geo.Place == nil || items[0].Geo.Place.Title != "Moscow" {
		t.Errorf("items[0].Geo = %+v, want Moscow place", items[0].Geo)
	}
	if items[1].Text != nil || items[1].Geo != nil {
		t.Errorf("items[1] = %+v, want absent text and geo", items[1])
	}
}

func TestSearchResponseItemsNil(t *testing.T) {
	t.Parallel()

	var nilResp *SearchResponse
	if got := nilResp.Items(); got != nil {
		t.Errorf("nil.Items() = %v, want nil", got)
	}
	errResp := &SearchResponse{Error: &VKError{Code: 5, Message: "User authorization failed"}}
	if got := errResp.Items(); got != nil {
		t.Errorf("error response Items() = %v, want nil", got)
	}
}

func TestPostDecodeToleratesBadFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantText  bool
		wantGeo   bool
		wantPlace bool
		wantLat   bool
	}{
		{"valid", `{"id":1,"text":"hi","geo":{"place":{"title":"Moscow","latitude":55.75,"longitude":37.61}}}`, true, true, true, true},
		{"string coordinates", `{"id":2,"text":"hi","geo":{"place":{"title":"Moscow","latitude":"55.1","longitude":"37.6"}}}`, true, true, true, false},
		{"place is array", `{"id":3,"text":"hi","geo":{"place":[]}}`, true, true, false, false},
		{"geo is string", `{"id":4,"geo":"55.75 37.61"}`, false, true, false, false},
		{"geo null", `{"id":5,"geo":null}`, false, false, false, false},
		{"numeric text", `{"id":6,"text":42}`, false, false, false, false},
		{"null text", `{"id":7,"text":null}`, false, false, false, false},
		{"null latitude", `{"id":8,"geo":{"place":{"title":"X","latitude":null,"longitude":1}}}`, false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p Post
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if p.ID == 0 {
				t.Error("ID lost")
			}
			if got := p.Text != nil; got != tt.wantText {
				t.Errorf("text present = %v, want %v", got, tt.wantText)
			}
			if got := p.Geo != nil; got != tt.wantGeo {
				t.Fatalf("geo present = %v, want %v", got, tt.wantGeo)
			}
			if p.Geo == nil {
				return
			}
			if got := p.Geo.Place != nil; got != tt.wantPlace {
				t.Fatalf("place present = %v, want %v", got, tt.wantPlace)
			}
			if p.Geo.Place != nil {
				if got := p.Geo.Place.Latitude != nil; got != tt.wantLat {
					t.Errorf("latitude present = %v, want %v", got, tt.wantLat)
				}
			}
		})
	}
}

func TestSearchResponseDecodeKeepsPostsWithBadGeo(t *testing.T) {
	t.Parallel()

	body := `{"response":{"items":[
		{"id":1,"text":"ok","geo":{"place":{"title":"Moscow","latitude":55.75,"longitude":37.61}}},
		{"id":2,"text":"bad coords","geo":{"place":{"title":"Kazan","latitude":"55.1","longitude":"49.1"}}},
		{"id":3,"text":"bad place","geo":{"place":[]}}
	]}}`

	var resp SearchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := len(resp.Items()); got != 3 {
		t.Errorf("len(Items()) = %d, want 3", got)
	}
}

func TestSearchResponseDecodeRejectsNonObjectPost(t *testing.T) {
	t.Parallel()

	var resp SearchResponse
	if err := json.Unmarshal([]byte(`{"response":{"items":[1]}}`), &resp); err == nil {
		t.Error("Unmarshal() = nil, want error for non-object item")
	}
}

func TestPostRoundTripsThroughCacheEncoding(t *testing.T) {
	t.Parallel()

	lat, lon := 55.75, 37.61
	in := Post{ID: 9, OwnerID: -3, Date: 1700000000, Text: strPtr("hi"),
		Geo: &Geo{Type: "point", Place: &Place{Title: "Moscow", Latitude: &lat, Longitude: &lon}}}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out Post
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.ID != 9 || out.OwnerID != -3 || out.TextValue() != "hi" ||
		out.Geo == nil || out.Geo.Place == nil || *out.Geo.Place.Latitude != lat || out.Geo.Place.Title != "Moscow" {
		t.Errorf("round trip = %+v", out)
	}
}
