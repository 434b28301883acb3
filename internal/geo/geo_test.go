// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package geo

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/postmap/internal/models"
)

func f64(v float64) *float64 { return &v }

func geoPost(id int64, lat, lon *float64, title string) models.Post {
	return models.Post{
		ID: id,
		Geo: &models.Geo{
			Type:  "point",
			Place: &models.Place{Title: title, Latitude: lat, Longitude: lon},
		},
	}
}

func TestExtractPoints(t *testing.T) {
	t.Parallel()

	posts := []models.Post{
		geoPost(1, f64(55.75), f64(37.61), "Moscow"),
		{ID: 2},
		{ID: 3, Geo: &models.Geo{Type: "point"}},
		geoPost(4, nil, f64(30.3), "Saint Petersburg"),
		geoPost(5, f64(59.93), f64(30.31), "Saint Petersburg"),
		geoPost(6, f64(91), f64(0), "North of north"),
		geoPost(7, f64(math.NaN()), f64(0), "Nowhere"),
		geoPost(8, f64(10), f64(math.Inf(1)), "Infinity"),
		geoPost(9, f64(10), f64(10), "   "),
		geoPost(10, f64(-33.86), f64(151.2), " Sydney "),
	}

	got := ExtractPoints(posts)
	want := []models.GeoPoint{
		{Latitude: 55.75, Longitude: 37.61, Text: "Moscow"},
		{Latitude: 59.93, Longitude: 30.31, Text: "Saint Petersburg"},
		{Latitude: 10, Longitude: 10, Text: ""},
		{Latitude: -33.86, Longitude: 151.2, Text: "Sydney"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPoints() = %+v, want %+v", got, want)
	}
}

func TestExtractPointsCountMatchesGeoPosts(t *testing.T) {
	t.Parallel()

	posts := make([]models.Post, 0, 20)
	withGeo := 0
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			posts = append(posts, geoPost(int64(i), f64(float64(i)), f64(float64(-i)), "P"))
			withGeo++
			continue
		}
		posts = append(posts, models.Post{ID: int64(i)})
	}

	got := ExtractPoints(posts)
	if len(got) != withGeo {
		t.Fatalf("len(ExtractPoints()) = %d, want %d", len(got), withGeo)
	}
	for _, p := range got {
		if int(p.Latitude)%3 != 0 {
			t.Errorf("point %+v derived from a post without geo", p)
		}
	}
}

func TestExtractPointsEmpty(t *testing.T) {
	t.Parallel()

	if got := ExtractPoints(nil); got == nil || len(got) != 0 {
		t.Errorf("ExtractPoints(nil) = %v, want empty slice", got)
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		places []string
		want   []models.PlaceStatistic
	}{
		{
			name:   "empty",
			places: nil,
			want:   []models.PlaceStatistic{},
		},
		{
			name:   "counts descending",
			places: []string{"A", "A", "B"},
			want:   []models.PlaceStatistic{{Text: "A", Count: 2}, {Text: "B", Count: 1}},
		},
		{
			name:   "ties by name",
			places: []string{"Tver", "Kazan", "Omsk", "Kazan", "Omsk", "Tver", "Sochi"},
			want: []models.PlaceStatistic{
				{Text: "Kazan", Count: 2},
				{Text: "Omsk", Count: 2},
				{Text: "Tver", Count: 2},
				{Text: "Sochi", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			points := make([]models.GeoPoint, len(tt.places))
			for i, name := range tt.places {
				points[i] = models.GeoPoint{Text: name}
			}

			got := Aggregate(points)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
