// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package mapview

// Figure is the subset of the Plotly figure schema used by the globe.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a scattergeo trace.
type Trace struct {
	Type      string    `json:"type"`
	Mode      string    `json:"mode"`
	Lat       []float64 `json:"lat"`
	Lon       []float64 `json:"lon"`
	HoverText []string  `json:"hovertext"`
	HoverInfo string    `json:"hoverinfo,omitempty"`
	Marker    *Marker   `json:"marker,omitempty"`
}

// Marker styles trace markers.
type Marker struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Layout is the figure layout.
type Layout struct {
	Geo        GeoLayout `json:"geo"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	ShowLegend bool      `json:"showlegend"`
	Margin     *Margin   `json:"margin,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// GeoLayout styles the globe.
type GeoLayout struct {
	Projection    Projection `json:"projection"`
	ShowLand      bool       `json:"showland"`
	LandColor     string     `json:"landcolor"`
	ShowOcean     bool       `json:"showocean"`
	OceanColor    string     `json:"oceancolor"`
	ShowLakes     bool       `json:"showlakes"`
	LakeColor     string     `json:"lakecolor"`
	ShowCountries bool       `json:"showcountries"`
	CountryColor  string     `json:"countrycolor"`
	CountryWidth  float64    `json:"countrywidth"`
}

// Projection selects the map projection.
type Projection struct {
	Type string `json:"type"`
}

// PlotConfig is the Plotly config argument.
type PlotConfig struct {
	Responsive  bool `json:"responsive"`
	DisplayLogo bool `json:"displaylogo"`
	ScrollZoom  bool `json:"scrollZoom"`
}
