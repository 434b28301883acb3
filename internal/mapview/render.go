// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package mapview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/postmap/internal/config"
	"github.com/tomtom215/postmap/internal/models"
)

const (
	landColor    = "lightgreen"
	waterColor   = "rgb(0, 255, 255)"
	countryColor = "black"
	countryWidth = 0.5
	markerColor  = "#636efa"
	markerSize   = 8
)

var fragmentTemplate = template.Must(template.New("map").Parse(
	`{{if .ScriptURL}}<script src="{{.ScriptURL}}" charset="utf-8"></script>
{{end}}<div id="{{.ID}}" class="plotly-graph-div" style="height:{{.Height}}px; width:{{.Width}}px;"></div>
<script type="text/javascript">
Plotly.newPlot({{.ID}}, {{.Data}}, {{.Layout}}, {{.Config}});
</script>`))

type fragment struct {
	ID        string
	ScriptURL string
	Width     int
	Height    int
	Data      template.JS
	Layout    template.JS
	Config    template.JS
}

// Renderer turns geo points into an embeddable Plotly map.
type Renderer struct {
	Width       int
	Height      int
	PlotlyJSURL string
}

// NewRenderer creates a Renderer from configuration.
func NewRenderer(cfg *config.MapConfig) *Renderer {
	return &Renderer{
		Width:       cfg.Width,
		Height:      cfg.Height,
		PlotlyJSURL: cfg.PlotlyJSURL,
	}
}

// Figure builds the Plotly figure for points.
func (r *Renderer) Figure(points []models.GeoPoint) Figure {
	trace := Trace{
		Type:      "scattergeo",
		Mode:      "markers",
		Lat:       make([]float64, len(points)),
		Lon:       make([]float64, len(points)),
		HoverText: make([]string, len(points)),
		HoverInfo: "text",
		Marker:    &Marker{Size: markerSize, Color: markerColor},
	}
	for i, p := range points {
		trace.Lat[i] = p.Latitude
		trace.Lon[i] = p.Longitude
		trace.HoverText[i] = p.Text
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Geo: GeoLayout{
				Projection:    Projection{Type: "orthographic"},
				ShowLand:      true,
				LandColor:     landColor,
				ShowOcean:     true,
				OceanColor:    waterColor,
				ShowLakes:     true,
				LakeColor:     waterColor,
				ShowCountries: true,
				CountryColor:  countryColor,
				CountryWidth:  countryWidth,
			},
			Width:  r.Width,
			Height: r.Height,
			Margin: &Margin{L: 0, R: 0, T: 30, B: 0},
		},
	}
}

// Render returns the map fragment for points, or "" when there are none.
func (r *Renderer) Render(points []models.GeoPoint) (template.HTML, error) {
	if len(points) == 0 {
		return "", nil
	}

	fig := r.Figure(points)
	data, err := json.Marshal(fig.Data)
	if err != nil {
		return "", fmt.Errorf("failed to encode map traces: %w", err)
	}
	layout, err := json.Marshal(fig.Layout)
	if err != nil {
		return "", fmt.Errorf("failed to encode map layout: %w", err)
	}
	cfg, err := json.Marshal(PlotConfig{Responsive: true, ScrollZoom: true})
	if err != nil {
		return "", fmt.Errorf("failed to encode map config: %w", err)
	}

	var buf bytes.Buffer
	err = fragmentTemplate.Execute(&buf, fragment{
		ID:        uuid.NewString(),
		ScriptURL: r.PlotlyJSURL,
		Width:     r.Width,
		Height:    r.Height,
		Data:      template.JS(data),   //nolint:gosec // go-json output escapes HTML-significant characters
		Layout:    template.JS(layout), //nolint:gosec // same as above
		Config:    template.JS(cfg),    //nolint:gosec // same as above
	})
	if err != nil {
		return "", fmt.Errorf("failed to render map fragment: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
