// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/models"
	"github.com/tomtom215/postmap/internal/search"
)

//go:embed templates/search.html
var templateFS embed.FS

// postView is one ranked post as shown on the page.
type postView struct {
	URL       string
	Text      string
	Published string
	Score     string
	Scored    bool
	Place     string
}

// searchPage is the template data for search.html.
type searchPage struct {
	Query      string
	Count      int
	MaxCount   int
	StartTime  string
	Searched   bool
	Posts      []postView
	TotalCount int
	MapHTML    template.HTML
	Statistics []models.PlaceStatistic
	CacheHit   bool
	Notice     string
	Errors     []string
}

const publishedLayout = "2006-01-02 15:04"

func newPageTemplate() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/search.html"))
}

func (h *Handler) newSearchPage(q SearchQuery) *searchPage {
	page := &searchPage{
		Query:     q.Query,
		Count:     h.defaultCount,
		MaxCount:  h.maxCount,
		StartTime: q.Start(),
	}
	if n, err := strconv.Atoi(q.Count); err == nil {
		page.Count = n
	}
	return page
}

func (h *Handler) fillResult(page *searchPage, res *search.Result) {
	page.Searched = true
	page.Posts = make([]postView, len(res.Posts))
	for i := range res.Posts {
		rp := &res.Posts[i]
		view := postView{
			URL:       rp.Post.URL(),
			Text:      rp.Post.TextValue(),
			Published: rp.Post.PublishedAt().In(h.location).Format(publishedLayout),
			Scored:    rp.Scored,
		}
		if rp.Scored {
			view.Score = fmt.Sprintf("%.3f", rp.Score)
		}
		if rp.Post.Geo != nil && rp.Post.Geo.Place != nil {
			view.Place = rp.Post.Geo.Place.Title
		}
		page.Posts[i] = view
	}
	page.TotalCount = res.TotalCount
	page.MapHTML = res.MapHTML
	page.Statistics = res.Statistics
	page.CacheHit = res.CacheHit
	page.Notice = res.Notice
}

// renderPage renders into a buffer first so a template error can still
// produce a clean 500.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, page *searchPage) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, page); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render search page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
