// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/postmap/internal/search"
	"github.com/tomtom215/postmap/internal/timewindow"
	"github.com/tomtom215/postmap/internal/validation"
)

// SearchQuery is the raw search form. StartTime takes precedence over the
// separate Date and Clock fields.
type SearchQuery struct {
	Query     string `query:"query" validate:"max=500"`
	Count     string `query:"count" validate:"required,number,max=6"`
	StartTime string `query:"start_time" validate:"omitempty,starttime"`
	Date      string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Clock     string `query:"time" validate:"omitempty,datetime=15:04"`
}

// searchQueryFrom reads the search form from URL query parameters.
func searchQueryFrom(r *http.Request) SearchQuery {
	q := r.URL.Query()
	return SearchQuery{
		Query:     q.Get("query"),
		Count:     strings.TrimSpace(q.Get("count")),
		StartTime: strings.TrimSpace(q.Get("start_time")),
		Date:      strings.TrimSpace(q.Get("date")),
		Clock:     strings.TrimSpace(q.Get("time")),
	}
}

// Blank reports whether no search was requested.
func (q *SearchQuery) Blank() bool {
	return strings.TrimSpace(q.Query) == ""
}

// Start returns the effective start time in timewindow.Layout form.
func (q *SearchQuery) Start() string {
	if q.StartTime != "" {
		return q.StartTime
	}
	return timewindow.JoinParts(q.Date, q.Clock)
}

// Validate checks the form and converts it to a search.Request.
func (q *SearchQuery) Validate() (search.Request, *validation.RequestValidationError) {
	if verr := validation.ValidateStruct(q); verr != nil {
		return search.Request{}, verr
	}
	// number and max=6 guarantee Atoi succeeds.
	count, _ := strconv.Atoi(q.Count)
	return search.Request{
		Query:     strings.TrimSpace(q.Query),
		Count:     count,
		StartTime: q.Start(),
	}, nil
}
