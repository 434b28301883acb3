// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/search"
	"github.com/tomtom215/postmap/internal/validation"
)

// Index redirects to the search page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/search", http.StatusFound)
}

// SearchPage renders the HTML search form and, when a query is given,
// the ranked posts, the map and the place statistics.
func (h *Handler) SearchPage(w http.ResponseWriter, r *http.Request) {
	q := searchQueryFrom(r)
	page := h.newSearchPage(q)

	if q.Blank() {
		h.renderPage(w, r, http.StatusOK, page)
		return
	}

	req, verr := q.Validate()
	if verr != nil {
		for _, fe := range verr.Errors() {
			page.Errors = append(page.Errors, fe.Error())
		}
		h.renderPage(w, r, http.StatusBadRequest, page)
		return
	}

	res, err := h.search.Search(r.Context(), req)
	if err != nil {
		var sverr *search.ValidationError
		if errors.As(err, &sverr) {
			page.Errors = append(page.Errors, sverr.Error())
			h.renderPage(w, r, http.StatusBadRequest, page)
			return
		}
		logging.CtxErr(r.Context(), err).Msg("Search failed")
		status := http.StatusBadGateway
		if res == nil {
			status = http.StatusInternalServerError
			page.Notice = "Search failed. Please try again later."
		} else {
			h.fillResult(page, res)
		}
		h.renderPage(w, r, status, page)
		return
	}

	h.fillResult(page, res)
	h.renderPage(w, r, http.StatusOK, page)
}

// SearchAPI godoc
// @Summary Search posts
// @Description Searches VK posts, ranks them by semantic similarity to the query and aggregates their geotags by place.
// @Tags Search
// @Produce json
// @Param query query string false "Search text; blank returns an empty result"
// @Param count query int true "Number of posts to request" minimum(1)
// @Param start_time query string false "Window start, YYYY-MM-DDTHH:MM in the service time zone"
// @Success 200 {object} APIResponse{data=search.Result}
// @Failure 400 {object} APIResponse
// @Failure 429 {object} APIResponse
// @Failure 502 {object} APIResponse
// @Router /api/v1/search [get]
func (h *Handler) SearchAPI(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := searchQueryFrom(r)

	if q.Blank() {
		rw.Success(search.EmptyResult(search.Request{}))
		return
	}

	req, verr := q.Validate()
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	res, err := h.search.Search(r.Context(), req)
	if err != nil {
		var sverr *search.ValidationError
		if errors.As(err, &sverr) {
			rw.ValidationError(sverr.Error(), map[string]interface{}{"field": sverr.Field})
			return
		}
		logging.CtxErr(r.Context(), err).Msg("Search failed")
		details := map[string]interface{}{"cause": search.UpstreamCause(err)}
		if res != nil && res.Notice != "" {
			details["notice"] = res.Notice
		}
		rw.ExternalServiceError("VK search failed", details)
		return
	}

	hit := res.CacheHit
	rw.SuccessWithMeta(res, &APIMeta{CacheHit: &hit})
}

func writeValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
}
