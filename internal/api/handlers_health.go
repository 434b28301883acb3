// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
//
// @Summary Liveness probe
// @Description Returns 200 OK while the process is serving HTTP.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK only if the embedding model is loaded and the cache answers.
//
// @Summary Readiness probe
// @Description Returns 200 OK when the embedding model is loaded and the response cache is reachable. Returns 503 otherwise.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	modelReady := h.model != nil && h.model.Ready()
	cacheErr := h.search.Ping(r.Context())

	status := map[string]interface{}{
		"model_ready": modelReady,
		"cache_ready": cacheErr == nil,
		"cache":       h.search.CacheStats(),
	}
	if h.model != nil {
		status["embedding_provider"] = h.model.Provider()
	}
	if h.vkBreaker != nil {
		status["vk_circuit"] = h.vkBreaker.State()
	}

	if !modelReady || cacheErr != nil {
		rw.ServiceUnavailable("Service not ready", status)
		return
	}
	rw.Success(status)
}
