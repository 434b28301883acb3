// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package logging provides zerolog-based structured logging for Postmap.
//
// A single global logger is configured once from main via Init. Request
// handlers log through Ctx(ctx), which stamps request_id and correlation_id
// fields carried on the context by the HTTP middleware.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Str("cause", "upstream_http").Msg("Search degraded")
//
// # Supervisor Integration
//
// The suture supervisor logs through log/slog. NewSlogLogger returns an
// slog.Logger whose records are written by the global zerolog logger:
//
//	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
//
// # Secrets
//
// Outbound URLs carry the VK access token as a query parameter. Use
// RedactURL before logging any such URL.
package logging
