// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package config loads and validates Postmap configuration.
//
// Configuration is layered with Koanf v2. Later layers override earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: CONFIG_PATH, ./config.yaml, /etc/postmap/config.yaml
//  3. Environment variables, through an explicit name mapping
//
// Only mapped environment variables are read. An unrelated variable such as
// PATH never leaks into the configuration tree.
//
// # Required Settings
//
// VK_ACCESS_TOKEN must be supplied. There is no built-in token.
//
// # Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
package config
