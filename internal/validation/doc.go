// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator with the custom tags
// this service needs and translates failures into user-facing messages.
//
// # Field Names
//
// Error messages use the `query` struct tag as the field name when present,
// so a failure on
//
//	Count string `query:"count" validate:"required,number"`
//
// reads "count must be a number", matching the parameter the user typed.
//
// # Custom Tags
//
//   - starttime: "YYYY-MM-DDTHH:MM" (Go layout 2006-01-02T15:04)
//   - notblank: string must contain a non-space character
//
// # Error Types
//
// ValidationError is a single field failure. RequestValidationError
// aggregates them and converts to the API error shape with ToAPIError:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "count must be a number",
//	    "details": {"field": "count", "tag": "number", "value": "ten"}
//	}
package validation
