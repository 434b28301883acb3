// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package validation

import (
	"strings"
	"testing"
)

type searchForm struct {
	Query     string `query:"query" validate:"notblank,max=500"`
	Count     string `query:"count" validate:"required,number"`
	StartTime string `query:"start_time" validate:"omitempty,starttime"`
	Order     string `validate:"omitempty,oneof=asc desc"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input searchForm
	}{
		{"minimal", searchForm{Query: "cats", Count: "30"}},
		{"with start time", searchForm{Query: "cats", Count: "1", StartTime: "2024-01-15T09:00"}},
		{"padded start time", searchForm{Query: "cats", Count: "200", StartTime: " 2024-01-15T09:00 "}},
		{"order", searchForm{Query: "cats", Count: "5", Order: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     searchForm
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "blank query",
			input:     searchForm{Query: "   ", Count: "10"},
			wantField: "query",
			wantTag:   "notblank",
			wantMsg:   "query must not be blank",
		},
		{
			name:      "query too long",
			input:     searchForm{Query: strings.Repeat("a", 501), Count: "10"},
			wantField: "query",
			wantTag:   "max",
			wantMsg:   "query must be at most 500 characters",
		},
		{
			name:      "missing count",
			input:     searchForm{Query: "cats"},
			wantField: "count",
			wantTag:   "required",
			wantMsg:   "count is required",
		},
		{
			name:      "non-numeric count",
			input:     searchForm{Query: "cats", Count: "ten"},
			wantField: "count",
			wantTag:   "number",
			wantMsg:   "count must be a number",
		},
		{
			name:      "negative count",
			input:     searchForm{Query: "cats", Count: "-3"},
			wantField: "count",
			wantTag:   "number",
			wantMsg:   "count must be a number",
		},
		{
			name:      "malformed start time",
			input:     searchForm{Query: "cats", Count: "10", StartTime: "15.01.2024 09:00"},
			wantField: "start_time",
			wantTag:   "starttime",
			wantMsg:   "start_time must be a date and time in YYYY-MM-DDTHH:MM format",
		},
		{
			name:      "start time with seconds",
			input:     searchForm{Query: "cats", Count: "10", StartTime: "2024-01-15T09:00:00"},
			wantField: "start_time",
			wantTag:   "starttime",
		},
		{
			name:      "bad order",
			input:     searchForm{Query: "cats", Count: "10", Order: "random"},
			wantField: "Order",
			wantTag:   "oneof",
			wantMsg:   "Order must be one of: asc desc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error on %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&searchForm{Query: "cats", Count: "ten"})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "count must be a number" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "count" || apiErr.Details["value"] != "ten" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&searchForm{Query: " ", Count: "x", StartTime: "soon"})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if len(err.Errors()) != 3 {
		t.Fatalf("got %d errors, want 3", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v", apiErr.Details["fields"])
	}
	for _, want := range []string{"query", "count", "start_time"} {
		if !strings.Contains(apiErr.Message, want) {
			t.Errorf("Message %q does not mention %s", apiErr.Message, want)
		}
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	var ve RequestValidationError
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
	if ve.ToAPIError().Message != "Validation failed" {
		t.Errorf("ToAPIError().Message = %q", ve.ToAPIError().Message)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	t.Parallel()

	err := ValidateStruct("not a struct")
	if err == nil || err.Errors()[0].Field() != "unknown" {
		t.Errorf("ValidateStruct(string) = %v, want unknown-field error", err)
	}
}

func TestCustomValidationsRegistered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag     string
		valid   string
		invalid string
	}{
		{"starttime", "2024-01-15T12:00", "15.01.2024 12:00"},
		{"notblank", "кофе", "   "},
	}

	if len(tests) != len(customValidations) {
		t.Fatalf("%d custom tags registered, %d covered here", len(customValidations), len(tests))
	}

	v := GetValidator()
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			if err := v.Var(tt.valid, tt.tag); err != nil {
				t.Errorf("Var(%q, %s) error = %v", tt.valid, tt.tag, err)
			}
			if err := v.Var(tt.invalid, tt.tag); err == nil {
				t.Errorf("Var(%q, %s) = nil, want error", tt.invalid, tt.tag)
			}
		})
	}
}
