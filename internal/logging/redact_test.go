// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package logging

import (
	"strings"
	"testing"
)

func TestRedactToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"short", "abc123", "***"},
		{"long", "vk1.a.0123456789abcdef", "vk1....cdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RedactToken(tt.input); got != tt.want {
				t.Errorf("RedactToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	secret := "vk1.a.supersecretvalue0001"
	got := RedactURL("https://api.vk.com/method/newsfeed.search?q=moscow&access_token=" + secret + "&v=5.131")

	if strings.Contains(got, secret) {
		t.Errorf("RedactURL() = %q, leaked token", got)
	}
	if !strings.Contains(got, "q=moscow") {
		t.Errorf("RedactURL() = %q, want other params kept", got)
	}
}
