// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package logging

import "net/url"

// secretParams are query parameters whose values never reach the logs.
var secretParams = []string{"access_token", "api_key", "token"}

// RedactToken masks a secret, keeping the first and last 4 characters of
// long values.
func RedactToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// RedactURL returns raw with secret query parameter values masked. Values
// that fail to parse are replaced entirely.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}
	q := u.Query()
	changed := false
	for _, name := range secretParams {
		if v := q.Get(name); v != "" {
			q.Set(name, RedactToken(v))
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
