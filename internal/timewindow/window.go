// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

// Package timewindow converts user-supplied local start times into the
// one-day unix time windows sent to newsfeed.search.
package timewindow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Europe/Moscow must resolve on images without /usr/share/zoneinfo
)

const (
	// Layout is the accepted start time format, matching an HTML
	// datetime-local input.
	Layout = "2006-01-02T15:04"

	// DateLayout and ClockLayout are the split form of Layout.
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// Length is the fixed window length in seconds.
	Length int64 = 86400

	// DefaultZone is the zone start times are interpreted in.
	DefaultZone = "Europe/Moscow"
)

// ErrInvalidStartTime is returned for start times that do not match Layout.
var ErrInvalidStartTime = errors.New("invalid start time")

// Window is an optional [Start, End) range in unix seconds. The zero value
// means no time filter: both bounds are nil.
type Window struct {
	Start *int64 `json:"start_time,omitempty"`
	End   *int64 `json:"end_time,omitempty"`
}

// IsSet reports whether the window carries bounds.
func (w Window) IsSet() bool {
	return w.Start != nil && w.End != nil
}

// String renders the window as "start_end", using None for unset bounds.
func (w Window) String() string {
	return formatBound(w.Start) + "_" + formatBound(w.End)
}

func formatBound(b *int64) string {
	if b == nil {
		return "None"
	}
	return strconv.FormatInt(*b, 10)
}

// Converter parses start times in a fixed location.
type Converter struct {
	loc *time.Location
}

// NewConverter returns a Converter for loc. A nil loc means UTC.
func NewConverter(loc *time.Location) *Converter {
	if loc == nil {
		loc = time.UTC
	}
	return &Converter{loc: loc}
}

// LoadConverter returns a Converter for the named IANA zone.
func LoadConverter(zoneName string) (*Converter, error) {
	if zoneName == "" {
		zoneName = DefaultZone
	}
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zoneName, err)
	}
	return NewConverter(loc), nil
}

// Location returns the converter's time zone.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Unix parses startTime in the converter's zone and returns unix seconds.
func (c *Converter) Unix(startTime string) (int64, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(startTime), c.loc)
	if err != nil {
		return 0, fmt.Errorf("%w %q: expected YYYY-MM-DDTHH:MM", ErrInvalidStartTime, startTime)
	}
	return t.Unix(), nil
}

// Window returns the one-day window beginning at startTime. An empty
// startTime yields the zero Window with no bounds.
func (c *Converter) Window(startTime string) (Window, error) {
	if strings.TrimSpace(startTime) == "" {
		return Window{}, nil
	}
	start, err := c.Unix(startTime)
	if err != nil {
		return Window{}, err
	}
	end := start + Length
	return Window{Start: &start, End: &end}, nil
}

// JoinParts combines a separate date (YYYY-MM-DD) and clock (HH:MM) into
// the Layout form. A missing date yields ""; a missing clock means midnight.
func JoinParts(date, clock string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = "00:00"
	}
	return date + "T" + clock
}

// WindowFromParts is Window for a separate date and clock, see JoinParts.
func (c *Converter) WindowFromParts(date, clock string) (Window, error) {
	return c.Window(JoinParts(date, clock))
}
