// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package timeofday

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/bytewise/internal/models"
)

// Keywords per category, checked in category order.
var (
	breakfastKeywords = []string{"breakfast", "morning"}
	lunchKeywords     = []string{"lunch"}
	dinnerKeywords    = []string{"dinner", "evening"}
	allDayKeywords    = []string{"all day", "24 hour", "24hr"}
)

// Hour mentions per category, checked after every keyword.
var (
	breakfastHours = regexp.MustCompile(`\b[5-9]am\b|\b10am\b`)
	lunchHours     = regexp.MustCompile(`\b11am\b|\b12pm\b|\b[1-3]pm\b`)
	dinnerHours    = regexp.MustCompile(`\b[4-9]pm\b`)
)

// hourRange matches "h[:mm][am|pm] <sep> h[:mm]am|pm", e.g. "10pm-2am",
// "11 pm to 1 am", "7-10am" or "10:30pm-2:00am". The start meridiem is
// optional and inherited from the end.
var hourRange = regexp.MustCompile(
	`(\d{1,2})(?::([0-5]\d))?\s*(am|pm)?\s*(?:-|\x{2013}|to|until|till)\s*(\d{1,2})(?::([0-5]\d))?\s*(am|pm)`)

// Categorizer maps availability text or the wall clock to a meal period.
// It is safe for concurrent use.
type Categorizer struct {
	thresholds Thresholds
	now        func() time.Time
}

// Option configures a Categorizer.
type Option func(*Categorizer)

// WithClock overrides the wall clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Categorizer) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCategorizer creates a Categorizer using the given thresholds.
func NewCategorizer(thresholds Thresholds, opts ...Option) *Categorizer {
	c := &Categorizer{
		thresholds: thresholds,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Thresholds returns the configured hour table.
func (c *Categorizer) Thresholds() Thresholds {
	return c.thresholds
}

// Current returns the category for the current wall-clock hour.
func (c *Categorizer) Current() models.TimeCategory {
	return c.thresholds.Current(c.now().Hour())
}

// Categorize derives a category from free-form availability text.
//
// Steps run in order and the first match wins: empty text, category
// keywords, hour mentions, all-day markers, then an explicit hour range
// which resolves to the current category while the range is open.
// Anything else is Other.
func (c *Categorizer) Categorize(text string) models.TimeCategory {
	if strings.TrimSpace(text) == "" {
		return models.TimeCategoryOther
	}
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, breakfastKeywords):
		return models.TimeCategoryBreakfast
	case containsAny(lower, lunchKeywords):
		return models.TimeCategoryLunch
	case containsAny(lower, dinnerKeywords):
		return models.TimeCategoryDinner
	}

	switch {
	case breakfastHours.MatchString(lower):
		return models.TimeCategoryBreakfast
	case lunchHours.MatchString(lower):
		return models.TimeCategoryLunch
	case dinnerHours.MatchString(lower):
		return models.TimeCategoryDinner
	}

	if containsAny(lower, allDayKeywords) {
		return c.Current()
	}

	if start, end, ok := parseHourRange(lower); ok {
		if inRange(c.now().Hour(), start, end) {
			return c.Current()
		}
	}

	return models.TimeCategoryOther
}

// parseHourRange extracts the first explicit hour range as 24-hour values.
// Start minutes are truncated; end minutes round up to the next hour so the
// partial hour stays open.
func parseHourRange(lower string) (start, end int, ok bool) {
	m := hourRange.FindStringSubmatch(lower)
	if m == nil {
		return 0, 0, false
	}
	startHour, err := strconv.Atoi(m[1])
	if err != nil || startHour < 1 || startHour > 12 {
		return 0, 0, false
	}
	endHour, err := strconv.Atoi(m[4])
	if err != nil || endHour < 1 || endHour > 12 {
		return 0, 0, false
	}

	endMeridiem := m[6]
	startMeridiem := m[3]
	if startMeridiem == "" {
		// "7-10am" is 7am-10am, while "10-2am" crosses midnight from 10pm.
		startMeridiem = endMeridiem
		if startHour%12 > endHour%12 {
			startMeridiem = flipMeridiem(endMeridiem)
		}
	}

	start = to24(startHour, startMeridiem)
	end = to24(endHour, endMeridiem)
	if m[5] != "" && m[5] != "00" {
		end = (end + 1) % 24
	}
	return start, end, true
}

func flipMeridiem(meridiem string) string {
	if meridiem == "am" {
		return "pm"
	}
	return "am"
}

// to24 converts a 12-hour clock value. 12am is 0 and 12pm is 12.
func to24(hour int, meridiem string) int {
	switch {
	case meridiem == "am" && hour == 12:
		return 0
	case meridiem == "pm" && hour < 12:
		return hour + 12
	default:
		return hour
	}
}

// inRange reports whether hour is in [start, end), wrapping past midnight
// when end is not after start.
func inRange(hour, start, end int) bool {
	if end > start {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
