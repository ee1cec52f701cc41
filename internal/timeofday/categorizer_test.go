// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package timeofday

import (
	"testing"
	"time"

	"github.com/tomtom215/bytewise/internal/models"
)

func clockAt(hour int) Option {
	return WithClock(func() time.Time {
		return time.Date(2026, 3, 2, hour, 30, 0, 0, time.UTC)
	})
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	// 14:30 is Lunch in the default table.
	c := NewCategorizer(DefaultThresholds(), clockAt(14))

	tests := []struct {
		name string
		text string
		want models.TimeCategory
	}{
		{"empty", "", models.TimeCategoryOther},
		{"whitespace", "   ", models.TimeCategoryOther},
		{"breakfast keyword", "Breakfast", models.TimeCategoryBreakfast},
		{"morning keyword", "Morning pastries", models.TimeCategoryBreakfast},
		{"lunch keyword", "LUNCH", models.TimeCategoryLunch},
		{"first listed category wins", "Lunch,Dinner", models.TimeCategoryLunch},
		{"evening keyword", "Evening only", models.TimeCategoryDinner},
		{"keyword beats hour", "Dinner from 7am", models.TimeCategoryDinner},
		{"keyword beats all day", "Breakfast all day", models.TimeCategoryBreakfast},
		{"halal cart", "HALAL CART- AVAILABLE 2PM-10PM", models.TimeCategoryLunch},
		{"breakfast hour", "Opens 6am", models.TimeCategoryBreakfast},
		{"ten am", "from 10am", models.TimeCategoryBreakfast},
		{"eleven am", "11am", models.TimeCategoryLunch},
		{"noon", "12pm to close", models.TimeCategoryLunch},
		{"dinner hour", "Open 5pm", models.TimeCategoryDinner},
		{"breakfast hour beats dinner hour", "6am and 6pm", models.TimeCategoryBreakfast},
		{"all day", "All Day", models.TimeCategoryLunch},
		{"24 hour", "Open 24 hours", models.TimeCategoryLunch},
		{"24hr", "24hr", models.TimeCategoryLunch},
		{"no recognizable time", "Central Dining Commons", models.TimeCategoryOther},
		{"closed range", "10pm-2am", models.TimeCategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Categorize(tt.text); got != tt.want {
				t.Errorf("Categorize(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategorizeAllDayFollowsClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want models.TimeCategory
	}{
		{3, models.TimeCategoryOther},
		{8, models.TimeCategoryBreakfast},
		{12, models.TimeCategoryLunch},
		{18, models.TimeCategoryDinner},
	}
	for _, tt := range tests {
		c := NewCategorizer(DefaultThresholds(), clockAt(tt.hour))
		if got := c.Categorize("All Day"); got != tt.want {
			t.Errorf("at %02d:30 Categorize(All Day) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestCategorizeExplicitRange(t *testing.T) {
	t.Parallel()

	// Dinner runs to midnight so late ranges resolve to a meal.
	late := Thresholds{
		Breakfast: Range{Start: 5, End: 11},
		Lunch:     Range{Start: 11, End: 16},
		Dinner:    Range{Start: 16, End: 24},
	}

	tests := []struct {
		name string
		text string
		hour int
		want models.TimeCategory
	}{
		{"overnight open", "10pm-2am", 23, models.TimeCategoryDinner},
		{"overnight after midnight", "10pm - 2am", 1, models.TimeCategoryOther},
		{"overnight closed", "10pm-2am", 12, models.TimeCategoryOther},
		{"spaced words", "11 pm to 1 am", 23, models.TimeCategoryDinner},
		{"midnight start", "12am-4am", 23, models.TimeCategoryOther},
		{"equal ends wrap", "11pm-11pm", 14, models.TimeCategoryLunch},
		{"minutes", "10:30pm-2:00am", 23, models.TimeCategoryDinner},
		{"inherited meridiem", "10-2am", 22, models.TimeCategoryDinner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCategorizer(late, clockAt(tt.hour))
			if got := c.Categorize(tt.text); got != tt.want {
				t.Errorf("Categorize(%q) at %02d:30 = %s, want %s", tt.text, tt.hour, got, tt.want)
			}
		})
	}
}

func TestParseHourRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text       string
		start, end int
		ok         bool
	}{
		{"10pm-2am", 22, 2, true},
		{"11 pm to 1 am", 23, 1, true},
		{"7-10am", 7, 10, true},
		{"11-2pm", 11, 14, true},
		{"10-2am", 22, 2, true},
		{"12-3pm", 12, 15, true},
		{"10:30pm-2:00am", 22, 2, true},
		{"9pm until 11:30pm", 21, 0, true},
		{"open 7pm till 1am", 19, 1, true},
		{"building 3, open 5pm", 0, 0, false},
		{"13pm-2am", 0, 0, false},
		{"late night", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			start, end, ok := parseHourRange(tt.text)
			if ok != tt.ok || start != tt.start || end != tt.end {
				t.Errorf("parseHourRange(%q) = %d, %d, %v, want %d, %d, %v",
					tt.text, start, end, ok, tt.start, tt.end, tt.ok)
			}
		})
	}
}

func TestTo24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour     int
		meridiem string
		want     int
	}{
		{12, "am", 0},
		{1, "am", 1},
		{11, "am", 11},
		{12, "pm", 12},
		{1, "pm", 13},
		{11, "pm", 23},
	}
	for _, tt := range tests {
		if got := to24(tt.hour, tt.meridiem); got != tt.want {
			t.Errorf("to24(%d, %s) = %d, want %d", tt.hour, tt.meridiem, got, tt.want)
		}
	}
}

func TestInRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour, start, end int
		want             bool
	}{
		{9, 9, 17, true},
		{17, 9, 17, false},
		{23, 22, 2, true},
		{1, 22, 2, true},
		{2, 22, 2, false},
		{12, 22, 2, false},
		{5, 8, 8, true},
	}
	for _, tt := range tests {
		if got := inRange(tt.hour, tt.start, tt.end); got != tt.want {
			t.Errorf("inRange(%d, %d, %d) = %v, want %v", tt.hour, tt.start, tt.end, got, tt.want)
		}
	}
}
