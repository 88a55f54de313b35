package picker

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Period is the AM/PM half of a 12-hour clock reading.
type Period int

const (
	AM Period = iota
	PM
)

func (p Period) String() string {
	if p == PM {
		return "PM"
	}
	return "AM"
}

// ParsePeriod parses "AM" or "PM" (case-insensitive).
func ParsePeriod(s string) (Period, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AM":
		return AM, nil
	case "PM":
		return PM, nil
	}
	return AM, fmt.Errorf("invalid period: %q", s)
}

// Hours lists the selectable hours in display order. 12 comes first because it
// is the earliest reading of both periods.
var Hours = [12]int{12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

// Minutes lists the selectable five-minute increments.
var Minutes = [12]int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55}

// Periods lists both periods in display order.
var Periods = [2]Period{AM, PM}

// To24Hour converts a 12-hour reading to 0-23.
func To24Hour(hour int, p Period) int {
	if p == AM {
		if hour == 12 {
			return 0
		}
		return hour
	}
	if hour == 12 {
		return 12
	}
	return hour + 12
}

// From24Hour converts 0-23 to a 12-hour reading.
func From24Hour(hour int) (int, Period) {
	period := AM
	if hour >= 12 {
		period = PM
	}
	switch {
	case hour == 0:
		return 12, period
	case hour > 12:
		return hour - 12, period
	}
	return hour, period
}

// RoundMinute rounds a minute down to the nearest five-minute increment.
func RoundMinute(minute int) int {
	return minute / 5 * 5
}

func hourIndex(hour int) int {
	if hour == 12 {
		return 0
	}
	if hour < 1 || hour > 11 {
		return -1
	}
	return hour
}

func minuteIndex(minute int) int {
	if minute < 0 || minute > 55 || minute%5 != 0 {
		return -1
	}
	return minute / 5
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey orders calendar days independent of time-of-day.
func dayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func sameDay(a, b time.Time) bool {
	return dayKey(a) == dayKey(b)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DefaultLogger returns a non-nil logger, defaulting to slog.Default()
func DefaultLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
