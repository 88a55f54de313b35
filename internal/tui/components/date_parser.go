package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// parseRelativeDateWithNow parses jump-to-date input relative to now.
// Supports:
// - "t" or "today" - today
// - "tm" or "tomorrow" - tomorrow
// - "mon", "tue", "wed", "thu", "fri", "sat", "sun" - next occurrence of weekday
// - "+3d" / "-3d" - 3 days from now / ago
// - "+2w" / "-2w" - 2 weeks from now / ago
// - "YYYY-MM-DD" - absolute date
// - "oct", "sept 2027" - first day of the month, this year unless given
func parseRelativeDateWithNow(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return time.Time{}, fmt.Errorf("empty input")
	}

	// Check for absolute date (YYYY-MM-DD)
	if len(input) == 10 && input[4] == '-' && input[7] == '-' {
		parsed, err := time.Parse("2006-01-02", input)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date format: %w", err)
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	// Handle "today" or "t"
	if input == "t" || input == "today" {
		return now, nil
	}

	// Handle "tomorrow" or "tm"
	if input == "tm" || input == "tomorrow" {
		return now.AddDate(0, 0, 1), nil
	}

	// Handle "+Nd" / "-Nd" and "+Nw" / "-Nw"
	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		return parseOffset(input, now)
	}

	// Handle weekday shortcuts
	weekdays := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	for _, wd := range weekdays {
		if input == wd {
			return nextWeekdayWithNow(wd, now)
		}
	}

	if t, ok := parseMonth(input, now); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date format: %s", input)
}

// parseOffset handles signed day and week offsets
func parseOffset(input string, now time.Time) (time.Time, error) {
	unit := input[len(input)-1]
	if unit != 'd' && unit != 'w' {
		return time.Time{}, fmt.Errorf("invalid offset: %s (use d or w)", input)
	}

	n, err := strconv.Atoi(input[:len(input)-1])
	if err != nil {
		if unit == 'w' {
			return time.Time{}, fmt.Errorf("invalid weeks format: %w", err)
		}
		return time.Time{}, fmt.Errorf("invalid days format: %w", err)
	}
	if n == 0 {
		return time.Time{}, fmt.Errorf("use 't' or 'today' instead of '%s'", input)
	}

	if unit == 'w' {
		n *= 7
	}
	return now.AddDate(0, 0, n), nil
}

// parseMonth matches a month name, optionally followed by a four digit year.
// Abbreviations and small typos are accepted as long as the match starts at
// the first letter of the month.
func parseMonth(input string, now time.Time) (time.Time, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 || len(fields) > 2 {
		return time.Time{}, false
	}

	year := now.Year()
	if len(fields) == 2 {
		y, err := strconv.Atoi(fields[1])
		if err != nil || len(fields[1]) != 4 {
			return time.Time{}, false
		}
		year = y
	}

	name := fields[0]
	if len(name) < 3 {
		return time.Time{}, false
	}

	matches := fuzzy.Find(name, monthNames)
	for _, m := range matches {
		if len(m.MatchedIndexes) > 0 && m.MatchedIndexes[0] == 0 {
			month := time.Month(m.Index + 1)
			return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()), true
		}
	}
	return time.Time{}, false
}

// FormatDate formats a time.Time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// nextWeekdayWithNow returns the next occurrence of weekday after now
func nextWeekdayWithNow(weekday string, now time.Time) (time.Time, error) {
	weekday = strings.ToLower(strings.TrimSpace(weekday))

	weekdayMap := map[string]time.Weekday{
		"mon": time.Monday,
		"tue": time.Tuesday,
		"wed": time.Wednesday,
		"thu": time.Thursday,
		"fri": time.Friday,
		"sat": time.Saturday,
		"sun": time.Sunday,
	}

	targetWeekday, ok := weekdayMap[weekday]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid weekday: %s", weekday)
	}

	// Calculate days until target weekday
	daysUntil := int(targetWeekday - now.Weekday())

	// If target is today or in the past this week, go to next week
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return now.AddDate(0, 0, daysUntil), nil
}

// getDateDescriptionWithNow returns a human-readable description of date
// relative to now (e.g., "today", "tomorrow", "3 days ago", "Monday")
func getDateDescriptionWithNow(date time.Time, now time.Time) string {
	// Normalize to start of day for comparison
	nowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	// Round to absorb DST shifts
	daysDiff := int(dateStart.Sub(nowStart).Round(24*time.Hour).Hours() / 24)

	switch {
	case daysDiff == 0:
		return "today"
	case daysDiff == 1:
		return "tomorrow"
	case daysDiff == -1:
		return "yesterday"
	case daysDiff >= 2 && daysDiff <= 6:
		// For dates within the next week, show weekday
		return date.Weekday().String()
	case daysDiff >= 7 && daysDiff < 28:
		weeks := daysDiff / 7
		if weeks == 1 {
			return "in 1 week"
		}
		return fmt.Sprintf("in %d weeks", weeks)
	case daysDiff < 0 && daysDiff > -28:
		return fmt.Sprintf("%d days ago", -daysDiff)
	}

	// For dates four weeks or more away, show the formatted date
	return date.Format("Jan 2, 2006")
}
