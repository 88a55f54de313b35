package picker

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the Go layout of disabled-date entries and calendar keys.
	DateLayout = "2006-01-02"

	// ValueFormat is the moment-style form of every emitted value.
	// Hours are not zero-padded and seconds are always zero.
	ValueFormat = "YYYY-MM-DD H:mm:00"
)

var (
	ErrEmptyValue   = errors.New("empty value")
	ErrInvalidValue = errors.New("invalid value")
)

// valueLayouts are tried in order. Go's "15" accepts one or two digits, so
// both "2026-10-16 9:05:00" and "2026-10-16 09:05:00" parse.
var valueLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseValue parses a bound value ("YYYY-MM-DD H:mm:ss") in loc.
func ParseValue(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyValue
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range valueLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
}

// FormatValue renders t as an emitted value. Seconds are dropped.
func FormatValue(t time.Time) string {
	return Format(t, ValueFormat)
}

// ParseDate parses a YYYY-MM-DD day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
