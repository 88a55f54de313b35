package picker

import (
	"slices"
	"strings"
	"time"
)

// Rules decides which days and times may be selected. A day or time is
// disabled as soon as any single rule matches.
type Rules struct {
	// DisabledDates holds specific days in YYYY-MM-DD form.
	DisabledDates []string
	// DisablePast rejects days before today and times before now on today.
	DisablePast bool
	// DisableFuture rejects days after today and times after now on today.
	DisableFuture bool
	// DisableBefore rejects everything earlier than the boundary.
	DisableBefore *time.Time
	// DisableAfter rejects everything later than the boundary.
	DisableAfter *time.Time
}

// DateDisabled reports whether day may not be selected.
// now supplies "today" and should already be in the picker's location.
func (r Rules) DateDisabled(day, now time.Time) bool {
	if day.IsZero() {
		return false
	}
	day = day.In(now.Location())

	if slices.Contains(r.DisabledDates, day.Format(DateLayout)) {
		return true
	}
	if r.DisablePast && dayKey(day) < dayKey(now) {
		return true
	}
	if r.DisableFuture && dayKey(day) > dayKey(now) {
		return true
	}
	if r.DisableBefore != nil && dayKey(day) < dayKey(r.DisableBefore.In(now.Location())) {
		return true
	}
	if r.DisableAfter != nil && dayKey(day) > dayKey(r.DisableAfter.In(now.Location())) {
		return true
	}
	return false
}

// TimeDisabled reports whether hour:minute in period may not be selected on
// day. Time rules only bite on the boundary day itself; whole-day rejection is
// DateDisabled's job. A zero day disables nothing.
func (r Rules) TimeDisabled(day time.Time, hour, minute int, period Period, now time.Time) bool {
	if day.IsZero() {
		return false
	}
	loc := now.Location()
	day = day.In(loc)
	candidate := time.Date(day.Year(), day.Month(), day.Day(), To24Hour(hour, period), minute, 0, 0, loc)

	if r.DisablePast && sameDay(day, now) && candidate.Before(now) {
		return true
	}
	if r.DisableFuture && sameDay(day, now) && candidate.After(now) {
		return true
	}
	if r.DisableBefore != nil {
		boundary := r.DisableBefore.In(loc)
		if sameDay(day, boundary) && candidate.Before(boundary) {
			return true
		}
	}
	if r.DisableAfter != nil {
		boundary := r.DisableAfter.In(loc)
		if sameDay(day, boundary) && candidate.After(boundary) {
			return true
		}
	}
	return false
}

// Normalized returns a copy whose disabled dates are in DateLayout form, so
// " 2026-10-16" matches the same day as "2026-10-16". Entries that do not
// parse are kept trimmed.
func (r Rules) Normalized() Rules {
	out := r.Clone()
	for i, d := range out.DisabledDates {
		d = strings.TrimSpace(d)
		if t, err := time.Parse(DateLayout, d); err == nil {
			d = t.Format(DateLayout)
		}
		out.DisabledDates[i] = d
	}
	return out
}

// Clone returns a deep copy so callers can mutate the result freely.
func (r Rules) Clone() Rules {
	out := r
	out.DisabledDates = slices.Clone(r.DisabledDates)
	if r.DisableBefore != nil {
		b := *r.DisableBefore
		out.DisableBefore = &b
	}
	if r.DisableAfter != nil {
		a := *r.DisableAfter
		out.DisableAfter = &a
	}
	return out
}
