package picker

import "time"

const slotsPerPeriod = len(Hours) * len(Minutes)

// Availability is the disablement table for every time slot of one day.
//
// Disablement escalates upwards: an hour is disabled only when all twelve of
// its minutes are, and a period only when all of its hour/minute combinations
// are. The table must be recomputed whenever the day, the rules or "now" move.
type Availability struct {
	day     time.Time
	minutes [2][12][12]bool
	hours   [2][12]bool
	periods [2]bool
}

// ComputeAvailability evaluates rules for every slot of day.
func ComputeAvailability(rules Rules, day, now time.Time) Availability {
	a := Availability{day: day}
	for pi, period := range Periods {
		periodDisabled := true
		for hi, hour := range Hours {
			hourDisabled := true
			for mi, minute := range Minutes {
				disabled := rules.TimeDisabled(day, hour, minute, period, now)
				a.minutes[pi][hi][mi] = disabled
				if !disabled {
					hourDisabled = false
				}
			}
			a.hours[pi][hi] = hourDisabled
			if !hourDisabled {
				periodDisabled = false
			}
		}
		a.periods[pi] = periodDisabled
	}
	return a
}

// Day returns the day the table was computed for.
func (a Availability) Day() time.Time {
	return a.day
}

// MinuteDisabled reports whether hour:minute in period is disabled. Readings
// outside the selector's grid are always disabled.
func (a Availability) MinuteDisabled(hour, minute int, period Period) bool {
	hi, mi := hourIndex(hour), minuteIndex(minute)
	if hi < 0 || mi < 0 {
		return true
	}
	return a.minutes[period][hi][mi]
}

// HourDisabled reports whether every minute of hour in period is disabled.
func (a Availability) HourDisabled(hour int, period Period) bool {
	hi := hourIndex(hour)
	if hi < 0 {
		return true
	}
	return a.hours[period][hi]
}

// PeriodDisabled reports whether every slot in period is disabled.
func (a Availability) PeriodDisabled(period Period) bool {
	return a.periods[period]
}

// FirstEnabledMinute returns the earliest enabled minute of hour in period.
func (a Availability) FirstEnabledMinute(hour int, period Period) (int, bool) {
	hi := hourIndex(hour)
	if hi < 0 {
		return 0, false
	}
	for mi, minute := range Minutes {
		if !a.minutes[period][hi][mi] {
			return minute, true
		}
	}
	return 0, false
}

// FirstEnabled returns the earliest enabled hour and minute in period.
func (a Availability) FirstEnabled(period Period) (hour, minute int, ok bool) {
	for hi, h := range Hours {
		if a.hours[period][hi] {
			continue
		}
		if m, found := a.FirstEnabledMinute(h, period); found {
			return h, m, true
		}
	}
	return 0, 0, false
}

// Nearest finds the enabled slot closest to hour:minute in period, searching
// forward through the day first and then backward. It returns the reading
// unchanged when that slot is already enabled.
func (a Availability) Nearest(hour, minute int, period Period) (int, int, Period, bool) {
	hi, mi := hourIndex(hour), minuteIndex(minute)
	if hi < 0 || mi < 0 {
		hi, mi = 0, 0
	}
	start := int(period)*slotsPerPeriod + hi*len(Minutes) + mi

	for slot := start; slot < 2*slotsPerPeriod; slot++ {
		if h, m, p, ok := a.slot(slot); ok {
			return h, m, p, true
		}
	}
	for slot := start - 1; slot >= 0; slot-- {
		if h, m, p, ok := a.slot(slot); ok {
			return h, m, p, true
		}
	}
	return hour, minute, period, false
}

func (a Availability) slot(n int) (int, int, Period, bool) {
	p := n / slotsPerPeriod
	rest := n % slotsPerPeriod
	hi, mi := rest/len(Minutes), rest%len(Minutes)
	if a.minutes[p][hi][mi] {
		return 0, 0, AM, false
	}
	return Hours[hi], Minutes[mi], Period(p), true
}
