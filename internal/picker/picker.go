package picker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/perf"
)

// Tab is the active page of the modal.
type Tab int

const (
	TabDate Tab = iota
	TabTime
)

func (t Tab) String() string {
	if t == TabTime {
		return "Time"
	}
	return "Date"
}

// NoSelectionText is shown in the modal header when nothing is selected.
const NoSelectionText = "No date selected"

// Hints returned by Confirm when the selection may not be emitted.
const (
	HintDateUnavailable = "Selected date is unavailable"
	HintTimeUnavailable = "Selected time is unavailable"
)

// todayTolerance is how close the selection must be to now for the Today
// action to count as already applied.
const todayTolerance = 5 * time.Minute

// Selection is a day plus a 12-hour time of day.
type Selection struct {
	Date   time.Time // midnight of the selected day
	Hour   int       // 1-12
	Minute int       // multiple of 5
	Period Period
}

// IsZero reports whether no day is selected.
func (s Selection) IsZero() bool {
	return s.Date.IsZero()
}

// Year returns the year of the selected day.
func (s Selection) Year() int {
	return s.Date.Year()
}

// Time combines the selection into a 24-hour timestamp with zero seconds.
func (s Selection) Time() time.Time {
	if s.IsZero() {
		return time.Time{}
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(),
		To24Hour(s.Hour, s.Period), s.Minute, 0, 0, s.Date.Location())
}

// Value renders the selection as an emitted value straight from its fields.
// The value carries no offset, so a wall clock that falls in a DST gap is
// emitted as picked rather than normalized by the zone.
func (s Selection) Value() string {
	if s.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d:%02d:00", s.Date.Format(DateLayout), To24Hour(s.Hour, s.Period), s.Minute)
}

// SelectionFromTime splits t into a selection, rounding the minute down to the
// selector's five-minute grid.
func SelectionFromTime(t time.Time) Selection {
	hour, period := From24Hour(t.Hour())
	return Selection{
		Date:   startOfDay(t),
		Hour:   hour,
		Minute: RoundMinute(t.Minute()),
		Period: period,
	}
}

// Picker is the state machine behind the date-time picker: configuration,
// bound value, in-modal selection and view state. It renders nothing.
type Picker struct {
	opts   Options
	loc    *time.Location
	logger *slog.Logger
	clock  func() time.Time
	stats  *perf.Recorder

	value string

	open        bool
	tab         Tab
	sel         Selection
	viewed      time.Time
	yearOverlay bool
	years       YearPager
	avail       Availability
	hint        string
}

// New creates a closed picker with no bound value.
func New(opts Options, logger *slog.Logger) *Picker {
	return newWithClock(opts, logger, time.Now)
}

// newWithClock is an internal constructor that accepts a clock for testing
func newWithClock(opts Options, logger *slog.Logger, clock func() time.Time) *Picker {
	p := &Picker{
		logger: DefaultLogger(logger),
		clock:  clock,
		stats:  perf.NewRecorder("picker.availability", time.Millisecond),
	}
	p.SetOptions(opts)
	p.seed()
	p.years = NewYearPager(p.now().Year())
	return p
}

// SetClock replaces the source of "now" and reseeds from the bound value.
func (p *Picker) SetClock(clock func() time.Time) {
	p.clock = clock
	p.years = NewYearPager(p.now().Year())
	p.seed()
}

func (p *Picker) now() time.Time {
	return p.clock().In(p.loc)
}

// Options returns a copy of the active options.
func (p *Picker) Options() Options {
	o := p.opts
	o.Rules = o.Rules.Clone()
	return o
}

// SetOptions replaces the configuration and recomputes availability. An
// unknown timezone falls back to the local zone.
func (p *Picker) SetOptions(opts Options) {
	opts = opts.withDefaults()
	loc, err := opts.Location()
	if err != nil {
		p.logger.Warn("unknown timezone, using local", "timezone", opts.Timezone, "error", err)
		loc = time.Local
	}

	relocated := p.loc != nil && p.loc.String() != loc.String()
	p.opts = opts
	p.loc = loc
	if relocated {
		p.seed()
	}
	if p.opts.DateOnly {
		p.tab = TabDate
	}
	p.refresh()
}

// SetRules swaps only the disablement rules.
func (p *Picker) SetRules(rules Rules) {
	p.opts.Rules = rules.Normalized()
	p.refresh()
}

// Rules returns a copy of the active rules.
func (p *Picker) Rules() Rules {
	return p.opts.Rules.Clone()
}

// Location returns the zone all dates are interpreted in.
func (p *Picker) Location() *time.Location {
	return p.loc
}

// Value returns the bound value.
func (p *Picker) Value() string {
	return p.value
}

// SetValue binds a new value and reinitializes the selection from it. Empty
// or unparseable values seed the selection from now.
func (p *Picker) SetValue(value string) {
	p.value = value
	p.seed()
}

// seed resets the selection from the bound value, falling back to now.
func (p *Picker) seed() {
	if p.loc == nil {
		return
	}
	base := p.now()
	if t, err := ParseValue(p.value, p.loc); err == nil {
		base = t
	} else if p.value != "" {
		p.logger.Debug("ignoring unparseable value", "value", p.value, "error", err)
	}
	p.sel = SelectionFromTime(base)
	p.viewed = p.sel.Date
	p.refresh()
}

// refresh recomputes the availability table for the selected day.
func (p *Picker) refresh() {
	if p.loc == nil {
		return
	}
	timer := perf.NewTimer("picker.availability", p.logger, p.stats, 5*time.Millisecond)
	p.avail = ComputeAvailability(p.opts.Rules, p.sel.Date, p.now())
	timer.Stop()
}

// Stats returns the availability recompute recorder.
func (p *Picker) Stats() *perf.Recorder {
	return p.stats
}

// snapTime moves the selection to the nearest enabled slot of its day when
// the current slot is disabled. Days with nothing enabled are left alone.
func (p *Picker) snapTime() {
	if p.sel.IsZero() || !p.avail.MinuteDisabled(p.sel.Hour, p.sel.Minute, p.sel.Period) {
		return
	}
	h, m, per, ok := p.avail.Nearest(p.sel.Hour, p.sel.Minute, p.sel.Period)
	if !ok {
		return
	}
	p.sel.Hour, p.sel.Minute, p.sel.Period = h, m, per
}

// IsOpen reports whether the modal is showing.
func (p *Picker) IsOpen() bool { return p.open }

// Tab returns the active modal tab.
func (p *Picker) Tab() Tab { return p.tab }

// Selection returns the in-modal selection.
func (p *Picker) Selection() Selection { return p.sel }

// Viewed returns the day the calendar is positioned on.
func (p *Picker) Viewed() time.Time { return p.viewed }

// YearPickerOpen reports whether the year overlay is showing.
func (p *Picker) YearPickerOpen() bool { return p.yearOverlay }

// Years returns the year pager.
func (p *Picker) Years() YearPager { return p.years }

// Availability returns the time table of the selected day.
func (p *Picker) Availability() Availability { return p.avail }

// Hint returns the last refusal message, if any.
func (p *Picker) Hint() string { return p.hint }

// Open shows the modal on the date tab, seeded from the bound value or now.
// A disabled picker stays closed.
func (p *Picker) Open() bool {
	if p.opts.Disabled {
		return false
	}
	p.seed()
	p.snapTime()
	p.open = true
	p.tab = TabDate
	p.yearOverlay = false
	p.hint = ""
	p.years = NewYearPager(p.now().Year())
	p.logger.Debug("picker opened", "value", p.value)
	if p.opts.OnPress != nil {
		p.opts.OnPress()
	}
	return true
}

// Cancel closes the modal. In-modal changes are discarded on the next Open.
func (p *Picker) Cancel() {
	p.open = false
	p.yearOverlay = false
	p.hint = ""
}

// Confirm emits the selection as a ValueFormat string and closes the modal.
// It refuses while the selected day or time is disabled, leaving the modal
// open with a hint.
func (p *Picker) Confirm() (string, bool) {
	if p.sel.IsZero() {
		p.Cancel()
		return "", false
	}
	// now may have crossed a slot boundary since the last recompute
	p.refresh()
	if p.DateDisabled(p.sel.Date) {
		p.hint = HintDateUnavailable
		return "", false
	}
	if !p.opts.DateOnly && p.avail.MinuteDisabled(p.sel.Hour, p.sel.Minute, p.sel.Period) {
		p.hint = HintTimeUnavailable
		return "", false
	}

	value := p.sel.Value()
	p.Cancel()
	p.logger.Info("value confirmed", "value", value)
	if p.opts.OnChange != nil {
		p.opts.OnChange(value)
	}
	return value, true
}

// ShowTab switches tabs. The time tab does not exist in date-only mode.
// Returning to the date tab re-centres the calendar on the selection.
func (p *Picker) ShowTab(tab Tab) {
	if tab == TabTime && p.opts.DateOnly {
		return
	}
	p.tab = tab
	p.hint = ""
	if tab == TabDate && !p.sel.IsZero() {
		p.viewed = p.sel.Date
	}
}

// ToggleTab flips between the date and time tabs.
func (p *Picker) ToggleTab() {
	if p.tab == TabDate {
		p.ShowTab(TabTime)
		return
	}
	p.ShowTab(TabDate)
}

// DateDisabled evaluates the rules for day against the current time.
func (p *Picker) DateDisabled(day time.Time) bool {
	return p.opts.Rules.DateDisabled(day, p.now())
}

// SelectDate selects day unless it is disabled.
func (p *Picker) SelectDate(day time.Time) bool {
	day = startOfDay(day.In(p.loc))
	if p.DateDisabled(day) {
		return false
	}
	p.sel.Date = day
	p.viewed = day
	p.hint = ""
	p.refresh()
	p.snapTime()
	return true
}

// SelectHour selects hour unless every minute of it is disabled. A disabled
// minute is moved to the hour's first enabled one.
func (p *Picker) SelectHour(hour int) bool {
	if p.avail.HourDisabled(hour, p.sel.Period) {
		return false
	}
	p.sel.Hour = hour
	if p.avail.MinuteDisabled(hour, p.sel.Minute, p.sel.Period) {
		p.sel.Minute, _ = p.avail.FirstEnabledMinute(hour, p.sel.Period)
	}
	p.hint = ""
	return true
}

// SelectMinute selects minute unless it is disabled for the current hour.
func (p *Picker) SelectMinute(minute int) bool {
	if p.avail.MinuteDisabled(p.sel.Hour, minute, p.sel.Period) {
		return false
	}
	p.sel.Minute = minute
	p.hint = ""
	return true
}

// SelectPeriod selects period unless all of it is disabled. A disabled hour
// or minute is moved to the period's first enabled reading.
func (p *Picker) SelectPeriod(period Period) bool {
	if p.avail.PeriodDisabled(period) {
		return false
	}
	p.sel.Period = period
	p.refresh()
	if p.avail.HourDisabled(p.sel.Hour, period) {
		p.sel.Hour, p.sel.Minute, _ = p.avail.FirstEnabled(period)
	} else if p.avail.MinuteDisabled(p.sel.Hour, p.sel.Minute, period) {
		p.sel.Minute, _ = p.avail.FirstEnabledMinute(p.sel.Hour, period)
	}
	p.hint = ""
	return true
}

// StepHour moves the hour selection delta places through Hours, skipping
// disabled hours. It does not wrap.
func (p *Picker) StepHour(delta int) bool {
	idx := indexOf(Hours[:], p.sel.Hour)
	for i := idx + delta; i >= 0 && i < len(Hours); i += sign(delta) {
		if p.SelectHour(Hours[i]) {
			return true
		}
	}
	return false
}

// StepMinute moves the minute selection delta places, skipping disabled ones.
func (p *Picker) StepMinute(delta int) bool {
	idx := indexOf(Minutes[:], p.sel.Minute)
	for i := idx + delta; i >= 0 && i < len(Minutes); i += sign(delta) {
		if p.SelectMinute(Minutes[i]) {
			return true
		}
	}
	return false
}

// StepPeriod switches to the other period when delta points at it.
func (p *Picker) StepPeriod(delta int) bool {
	target := int(p.sel.Period) + delta
	if target < 0 || target >= len(Periods) {
		return false
	}
	return p.SelectPeriod(Periods[target])
}

// Today selects the current day and time, minute rounded down.
func (p *Picker) Today() {
	now := p.now()
	p.sel = SelectionFromTime(now)
	p.viewed = p.sel.Date
	p.hint = ""
	p.years.ShowYear(now.Year())
	p.refresh()
	p.snapTime()
}

// TodayActive reports whether the selection already is today (and, outside
// date-only mode, within five minutes of now).
func (p *Picker) TodayActive() bool {
	if p.sel.IsZero() {
		return false
	}
	now := p.now()
	if !sameDay(p.sel.Date, now) {
		return false
	}
	if p.opts.DateOnly {
		return true
	}
	diff := p.sel.Time().Sub(now)
	if diff < 0 {
		diff = -diff
	}
	return diff <= todayTolerance
}

// ToggleFutureDates flips the future-date rule and returns its new state.
func (p *Picker) ToggleFutureDates() bool {
	p.opts.Rules.DisableFuture = !p.opts.Rules.DisableFuture
	p.refresh()
	return p.opts.Rules.DisableFuture
}

// ChangeMonth moves the calendar by delta months, keeping the day of month
// where the target month allows it.
func (p *Picker) ChangeMonth(delta int) {
	first := time.Date(p.viewed.Year(), p.viewed.Month()+time.Month(delta), 1, 0, 0, 0, 0, p.loc)
	day := min(p.viewed.Day(), daysIn(first.Year(), first.Month()))
	p.viewed = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, p.loc)
}

// MoveCursor shifts the viewed day by days.
func (p *Picker) MoveCursor(days int) {
	p.viewed = p.viewed.AddDate(0, 0, days)
}

// JumpTo positions the calendar on day without selecting it.
func (p *Picker) JumpTo(day time.Time) {
	p.viewed = startOfDay(day.In(p.loc))
}

// ShowYearPicker opens the year overlay on the page holding the viewed year.
func (p *Picker) ShowYearPicker() {
	p.yearOverlay = true
	p.years.ShowYear(p.viewed.Year())
}

// HideYearPicker closes the year overlay without changing anything.
func (p *Picker) HideYearPicker() {
	p.yearOverlay = false
}

// PrevYearPage and NextYearPage page the overlay, clamped at both ends.
func (p *Picker) PrevYearPage() bool { return p.years.Prev() }
func (p *Picker) NextYearPage() bool { return p.years.Next() }

// SelectYear moves the calendar to the same month and day in year, clamping
// to the end of the month (29 February becomes 28 February), and closes the
// overlay.
func (p *Picker) SelectYear(year int) {
	month := p.viewed.Month()
	day := min(p.viewed.Day(), daysIn(year, month))
	p.viewed = time.Date(year, month, day, 0, 0, 0, 0, p.loc)
	p.yearOverlay = false
}

// Header renders the selection for the modal header.
func (p *Picker) Header() string {
	if p.sel.IsZero() {
		return NoSelectionText
	}
	return Format(p.sel.Time(), p.opts.EffectiveFormat())
}

// DisplayValue renders the bound value for the input field. The second
// result is true when the placeholder is shown instead.
func (p *Picker) DisplayValue() (string, bool) {
	t, err := ParseValue(p.value, p.loc)
	if err != nil {
		return p.opts.Placeholder, true
	}
	return Format(t, p.opts.EffectiveFormat()), false
}

func indexOf(items []int, v int) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
