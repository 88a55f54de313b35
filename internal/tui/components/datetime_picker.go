package components

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// visibleTimeRows is how many entries of a time column are drawn at once
const visibleTimeRows = 7

// yearColumns is the width of the year grid
const yearColumns = 4

var weekdayLabels = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DateTimeChangedMsg is sent when the user confirms a selection
type DateTimeChangedMsg struct {
	Value   string
	Display string
}

// DateTimePickerOpenedMsg is sent when the modal opens
type DateTimePickerOpenedMsg struct{}

type timeColumn int

const (
	columnHour timeColumn = iota
	columnMinute
	columnPeriod
)

// DateTimePicker renders a picker.Picker as an input field plus a modal with
// a calendar, time columns and a year overlay.
type DateTimePicker struct {
	picker  *picker.Picker
	styles  Styles
	keys    pickerKeyMap
	help    help.Model
	jump    *JumpInput
	nowFunc func() time.Time

	column     timeColumn
	yearCursor int
	notice     string
	width      int
}

// NewDateTimePicker creates a closed picker bound to no value
func NewDateTimePicker(opts picker.Options, logger *slog.Logger) *DateTimePicker {
	p := picker.New(opts, logger)
	h := help.New()

	c := &DateTimePicker{
		picker:  p,
		styles:  NewStyles(p.Options()),
		keys:    defaultKeyMap(),
		help:    h,
		jump:    NewJumpInput("Go to date"),
		nowFunc: time.Now,
		width:   40,
	}
	c.applyHelpStyles()
	return c
}

func (c *DateTimePicker) applyHelpStyles() {
	c.help.Styles.ShortKey = c.styles.Link
	c.help.Styles.ShortDesc = c.styles.Help
	c.help.Styles.ShortSeparator = c.styles.Help
}

// Picker exposes the underlying state machine
func (c *DateTimePicker) Picker() *picker.Picker {
	return c.picker
}

// SetNow replaces the clock for both the picker and the jump input
func (c *DateTimePicker) SetNow(now func() time.Time) {
	c.nowFunc = now
	c.picker.SetClock(now)
	c.jump.SetNow(now)
}

// SetOptions replaces the configuration and rebuilds the styles
func (c *DateTimePicker) SetOptions(opts picker.Options) {
	c.picker.SetOptions(opts)
	c.styles = NewStyles(c.picker.Options())
	c.applyHelpStyles()
	if c.picker.Options().DateOnly {
		c.column = columnHour
	}
}

// SetValue binds a value in the picker's value format
func (c *DateTimePicker) SetValue(value string) {
	c.picker.SetValue(value)
}

// Value returns the bound value
func (c *DateTimePicker) Value() string {
	return c.picker.Value()
}

// IsOpen reports whether the modal is showing
func (c *DateTimePicker) IsOpen() bool {
	return c.picker.IsOpen()
}

// SetWidth sets the width of the input field
func (c *DateTimePicker) SetWidth(width int) {
	c.width = width
	c.jump.SetWidth(width)
	c.help.Width = width
}

// Open shows the modal
func (c *DateTimePicker) Open() tea.Cmd {
	if !c.picker.Open() {
		return nil
	}
	c.column = columnHour
	c.notice = ""
	c.jump.Hide()
	return func() tea.Msg { return DateTimePickerOpenedMsg{} }
}

// Update handles Bubble Tea messages
func (c *DateTimePicker) Update(msg tea.Msg) (*DateTimePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case JumpMsg:
		if c.picker.IsOpen() {
			c.picker.JumpTo(msg.Date)
			c.picker.SelectDate(msg.Date)
		}
		return c, nil

	case tea.KeyMsg:
		if !c.picker.IsOpen() {
			if key.Matches(msg, c.keys.Open) {
				return c, c.Open()
			}
			return c, nil
		}
		if c.jump.IsVisible() {
			var cmd tea.Cmd
			c.jump, cmd = c.jump.Update(msg)
			return c, cmd
		}
		c.notice = ""
		if c.picker.YearPickerOpen() {
			return c, c.handleYearKeys(msg)
		}
		return c, c.handleModalKeys(msg)
	}

	if c.jump.IsVisible() {
		var cmd tea.Cmd
		c.jump, cmd = c.jump.Update(msg)
		return c, cmd
	}
	return c, nil
}

// handleModalKeys handles keys shared by both tabs, then dispatches per tab
func (c *DateTimePicker) handleModalKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		c.picker.Cancel()
		return nil
	case key.Matches(msg, c.keys.Tab):
		c.picker.ToggleTab()
		return nil
	case key.Matches(msg, c.keys.Today):
		if !c.picker.TodayActive() {
			c.picker.Today()
		}
		return nil
	case key.Matches(msg, c.keys.Future):
		c.picker.ToggleFutureDates()
		return nil
	}

	if c.picker.Tab() == picker.TabTime {
		return c.handleTimeKeys(msg)
	}
	return c.handleDateKeys(msg)
}

func (c *DateTimePicker) handleDateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Done):
		if !c.selectCursor() {
			return nil
		}
		return c.confirm()
	case key.Matches(msg, c.keys.Select):
		c.selectCursor()
	case key.Matches(msg, c.keys.Left):
		c.picker.MoveCursor(-1)
	case key.Matches(msg, c.keys.Right):
		c.picker.MoveCursor(1)
	case key.Matches(msg, c.keys.Up):
		c.picker.MoveCursor(-7)
	case key.Matches(msg, c.keys.Down):
		c.picker.MoveCursor(7)
	case key.Matches(msg, c.keys.PrevMonth):
		c.picker.ChangeMonth(-1)
	case key.Matches(msg, c.keys.NextMonth):
		c.picker.ChangeMonth(1)
	case key.Matches(msg, c.keys.Years):
		c.picker.ShowYearPicker()
		c.yearCursor = c.clampYearCursor(c.picker.Viewed().Year())
	case key.Matches(msg, c.keys.Jump):
		return c.jump.Show()
	}
	return nil
}

// selectCursor selects the day under the calendar cursor
func (c *DateTimePicker) selectCursor() bool {
	if c.picker.SelectDate(c.picker.Viewed()) {
		return true
	}
	c.notice = picker.HintDateUnavailable
	return false
}

func (c *DateTimePicker) handleTimeKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Done):
		return c.confirm()
	case key.Matches(msg, c.keys.Left):
		if c.column > columnHour {
			c.column--
		}
	case key.Matches(msg, c.keys.Right):
		if c.column < columnPeriod {
			c.column++
		}
	case key.Matches(msg, c.keys.Up):
		c.stepColumn(-1)
	case key.Matches(msg, c.keys.Down):
		c.stepColumn(1)
	}
	return nil
}

func (c *DateTimePicker) stepColumn(delta int) {
	switch c.column {
	case columnHour:
		c.picker.StepHour(delta)
	case columnMinute:
		c.picker.StepMinute(delta)
	case columnPeriod:
		c.picker.StepPeriod(delta)
	}
}

func (c *DateTimePicker) handleYearKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		c.picker.HideYearPicker()
	case key.Matches(msg, c.keys.Done), key.Matches(msg, c.keys.Select):
		c.picker.SelectYear(c.yearCursor)
	case key.Matches(msg, c.keys.Left):
		c.moveYearCursor(-1)
	case key.Matches(msg, c.keys.Right):
		c.moveYearCursor(1)
	case key.Matches(msg, c.keys.Up):
		c.moveYearCursor(-yearColumns)
	case key.Matches(msg, c.keys.Down):
		c.moveYearCursor(yearColumns)
	case key.Matches(msg, c.keys.PrevPage):
		if c.picker.PrevYearPage() {
			c.yearCursor = c.clampYearCursor(c.yearCursor - picker.YearPageSize)
		}
	case key.Matches(msg, c.keys.NextPage):
		if c.picker.NextYearPage() {
			c.yearCursor = c.clampYearCursor(c.yearCursor + picker.YearPageSize)
		}
	}
	return nil
}

// moveYearCursor moves within the full year list, turning the page when the
// cursor leaves it.
func (c *DateTimePicker) moveYearCursor(delta int) {
	target := c.yearCursor + delta
	years := c.picker.Years()
	if !years.Contains(target) {
		return
	}
	page := years.Years()
	if target < page[0] {
		c.picker.PrevYearPage()
	} else if target > page[len(page)-1] {
		c.picker.NextYearPage()
	}
	c.yearCursor = target
}

// clampYearCursor keeps the cursor on the visible page
func (c *DateTimePicker) clampYearCursor(year int) int {
	page := c.picker.Years().Years()
	return max(page[0], min(year, page[len(page)-1]))
}

func (c *DateTimePicker) confirm() tea.Cmd {
	value, ok := c.picker.Confirm()
	if !ok {
		return nil
	}
	display := picker.Format(c.picker.Selection().Time(), c.picker.Options().EffectiveFormat())
	return func() tea.Msg {
		return DateTimeChangedMsg{Value: value, Display: display}
	}
}

// View renders the input field and, when open, the modal beneath it
func (c *DateTimePicker) View() string {
	if !c.picker.IsOpen() {
		return c.ViewInput()
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.ViewInput(), c.ViewModal())
}

// ViewInput renders the closed input field
func (c *DateTimePicker) ViewInput() string {
	opts := c.picker.Options()
	text, placeholder := c.picker.DisplayValue()

	var content string
	if placeholder {
		content = c.styles.Placeholder.Render(text)
	} else {
		content = c.styles.InputText.Render(text)
	}

	box := c.styles.Input
	switch {
	case opts.Disabled:
		box = c.styles.InputDisabled
	case opts.Error:
		box = c.styles.InputError
	}
	field := box.Width(c.width).Render(content)

	if opts.Error && opts.ErrorMessage != "" {
		field = lipgloss.JoinVertical(lipgloss.Left, field, c.styles.ErrorMessage.Render(opts.ErrorMessage))
	}
	return field
}

// ViewModal renders the open modal, or nothing when closed
func (c *DateTimePicker) ViewModal() string {
	if !c.picker.IsOpen() {
		return ""
	}

	sections := []string{c.styles.Header.Render(c.picker.Header())}

	if !c.picker.Options().DateOnly {
		sections = append(sections, c.viewTabs())
	}

	switch {
	case c.picker.YearPickerOpen():
		sections = append(sections, c.viewYears())
	case c.picker.Tab() == picker.TabTime:
		sections = append(sections, c.viewTime())
	default:
		sections = append(sections, c.viewCalendar())
	}

	if c.jump.IsVisible() {
		sections = append(sections, c.jump.View())
	}

	sections = append(sections, "", c.viewFooter())

	if hint := c.hint(); hint != "" {
		sections = append(sections, c.styles.Hint.Render(hint))
	}
	sections = append(sections, c.help.ShortHelpView(c.helpBindings()))

	return c.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (c *DateTimePicker) hint() string {
	if c.notice != "" {
		return c.notice
	}
	return c.picker.Hint()
}

func (c *DateTimePicker) helpBindings() []key.Binding {
	switch {
	case c.picker.YearPickerOpen():
		return c.keys.yearHelp()
	case c.picker.Tab() == picker.TabTime:
		return c.keys.timeHelp()
	default:
		return c.keys.dateHelp(c.picker.Options().DateOnly)
	}
}

func (c *DateTimePicker) viewTabs() string {
	date, tm := c.styles.Tab, c.styles.Tab
	if c.picker.Tab() == picker.TabTime {
		tm = c.styles.ActiveTab
	} else {
		date = c.styles.ActiveTab
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, date.Render("Date"), tm.Render("Time"))
}

// viewCalendar renders the viewed month as a Sunday-first grid
func (c *DateTimePicker) viewCalendar() string {
	viewed := c.picker.Viewed()
	loc := c.picker.Location()
	now := c.nowFunc().In(loc)
	sel := c.picker.Selection()

	first := time.Date(viewed.Year(), viewed.Month(), 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())

	title := c.styles.MonthTitle.Render("‹ " + picker.Format(viewed, picker.HeaderMonthFormat) + " ›")

	header := make([]string, len(weekdayLabels))
	for i, label := range weekdayLabels {
		header[i] = c.styles.Weekday.Render(label)
	}

	rows := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	cells := make([]string, 0, 7)
	for i := 0; i < lead; i++ {
		cells = append(cells, c.styles.DayOutside.Render(""))
	}
	for d := 1; d <= days; d++ {
		day := time.Date(viewed.Year(), viewed.Month(), d, 0, 0, 0, 0, loc)
		cells = append(cells, c.dayStyle(day, viewed, now, sel).Render(fmt.Sprintf("%d", d)))
		if len(cells) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		for len(cells) < 7 {
			cells = append(cells, c.styles.DayOutside.Render(""))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (c *DateTimePicker) dayStyle(day, viewed, now time.Time, sel picker.Selection) lipgloss.Style {
	style := c.styles.Day
	switch {
	case !sel.IsZero() && sameDate(day, sel.Date):
		style = c.styles.DaySelected
	case c.picker.DateDisabled(day):
		style = c.styles.DayDisabled
	case sameDate(day, now):
		style = c.styles.DayToday
	}
	if sameDate(day, viewed) {
		if sameDate(day, sel.Date) {
			return style.Underline(true)
		}
		return style.Reverse(true)
	}
	return style
}

// viewTime renders the hour, minute and period columns
func (c *DateTimePicker) viewTime() string {
	sel := c.picker.Selection()
	avail := c.picker.Availability()

	hours := make([]string, len(picker.Hours))
	for i, h := range picker.Hours {
		hours[i] = fmt.Sprintf("%d", h)
	}
	minutes := make([]string, len(picker.Minutes))
	for i, m := range picker.Minutes {
		minutes[i] = fmt.Sprintf("%02d", m)
	}
	periods := make([]string, len(picker.Periods))
	for i, p := range picker.Periods {
		periods[i] = p.String()
	}

	hourCol := c.viewTimeColumn(hours, indexOfInt(picker.Hours[:], sel.Hour), c.column == columnHour,
		func(i int) bool { return avail.HourDisabled(picker.Hours[i], sel.Period) })
	minuteCol := c.viewTimeColumn(minutes, indexOfInt(picker.Minutes[:], sel.Minute), c.column == columnMinute,
		func(i int) bool { return avail.MinuteDisabled(sel.Hour, picker.Minutes[i], sel.Period) })
	periodCol := c.viewTimeColumn(periods, int(sel.Period), c.column == columnPeriod,
		func(i int) bool { return avail.PeriodDisabled(picker.Periods[i]) })

	return lipgloss.JoinHorizontal(lipgloss.Top, hourCol, minuteCol, periodCol)
}

func (c *DateTimePicker) viewTimeColumn(labels []string, selected int, focused bool, disabled func(int) bool) string {
	offset := scrollOffset(selected, len(labels), visibleTimeRows)
	end := min(len(labels), offset+visibleTimeRows)

	rows := make([]string, 0, visibleTimeRows+2)
	if offset > 0 {
		rows = append(rows, c.styles.TimeItemDisabled.Render("▲"))
	} else {
		rows = append(rows, c.styles.TimeItem.Render(""))
	}
	for i := offset; i < end; i++ {
		style := c.styles.TimeItem
		switch {
		case i == selected:
			style = c.styles.TimeItemSelected
		case disabled(i):
			style = c.styles.TimeItemDisabled
		}
		rows = append(rows, style.Render(labels[i]))
	}
	if end < len(labels) {
		rows = append(rows, c.styles.TimeItemDisabled.Render("▼"))
	}

	column := c.styles.TimeColumn
	if focused {
		column = c.styles.TimeColumnFocused
	}
	return column.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// scrollOffset returns the first visible index so that selected sits in the
// middle of a window of size visible, clamped to the list.
func scrollOffset(selected, total, visible int) int {
	if total <= visible {
		return 0
	}
	offset := selected - visible/2
	return max(0, min(offset, total-visible))
}

// viewYears renders the year overlay
func (c *DateTimePicker) viewYears() string {
	years := c.picker.Years()
	viewedYear := c.picker.Viewed().Year()

	prev := c.styles.YearNavOff.Render("‹")
	if years.CanPrev() {
		prev = c.styles.YearNav.Render("‹")
	}
	next := c.styles.YearNavOff.Render("›")
	if years.CanNext() {
		next = c.styles.YearNav.Render("›")
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top,
		prev, "  ", c.styles.MonthTitle.Render(years.RangeLabel()), "  ", next,
		"    ", c.styles.Cancel.Render("✕"))

	rows := []string{nav}
	cells := make([]string, 0, yearColumns)
	for _, y := range years.Years() {
		style := c.styles.Year
		if y == viewedYear {
			style = c.styles.YearSelected
		}
		if y == c.yearCursor {
			style = style.Reverse(true)
		}
		cells = append(cells, style.Render(fmt.Sprintf("%d", y)))
		if len(cells) == yearColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (c *DateTimePicker) viewFooter() string {
	today := c.styles.Link.Render("Today")
	if c.picker.TodayActive() {
		today = c.styles.LinkDisabled.Render("Today")
	}

	future := "Disable Future Dates"
	if c.picker.Rules().DisableFuture {
		future = "Enable Future Dates"
	}

	links := lipgloss.JoinHorizontal(lipgloss.Top, today, "   ", c.styles.Link.Render(future))
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, c.styles.Cancel.Render("Cancel"), "   ", c.styles.Done.Render("Done"))
	return lipgloss.JoinVertical(lipgloss.Left, links, buttons)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func indexOfInt(items []int, v int) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

// String renders the picker state for logs
func (c *DateTimePicker) String() string {
	return fmt.Sprintf("open=%t tab=%s value=%q", c.picker.IsOpen(), c.picker.Tab(), c.picker.Value())
}
