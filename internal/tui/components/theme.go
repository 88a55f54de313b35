package components

import (
	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/charmbracelet/lipgloss"
)

const errorColor = lipgloss.Color("#FF3B30")

// Palette is the set of colours the picker renders with.
type Palette struct {
	Accent         lipgloss.Color
	Background     lipgloss.Color
	TextPrimary    lipgloss.Color
	TextSecondary  lipgloss.Color
	TextDisabled   lipgloss.Color
	Placeholder    lipgloss.Color
	Border         lipgloss.Color
	TabBackground  lipgloss.Color
	SelectedText   lipgloss.Color
	SelectedItemBg lipgloss.Color
}

// NewPalette derives light or dark colours from the picker options
func NewPalette(opts picker.Options) Palette {
	accent := lipgloss.Color(opts.ThemeColor)
	if opts.DarkMode {
		return Palette{
			Accent:         accent,
			Background:     lipgloss.Color(opts.DarkModeColor),
			TextPrimary:    lipgloss.Color("#FFFFFF"),
			TextSecondary:  lipgloss.Color("#8E8E93"),
			TextDisabled:   lipgloss.Color("#48484A"),
			Placeholder:    lipgloss.Color("#8E8E93"),
			Border:         lipgloss.Color("#38383A"),
			TabBackground:  lipgloss.Color("#2C2C2E"),
			SelectedText:   lipgloss.Color("#FFFFFF"),
			SelectedItemBg: lipgloss.Color("#2C2C2E"),
		}
	}
	return Palette{
		Accent:         accent,
		Background:     lipgloss.Color("#FFFFFF"),
		TextPrimary:    lipgloss.Color("#333333"),
		TextSecondary:  lipgloss.Color("#666666"),
		TextDisabled:   lipgloss.Color("#D9E1E8"),
		Placeholder:    lipgloss.Color("#999999"),
		Border:         lipgloss.Color("#E0E0E0"),
		TabBackground:  lipgloss.Color("#F5F5F5"),
		SelectedText:   lipgloss.Color("#FFFFFF"),
		SelectedItemBg: lipgloss.Color("#F5F5F5"),
	}
}

// Styles holds every lipgloss style used by DateTimePicker. It is rebuilt
// whenever the options change.
type Styles struct {
	Input         lipgloss.Style
	InputError    lipgloss.Style
	InputDisabled lipgloss.Style
	InputText     lipgloss.Style
	Placeholder   lipgloss.Style
	ErrorMessage  lipgloss.Style

	Modal  lipgloss.Style
	Header lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	MonthTitle  lipgloss.Style
	Weekday     lipgloss.Style
	Day         lipgloss.Style
	DayOutside  lipgloss.Style
	DayDisabled lipgloss.Style
	DayToday    lipgloss.Style
	DaySelected lipgloss.Style
	DayCursor   lipgloss.Style

	TimeColumn        lipgloss.Style
	TimeColumnFocused lipgloss.Style
	TimeItem          lipgloss.Style
	TimeItemSelected  lipgloss.Style
	TimeItemDisabled  lipgloss.Style

	Year         lipgloss.Style
	YearSelected lipgloss.Style
	YearCursor   lipgloss.Style
	YearNav      lipgloss.Style
	YearNavOff   lipgloss.Style

	Link         lipgloss.Style
	LinkDisabled lipgloss.Style
	Cancel       lipgloss.Style
	Done         lipgloss.Style
	Hint         lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles builds the styles for opts
func NewStyles(opts picker.Options) Styles {
	p := NewPalette(opts)

	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)

	day := lipgloss.NewStyle().Width(4).Align(lipgloss.Center).Foreground(p.TextPrimary)
	timeItem := lipgloss.NewStyle().Width(6).Align(lipgloss.Center).Foreground(p.TextPrimary)
	year := lipgloss.NewStyle().Width(8).Align(lipgloss.Center).Foreground(p.TextPrimary)
	column := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Styles{
		Input:         input,
		InputError:    input.BorderForeground(errorColor),
		InputDisabled: input.Foreground(p.TextDisabled).Faint(true),
		InputText:     lipgloss.NewStyle().Foreground(p.TextPrimary),
		Placeholder:   lipgloss.NewStyle().Foreground(p.Placeholder),
		ErrorMessage:  lipgloss.NewStyle().Foreground(errorColor).Italic(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.Background).
			Padding(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Foreground(p.TextPrimary).MarginBottom(1),

		Tab: lipgloss.NewStyle().Width(14).Align(lipgloss.Center).
			Foreground(p.TextSecondary).Background(p.TabBackground),
		ActiveTab: lipgloss.NewStyle().Width(14).Align(lipgloss.Center).
			Foreground(p.Accent).Background(p.TabBackground).Bold(true).Underline(true),

		MonthTitle:  lipgloss.NewStyle().Bold(true).Foreground(p.TextPrimary),
		Weekday:     day.Foreground(p.TextSecondary),
		Day:         day,
		DayOutside:  day.Foreground(p.TextDisabled),
		DayDisabled: day.Foreground(p.TextDisabled).Strikethrough(true),
		DayToday:    day.Foreground(p.Accent).Bold(true),
		DaySelected: day.Foreground(p.SelectedText).Background(p.Accent).Bold(true),
		DayCursor:   day.Reverse(true),

		TimeColumn:        column,
		TimeColumnFocused: column.BorderForeground(p.Accent),
		TimeItem:          timeItem,
		TimeItemSelected:  timeItem.Foreground(p.Accent).Background(p.SelectedItemBg).Bold(true),
		TimeItemDisabled:  timeItem.Foreground(p.TextSecondary).Faint(true),

		Year:         year,
		YearSelected: year.Foreground(p.Accent).Background(p.SelectedItemBg).Bold(true),
		YearCursor:   year.Reverse(true),
		YearNav:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		YearNavOff:   lipgloss.NewStyle().Foreground(p.TextSecondary),

		Link:         lipgloss.NewStyle().Foreground(p.Accent),
		LinkDisabled: lipgloss.NewStyle().Foreground(p.TextSecondary).Faint(true),
		Cancel:       lipgloss.NewStyle().Foreground(p.TextSecondary),
		Done:         lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Hint:         lipgloss.NewStyle().Foreground(errorColor).Italic(true),
		Help:         lipgloss.NewStyle().Foreground(p.TextSecondary),
	}
}
