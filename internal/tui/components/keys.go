package components

import "github.com/charmbracelet/bubbles/key"

// pickerKeyMap lists every binding of the date-time picker. Arrow keys and
// hjkl are shared between the calendar, time columns and year grid.
type pickerKeyMap struct {
	Open      key.Binding
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Years     key.Binding
	Jump      key.Binding
	Select    key.Binding
	Today     key.Binding
	Future    key.Binding
	Cancel    key.Binding
	Done      key.Binding
}

func defaultKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open picker"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "date/time"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "<"),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", ">"),
			key.WithHelp("]", "next month"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("pgup", "prev years"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgdown", "]"),
			key.WithHelp("pgdn", "next years"),
		),
		Years: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Future: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "future dates"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
	}
}

func (k pickerKeyMap) dateHelp(dateOnly bool) []key.Binding {
	bindings := []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.Years, k.Jump}
	if !dateOnly {
		bindings = append(bindings, k.Tab)
	}
	return append(bindings, k.Today, k.Future, k.Done, k.Cancel)
}

func (k pickerKeyMap) timeHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Tab, k.Today, k.Done, k.Cancel}
}

func (k pickerKeyMap) yearHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Done, k.Cancel}
}
