package components

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	jumpInputBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)

	jumpInputTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	jumpInputPreviewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40")).
				Italic(true)

	jumpInputErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Italic(true)

	jumpInputHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// JumpMsg is sent when the jump input is submitted with a valid date
type JumpMsg struct {
	Date time.Time
}

// JumpInput is a text input for moving the calendar to a typed date
type JumpInput struct {
	textInput textinput.Model
	visible   bool
	title     string
	error     string
	preview   string
	width     int
	nowFunc   func() time.Time
}

// NewJumpInput creates a new jump-to-date input
func NewJumpInput(title string) *JumpInput {
	ti := textinput.New()
	ti.Placeholder = "t, tm, mon, +3d, -2w, oct 2027, YYYY-MM-DD"
	ti.CharLimit = 40
	ti.Width = 30

	return &JumpInput{
		textInput: ti,
		visible:   false,
		title:     title,
		width:     40,
		nowFunc:   time.Now,
	}
}

// SetNow replaces the clock used to resolve relative input
func (ji *JumpInput) SetNow(now func() time.Time) {
	ji.nowFunc = now
}

// Show displays the input and focuses it
func (ji *JumpInput) Show() tea.Cmd {
	ji.visible = true
	ji.error = ""
	ji.preview = ""
	ji.textInput.SetValue("")
	return ji.textInput.Focus()
}

// Hide hides the input
func (ji *JumpInput) Hide() {
	ji.visible = false
	ji.textInput.Blur()
	ji.error = ""
	ji.preview = ""
	ji.textInput.SetValue("")
}

// IsVisible returns whether the input is visible
func (ji *JumpInput) IsVisible() bool {
	return ji.visible
}

// SetWidth sets the width of the input box
func (ji *JumpInput) SetWidth(width int) {
	ji.width = width
}

// Update handles Bubble Tea messages
func (ji *JumpInput) Update(msg tea.Msg) (*JumpInput, tea.Cmd) {
	if !ji.visible {
		return ji, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			ji.Hide()
			return ji, nil
		case tea.KeyEnter:
			input := ji.textInput.Value()
			if input == "" {
				ji.error = "Please enter a date"
				return ji, nil
			}

			date, err := parseRelativeDateWithNow(input, ji.nowFunc())
			if err != nil {
				ji.error = "Invalid date: " + err.Error()
				return ji, nil
			}

			ji.Hide()
			return ji, func() tea.Msg { return JumpMsg{Date: date} }
		}
	}

	// Update text input and refresh preview
	var cmd tea.Cmd
	ji.textInput, cmd = ji.textInput.Update(msg)

	ji.updatePreview()

	return ji, cmd
}

// updatePreview updates the preview and error messages based on current input
func (ji *JumpInput) updatePreview() {
	input := ji.textInput.Value()

	if input == "" {
		ji.error = ""
		ji.preview = ""
		return
	}

	now := ji.nowFunc()
	date, err := parseRelativeDateWithNow(input, now)
	if err != nil {
		ji.error = err.Error()
		ji.preview = ""
		return
	}

	ji.error = ""
	ji.preview = FormatDate(date) + " (" + getDateDescriptionWithNow(date, now) + ")"
}

// View renders the input
func (ji *JumpInput) View() string {
	if !ji.visible {
		return ""
	}

	var content string

	content += jumpInputTitleStyle.Render(ji.title) + "\n"
	content += ji.textInput.View() + "\n"

	if ji.error != "" {
		content += jumpInputErrorStyle.Render("✗ "+ji.error) + "\n"
	} else if ji.preview != "" {
		content += jumpInputPreviewStyle.Render("→ "+ji.preview) + "\n"
	} else {
		content += "\n"
	}

	content += jumpInputHelpStyle.Render("ESC: cancel  ENTER: jump")

	return jumpInputBoxStyle.Width(ji.width).Render(content)
}

// ParsedDate returns the parsed date from the current input
// Returns a zero time for empty input
func (ji *JumpInput) ParsedDate() (time.Time, error) {
	input := ji.textInput.Value()
	if input == "" {
		return time.Time{}, nil
	}
	return parseRelativeDateWithNow(input, ji.nowFunc())
}
