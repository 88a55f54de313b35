package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40"))
)

// StatusBar represents the status bar component
type StatusBar struct {
	width   int
	hints   string
	message string
	isError bool
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetHints sets the key hints shown on the left
func (sb *StatusBar) SetHints(hints string) {
	sb.hints = hints
}

// SetMessage sets a message shown after the hints. Empty clears it.
func (sb *StatusBar) SetMessage(message string, isError bool) {
	sb.message = message
	sb.isError = isError
}

// Message returns the current message
func (sb *StatusBar) Message() string {
	return sb.message
}

// View renders the status bar
func (sb *StatusBar) View() string {
	hints := []rune(sb.hints)
	message := []rune(sb.message)

	// Truncate if too long, message first
	if sb.width > 5 {
		avail := sb.width - 2
		if len(hints) > avail {
			hints = append(hints[:max(avail-3, 0)], []rune("...")...)
			message = nil
		}
		room := avail - len(hints) - 2
		if len(message) > room {
			if room > 3 {
				message = append(message[:room-3], []rune("...")...)
			} else {
				message = nil
			}
		}
	}

	text := string(hints)
	if len(message) > 0 {
		style := statusMessageStyle
		if sb.isError {
			style = statusErrorStyle
		}
		text += "  " + style.Render(string(message))
	}

	return statusBarStyle.Width(sb.width).Render(text)
}
