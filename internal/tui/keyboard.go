package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress is the main keyboard input dispatcher. While the modal is
// open every key except ctrl+c belongs to the picker.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.picker.IsOpen() {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		}
	}

	m.lastError = nil
	m.statusBar.SetMessage("", false)

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}
