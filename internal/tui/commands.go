package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// recordConfirmation stores a confirmed value in the history database
func (m *Model) recordConfirmation(value, display string) tea.Cmd {
	if m.history == nil {
		return nil
	}

	repo := m.history
	capturedSession := m.sessionID
	capturedTimezone := m.picker.Picker().Location().String()

	return func() tea.Msg {
		c, err := repo.Record(capturedSession, value, display, capturedTimezone)
		if err != nil {
			return errMsg{err}
		}
		return historyRecordedMsg{confirmation: c}
	}
}

// waitForConfigChange waits for reload events from the watcher.
// This is a non-blocking async command - it returns immediately and the
// closure waits for the watcher channel to signal changes.
func (m *Model) waitForConfigChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	changes := m.watcher.Changes()
	return func() tea.Msg {
		event, ok := <-changes
		if !ok {
			return nil
		}
		return configChangedMsg{event: event}
	}
}
