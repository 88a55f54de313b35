package tui

import (
	"fmt"

	"github.com/MikeBiancalana/dtpick/internal/logger"
	"github.com/MikeBiancalana/dtpick/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// Message Handlers
//
// These methods handle specific message types, keeping the main Update()
// function clean and focused. Each handler follows the pattern:
//
//   func (m *Model) handle<MessageType>(msg <MessageType>) (tea.Model, tea.Cmd)

// handleWindowSize handles terminal resize events
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	m.statusBar.SetWidth(msg.Width)

	if !m.terminalTooSmall {
		layout := CalculateLayout(msg.Width, msg.Height)
		m.picker.SetWidth(layout.InputWidth)
	}

	return m, nil
}

// handleDateTimeChanged binds the confirmed value and records it
func (m *Model) handleDateTimeChanged(msg components.DateTimeChangedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: value confirmed", "value", msg.Value)

	m.picker.SetValue(msg.Value)
	m.result = msg.Value
	m.statusBar.SetMessage("Selected "+msg.Display, false)

	record := m.recordConfirmation(msg.Value, msg.Display)
	if m.quitOnConfirm {
		return m, tea.Sequence(record, tea.Quit)
	}
	return m, record
}

// handlePickerOpened clears the status message when the modal opens
func (m *Model) handlePickerOpened(_ components.DateTimePickerOpenedMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: picker opened", "state", m.picker.String())
	m.statusBar.SetMessage("", false)
	return m, nil
}

// handleConfigChanged applies a reloaded config file. An invalid file keeps
// the current options.
func (m *Model) handleConfigChanged(msg configChangedMsg) (tea.Model, tea.Cmd) {
	next := m.waitForConfigChange()

	if msg.event.Err != nil {
		m.lastError = fmt.Errorf("config not reloaded: %w", msg.event.Err)
		return m, next
	}

	opts, err := msg.event.Config.Options()
	if err != nil {
		m.lastError = fmt.Errorf("config not reloaded: %w", err)
		return m, next
	}
	if m.override != nil {
		opts = m.override(opts)
	}

	m.picker.SetOptions(opts)
	m.lastError = nil
	m.statusBar.SetMessage("Config reloaded", false)
	logger.Info("tui: config applied", "path", msg.event.Path)

	return m, next
}

// handleHistoryRecorded handles a stored confirmation
func (m *Model) handleHistoryRecorded(msg historyRecordedMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: confirmation recorded", "id", msg.confirmation.ID)
	return m, nil
}

// handleError handles error messages
func (m *Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	logger.Error("tui: error", "error", msg.err)
	m.lastError = msg.err
	return m, nil
}
