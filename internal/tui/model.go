package tui

import (
	"fmt"

	"github.com/MikeBiancalana/dtpick/internal/history"
	"github.com/MikeBiancalana/dtpick/internal/logger"
	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/MikeBiancalana/dtpick/internal/sync"
	"github.com/MikeBiancalana/dtpick/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 24
)

// OptionsOverride re-applies command line settings on top of options loaded
// from the config file.
type OptionsOverride func(picker.Options) picker.Options

// Model hosts a single date-time picker.
//
// Commands that outlive the current Update call capture the values they need
// (session id, timezone) before returning the closure, since the model may
// have changed by the time the command runs.
type Model struct {
	picker    *components.DateTimePicker
	statusBar *components.StatusBar
	history   *history.Repository
	sessionID string
	watcher   *sync.Watcher
	override  OptionsOverride

	autoOpen      bool
	quitOnConfirm bool

	width            int
	height           int
	terminalTooSmall bool

	result    string
	lastError error
}

// NewModel creates a new TUI model around dtp
func NewModel(dtp *components.DateTimePicker) *Model {
	sb := components.NewStatusBar()
	sb.SetHints(closedHints)

	return &Model{
		picker:    dtp,
		statusBar: sb,
	}
}

// SetHistory records every confirmation under sessionID
func (m *Model) SetHistory(repo *history.Repository, sessionID string) {
	m.history = repo
	m.sessionID = sessionID
}

// SetWatcher reloads the picker options whenever the config file changes.
// override may be nil.
func (m *Model) SetWatcher(w *sync.Watcher, override OptionsOverride) {
	m.watcher = w
	m.override = override
}

// SetAutoOpen opens the modal as soon as the program starts
func (m *Model) SetAutoOpen(open bool) {
	m.autoOpen = open
}

// SetQuitOnConfirm exits the program after the first confirmation
func (m *Model) SetQuitOnConfirm(quit bool) {
	m.quitOnConfirm = quit
}

// Result returns the last confirmed value, or "" if none
func (m *Model) Result() string {
	return m.result
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			logger.Warn("tui: config watcher not started", "error", err)
			m.watcher = nil
		} else {
			cmds = append(cmds, m.waitForConfigChange())
		}
	}

	if m.autoOpen {
		cmds = append(cmds, m.picker.Open())
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
// This function is a simple dispatcher that routes messages to
// dedicated handler methods organized in handlers.go and keyboard.go
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case components.DateTimeChangedMsg:
		return m.handleDateTimeChanged(msg)

	case components.DateTimePickerOpenedMsg:
		return m.handlePickerOpened(msg)

	case configChangedMsg:
		return m.handleConfigChanged(msg)

	case historyRecordedMsg:
		return m.handleHistoryRecorded(msg)

	case errMsg:
		return m.handleError(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		// Cursor blink and jump results belong to the picker
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}

	m.statusBar.SetHints(m.hints())
	if m.lastError != nil {
		m.statusBar.SetMessage(m.lastError.Error(), true)
	}

	layout := CalculateLayout(m.width, m.height)
	content := lipgloss.Place(layout.ContentWidth, layout.ContentHeight,
		lipgloss.Center, lipgloss.Center, m.picker.View())

	return content + "\n" + m.statusBar.View()
}

const (
	closedHints = "enter:open q:quit"
	openHints   = "esc:cancel ctrl+c:quit"
)

func (m *Model) hints() string {
	if m.picker.IsOpen() {
		return openHints
	}
	return closedHints
}

// terminalTooSmallView renders the message when terminal is too small
func (m *Model) terminalTooSmallView() string {
	title := "Terminal Too Small"
	currentSize := fmt.Sprintf("Current: %dx%d", m.width, m.height)
	requiredSize := fmt.Sprintf("Required: %dx%d or larger", MinTerminalWidth, MinTerminalHeight)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Align(lipgloss.Center, lipgloss.Center)

	content := fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\nResize your terminal to continue.",
		title,
		currentSize,
		requiredSize,
	)

	return style.Render(content)
}

// Message type definitions
type configChangedMsg struct {
	event sync.ConfigChangeEvent
}

type historyRecordedMsg struct {
	confirmation *history.Confirmation
}

type errMsg struct {
	err error
}
