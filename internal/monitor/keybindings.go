package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit     = "q"
	KeyQuitAlt  = "ctrl+c"
	KeyStart    = "s"
	KeyEnd      = "e"
	KeyClearLog = "c"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyStart:
		return true, m.startSession()

	case KeyEnd:
		m.endSession()
		return true, nil

	case KeyClearLog:
		m.events.Clear()
		m.refreshLogViewport()
		return true, nil
	}

	return false, nil
}
