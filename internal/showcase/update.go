package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case components.OpenChangeMsg:
		m.dialogOpen = msg.Open
		m.dialog.WithOpen(msg.Open)
		if !msg.Open {
			m.status = "Dialog closed"
		}
		return m, nil

	case components.CommandSelectMsg:
		m.closePalette()
		m.status = "Ran " + msg.Item.Label
		return m.runAction(msg.Item.Value)

	case components.CommandCloseMsg:
		m.closePalette()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.focus == focusInput {
		return m, m.input.Update(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.paletteOpen:
		return m, m.palette.Update(msg)
	case m.dialogOpen:
		return m.handleDialogKeys(msg)
	case key.Matches(msg, m.keys.Palette):
		return m.openPalette()
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		return m.cycleFocus()
	case m.focus == focusInput:
		cmd := m.input.Update(msg)
		m.validateEmail()
		return m, cmd
	default:
		return m.handleButtonKeys(msg)
	}
}

func (m Model) handleDialogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Activate) {
		m.status = "Published"
		return m, m.dialog.Close()
	}
	return m, m.dialog.Update(msg)
}

func (m Model) handleButtonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleTheme):
		return m.runAction(actionToggleTheme)
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncFocus()
	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.buttons)-1 {
			m.cursor++
		}
		m.syncFocus()
	case key.Matches(msg, m.keys.Activate):
		entry := m.buttons[m.cursor]
		if entry.button.IsDisabled() {
			return m, nil
		}
		return m.runAction(entry.action)
	}
	return m, nil
}

func (m Model) cycleFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusButtons {
		m.focus = focusInput
		cmd = m.input.Focus()
	} else {
		m.focus = focusButtons
		m.input.Blur()
	}
	m.syncFocus()
	return m, cmd
}

func (m Model) openPalette() (tea.Model, tea.Cmd) {
	m.paletteOpen = true
	m.palette.SetQuery("")
	return m, m.palette.Focus()
}

func (m *Model) closePalette() {
	m.paletteOpen = false
	m.palette.Blur()
}

// runAction performs a button or command action. The dialog is opened by
// asking it to request the change, which arrives back as an OpenChangeMsg.
func (m Model) runAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionOpenDialog:
		return m, m.dialog.RequestOpenChange(true)
	case actionToggleTheme:
		name := components.ToggleDocumentTheme(m.themes)
		m.log.Info("theme changed", "theme", name)
		m.status = "Theme: " + name
	case actionPalette:
		return m.openPalette()
	case actionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
