// Package showcase is an interactive terminal preview of the component kit.
package showcase

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

type focusArea int

const (
	focusButtons focusArea = iota
	focusInput
)

// Button actions, in display order.
const (
	actionOpenDialog  = "open-dialog"
	actionToggleTheme = "toggle-theme"
	actionPalette     = "open-palette"
	actionDisabled    = "disabled"
	actionQuit        = "quit"
)

type buttonEntry struct {
	action string
	button *components.Button
}

// Model is the bubbletea model for the showcase.
type Model struct {
	themes  *components.ThemeSet
	keys    KeyMap
	log     *logger.Logger
	buttons []buttonEntry
	input   *components.Input
	dialog  *components.Dialog
	palette *components.Command

	cursor      int
	focus       focusArea
	dialogOpen  bool
	paletteOpen bool
	status      string
	quitting    bool

	width  int
	height int
}

// NewModel creates a showcase over the given themes. The active theme is
// the document theme.
func NewModel(themes *components.ThemeSet, log *logger.Logger) Model {
	if themes == nil {
		themes = components.DefaultThemeSet()
	}
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		themes: themes,
		keys:   DefaultKeyMap(),
		log:    log,
		buttons: []buttonEntry{
			{actionOpenDialog, components.NewButton("Open dialog")},
			{actionToggleTheme, components.SecondaryButton("Toggle theme")},
			{actionPalette, components.OutlineButton("Commands")},
			{actionDisabled, components.GhostButton("Disabled").WithDisabled(true)},
		},
		input: components.NewInput().
			WithID("email").
			WithLabel("Email").
			WithType("email").
			WithPlaceholder("you@example.com"),
		width:  80,
		height: 24,
	}

	m.dialog = components.NewDialog().
		WithID("showcase-dialog").
		WithTitle("Publish changes?").
		WithDescription("Your components will be visible to everyone.").
		WithSize(variant.SizeSmall).
		WithBody(components.MutedText("Press enter to confirm or esc to cancel.")).
		WithFooter(components.OutlineButton("Cancel"), components.NewButton("Publish")).
		WithOnOpenChange(func(open bool) {
			log.Debug("dialog open change requested", "open", open)
		})

	m.palette = components.NewCommand().
		WithID("showcase-commands").
		WithGroups(
			components.CommandGroup{Heading: "Actions", Items: []components.CommandItem{
				{Value: actionOpenDialog, Label: "Open dialog", Keywords: []string{"modal"}},
				{Value: actionToggleTheme, Label: "Toggle theme", Keywords: []string{"dark", "light"}, Shortcut: "t"},
			}},
			components.CommandGroup{Heading: "Application", Items: []components.CommandItem{
				{Value: actionDisabled, Label: "Disabled command", Disabled: true},
				{Value: actionQuit, Label: "Quit", Keywords: []string{"exit"}, Shortcut: "q"},
			}},
		)

	m.syncFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the name of the active theme.
func (m Model) Theme() string {
	return components.DocumentTheme()
}

// DialogOpen reports whether the dialog is shown.
func (m Model) DialogOpen() bool {
	return m.dialogOpen
}

// PaletteOpen reports whether the command palette is shown.
func (m Model) PaletteOpen() bool {
	return m.paletteOpen
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

func (m *Model) syncFocus() {
	for i, entry := range m.buttons {
		entry.button.WithFocused(m.focus == focusButtons && i == m.cursor)
	}
}

func (m Model) validateEmail() {
	value := m.input.Value()
	invalid := value != "" && !strings.Contains(value, "@")
	m.input.WithError(invalid)
	if invalid {
		m.input.WithErrorMessage("Enter a valid email address.")
	} else {
		m.input.WithErrorMessage("")
	}
}
