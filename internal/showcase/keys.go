package showcase

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the showcase's global key bindings. The dialog and the
// command palette carry their own.
type KeyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Left        key.Binding
	Right       key.Binding
	Activate    key.Binding
	ToggleTheme key.Binding
	Palette     key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Activate:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		ToggleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Palette:     key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "commands")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Right, k.Activate, k.ToggleTheme, k.Palette, k.Quit}
}
