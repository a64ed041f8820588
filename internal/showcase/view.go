package showcase

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// View renders the showcase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return m.render(components.ContextForDocument(m.themes))
}

// Snapshot renders the showcase once per theme, each time with the main
// view, the open dialog and the open command palette. It is the output used
// when there is no terminal to interact with.
func Snapshot(themes *components.ThemeSet, width int) string {
	if themes == nil {
		themes = components.DefaultThemeSet()
	}

	var frames []string
	for _, theme := range themes.Themes() {
		ctx := components.DefaultContext().WithTheme(theme)

		m := NewModel(themes, nil)
		m.width = width
		frames = append(frames, m.render(ctx))

		m.dialogOpen = true
		m.dialog.WithOpen(true)
		frames = append(frames, m.render(ctx))

		m.dialogOpen = false
		m.paletteOpen = true
		frames = append(frames, m.render(ctx))
	}
	return strings.Join(frames, "\n\n")
}

func (m Model) render(ctx components.RenderContext) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	ctx = ctx.WithConstraints(components.WithMaxWidth(inner))

	var body string
	switch {
	case m.paletteOpen:
		body = lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.palette.ViewWithContext(ctx.WithConstraints(components.WithMaxWidth(min(56, inner)))))
	case m.dialogOpen:
		body = m.dialog.ViewWithContext(ctx.WithParentWidth(inner))
	default:
		body = m.mainView(ctx)
	}

	sections := []string{
		m.header(ctx),
		body,
		m.footer(ctx),
	}

	page := components.TerminalStyle(ctx.Theme, "bg-background text-foreground px-4 py-4", components.State{})
	return page.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) header(ctx components.RenderContext) string {
	title := components.TitleText("uikit").ViewWithContext(ctx)
	theme := components.MutedText("theme: " + ctx.Theme.Name).ViewWithContext(ctx)
	return lipgloss.JoinVertical(lipgloss.Left, title, theme, "")
}

func (m Model) mainView(ctx components.RenderContext) string {
	buttons := make([]ui.Renderable, 0, len(m.buttons))
	for _, entry := range m.buttons {
		buttons = append(buttons, entry.button)
	}

	return components.VStack(
		components.NewCard(components.MutedText("Variants share one underline when active.")).
			WithTitle("Buttons"),
		components.HStack(buttons...).WithGap(2),
		components.NewText(""),
		components.NewCard(m.input).WithTitle("Input"),
	).ViewWithContext(ctx)
}

func (m Model) footer(ctx components.RenderContext) string {
	bindings := m.keys.ShortHelp()
	switch {
	case m.paletteOpen:
		keys := m.palette.KeyMap()
		bindings = []key.Binding{keys.Up, keys.Down, keys.Select, keys.Close}
	case m.dialogOpen:
		bindings = []key.Binding{m.keys.Activate, m.dialog.KeyMap().Close}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}

	lines := []string{""}
	if m.status != "" {
		lines = append(lines, components.NewText(m.status).WithClass("text-foreground-secondary").ViewWithContext(ctx))
	}
	lines = append(lines, components.MutedText(strings.Join(parts, " • ")).ViewWithContext(ctx))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
