package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
)

const (
	cardClass            = "rounded-lg border border-border bg-surface p-6 text-foreground"
	cardTitleClass       = "text-lg font-semibold text-foreground"
	cardDescriptionClass = "text-sm text-foreground-muted"
)

// Card groups related parts under an optional title and description.
type Card struct {
	BaseComponent
	title       string
	description string
	children    []Part
}

// NewCard creates a card around children.
func NewCard(children ...Part) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// ClassName returns the card's composed class string.
func (c *Card) ClassName() string {
	return style.Merge(cardClass, c.ClassOverride())
}

// Markup builds the card as a <section>.
func (c *Card) Markup() *markup.Element {
	var children []markup.Node
	if c.title != "" || c.description != "" {
		var header []markup.Node
		if c.title != "" {
			header = append(header, markup.El("h3", templ.Attributes{"class": cardTitleClass}, markup.Text(c.title)))
		}
		if c.description != "" {
			header = append(header, markup.El("p", templ.Attributes{"class": cardDescriptionClass}, markup.Text(c.description)))
		}
		children = append(children, markup.El("header", templ.Attributes{"class": "mb-4 flex flex-col gap-1"}, header...))
	}
	for _, child := range c.children {
		children = append(children, markup.Wrap(child))
	}
	return markup.El("section", templ.Attributes{"class": c.ClassName()}, children...)
}

// Render writes the card as HTML.
func (c *Card) Render(ctx context.Context, w io.Writer) error {
	return c.Markup().Render(ctx, w)
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card as a bordered terminal box.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	var lines []string
	if c.title != "" {
		lines = append(lines, TerminalStyle(ctx.Theme, cardTitleClass, State{}).Render(c.title))
	}
	if c.description != "" {
		lines = append(lines, TerminalStyle(ctx.Theme, cardDescriptionClass, State{}).Render(c.description))
	}
	if len(lines) > 0 && len(c.children) > 0 {
		lines = append(lines, "")
	}
	for _, child := range c.children {
		if view := viewOf(child, ctx); view != "" {
			lines = append(lines, view)
		}
	}

	box := c.ComputeStyle(ctx, c.ClassName(), State{})
	if ctx.Constraints.MaxWidth > 0 {
		box = box.Width(ctx.Constraints.MaxWidth - box.GetHorizontalBorderSize())
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithDescription sets the line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithClass sets the caller's class override.
func (c *Card) WithClass(class string) *Card {
	c.SetClass(class)
	return c
}

// Add appends parts to the card.
func (c *Card) Add(children ...Part) *Card {
	c.children = append(c.children, children...)
	return c
}
