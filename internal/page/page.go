// Package page turns declarative page and component specs into components.
package page

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

// Builder builds components against one token sheet. Inputs, dialogs and
// command palettes without an id get "<kind>-<n>" ids, counted per builder;
// a builder is not safe for concurrent Build calls.
type Builder struct {
	sheet style.Sheet
	ids   *idSet
}

// NewBuilder returns a builder using sheet, or the default sheet when nil.
func NewBuilder(sheet style.Sheet) *Builder {
	if sheet == nil {
		sheet = variant.DefaultSheet()
	}
	return &Builder{sheet: sheet, ids: newIDSet()}
}

// Build creates the component described by spec.
func (b *Builder) Build(spec config.ComponentSpec) (components.Part, error) {
	switch spec.Kind {
	case config.KindButton:
		return b.button(spec), nil
	case config.KindInput:
		return b.input(spec), nil
	case config.KindDialog:
		return b.dialog(spec), nil
	case config.KindCommand:
		return b.command(spec), nil
	default:
		return nil, fmt.Errorf("unknown component kind %q", spec.Kind)
	}
}

// Document builds a full HTML document for p. The document theme is used
// unless the page names one. Generated ids are numbered from 1 for every
// document and skip the ids the page sets explicitly.
func (b *Builder) Document(p *config.Page, themes *components.ThemeSet) (components.Document, error) {
	doc := &Builder{sheet: b.sheet, ids: newIDSet()}
	doc.ids.reserve(p.Components)

	body := make([]templ.Component, 0, len(p.Components))
	for i, spec := range p.Components {
		part, err := doc.Build(spec)
		if err != nil {
			return components.Document{}, fmt.Errorf("components[%d]: %w", i, err)
		}
		body = append(body, part)
	}

	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := make([]markup.Node, 0, len(body))
		for _, c := range body {
			children = append(children, markup.Wrap(c))
		}
		return markup.El("main", templ.Attributes{"class": "mx-auto flex max-w-2xl flex-col gap-6 p-8"}, children...).Render(ctx, w)
	})

	return components.Document{
		Title:  p.Title,
		Theme:  p.Theme,
		Themes: themes,
		Body:   []templ.Component{content},
	}, nil
}

func (b *Builder) button(spec config.ComponentSpec) components.Part {
	btn := components.NewButton(spec.Label).
		WithVariant(variant.ButtonVariant(spec.Variant).Normalize()).
		WithSize(variant.Size(spec.Size).Normalize()).
		WithDisabled(spec.Disabled).
		WithClass(spec.Class)
	if spec.ID != "" {
		btn.WithAttr("id", b.ids.id("button", spec.ID))
	}
	btn.SetSheet(b.sheet)

	if spec.Href == "" {
		return btn
	}
	return &linkButton{Button: btn.WithAsChild(true), href: spec.Href}
}

func (b *Builder) input(spec config.ComponentSpec) components.Part {
	in := components.NewInput().
		WithID(b.ids.id("input", spec.ID)).
		WithName(spec.Name).
		WithType(spec.Type).
		WithLabel(spec.Label).
		WithPlaceholder(spec.Placeholder).
		WithValue(spec.Value).
		WithError(spec.Error).
		WithErrorMessage(spec.ErrorMessage).
		WithDisabled(spec.Disabled).
		WithClass(spec.Class)
	in.SetSheet(b.sheet)
	return in
}

func (b *Builder) dialog(spec config.ComponentSpec) components.Part {
	d := components.NewDialog().
		WithID(b.ids.id("dialog", spec.ID)).
		WithTitle(spec.Title).
		WithDescription(spec.Description).
		WithOpen(spec.Open).
		WithSize(variant.Size(spec.Size).Normalize()).
		WithShowCloseButton(spec.ShowCloseButton()).
		WithClass(spec.Class)
	d.SetSheet(b.sheet)

	if spec.Trigger != "" {
		trigger := components.NewButton(spec.Trigger)
		trigger.SetSheet(b.sheet)
		d.WithTrigger(trigger)
	}
	if spec.Body != "" {
		d.WithBody(components.NewText(spec.Body))
	}

	footer := make([]components.Part, 0, len(spec.Footer))
	for _, child := range spec.Footer {
		footer = append(footer, b.button(child))
	}
	return d.WithFooter(footer...)
}

func (b *Builder) command(spec config.ComponentSpec) components.Part {
	groups := make([]components.CommandGroup, 0, len(spec.Groups))
	for _, g := range spec.Groups {
		items := make([]components.CommandItem, 0, len(g.Items))
		for _, item := range g.Items {
			items = append(items, components.CommandItem{
				Value:    item.Value,
				Label:    item.Label,
				Keywords: item.Keywords,
				Shortcut: item.Shortcut,
				Disabled: item.Disabled,
			})
		}
		groups = append(groups, components.CommandGroup{Heading: g.Heading, Items: items})
	}

	c := components.NewCommand().
		WithID(b.ids.id("command", spec.ID)).
		WithGroups(groups...).
		WithClass(spec.Class)
	if spec.Placeholder != "" {
		c.WithPlaceholder(spec.Placeholder)
	}
	if spec.Empty != "" {
		c.WithEmpty(spec.Empty)
	}
	if spec.Label != "" {
		c.WithLabel(spec.Label)
	}
	c.SetSheet(b.sheet)
	return c
}

// linkButton renders a button's styling onto an anchor.
type linkButton struct {
	*components.Button
	href string
}

func (l *linkButton) Render(ctx context.Context, w io.Writer) error {
	el, err := l.Markup(markup.El("a", templ.Attributes{"href": l.href}, markup.Text(l.Label())))
	if err != nil {
		return err
	}
	return el.Render(ctx, w)
}
