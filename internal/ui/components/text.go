package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
)

// Text is a run of styled text. It renders as an HTML element (a <p> by
// default) and as a styled terminal string.
type Text struct {
	BaseComponent
	content string
	tag     string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		tag:           "p",
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx, t.ClassOverride(), State{}).Render(t.content)
}

// Render writes the text as HTML.
func (t *Text) Render(ctx context.Context, w io.Writer) error {
	return markup.El(t.tag, templ.Attributes{"class": t.ClassOverride()}, markup.Text(t.content)).Render(ctx, w)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithClass sets the utility classes for the text.
func (t *Text) WithClass(class string) *Text {
	t.SetClass(class)
	return t
}

// WithTag sets the HTML tag.
func (t *Text) WithTag(tag string) *Text {
	if tag != "" {
		t.tag = tag
	}
	return t
}

// WithAppliers applies terminal style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// MutedText creates secondary, muted text.
func MutedText(content string) *Text {
	return NewText(content).WithClass("text-sm text-foreground-muted")
}

// TitleText creates a heading.
func TitleText(content string) *Text {
	return NewText(content).WithTag("h1").WithClass("text-2xl font-bold text-foreground")
}
