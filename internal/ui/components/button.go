package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

// Button is a pressable control with four variants and three sizes.
type Button struct {
	BaseComponent
	label   string
	props   variant.ButtonProps
	attrs   templ.Attributes
	ref     *markup.Ref
	focused bool
	hovered bool
}

// NewButton creates a default, medium button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		props:         variant.ButtonProps{Variant: variant.ButtonDefault, Size: variant.SizeMedium},
		attrs:         templ.Attributes{},
	}
}

// Tokens returns the button's resolved style tokens.
func (b *Button) Tokens() []style.Token {
	return variant.ResolveButton(b.props)
}

// ClassName composes the button's class string for ctx.
func (b *Button) ClassName(ctx RenderContext) string {
	return b.ComposeClass(ctx, b.Tokens())
}

// Markup builds the button's element. Without children the label is used as
// content. With AsChild set, children must be exactly one element and the
// button merges onto it instead of rendering a <button>.
func (b *Button) Markup(children ...markup.Node) (*markup.Element, error) {
	return b.MarkupWithContext(DefaultContext(), children...)
}

// MarkupWithContext is Markup with an explicit sheet and theme.
func (b *Button) MarkupWithContext(ctx RenderContext, children ...markup.Node) (*markup.Element, error) {
	props := make(templ.Attributes, len(b.attrs)+2)
	for k, v := range b.attrs {
		props[k] = v
	}
	if !b.props.AsChild {
		if _, ok := props["type"]; !ok {
			props["type"] = "button"
		}
	}
	if b.props.Disabled {
		props["disabled"] = true
	}

	if len(children) == 0 && !b.props.AsChild {
		children = []markup.Node{markup.Text(b.label)}
	}

	target := markup.TargetFor(b.props.AsChild, "button")
	return target.Resolve("Button", props, b.ClassName(ctx), b.ref, children...)
}

// Render writes the button as HTML. It makes Button a templ.Component.
func (b *Button) Render(ctx context.Context, w io.Writer) error {
	el, err := b.Markup()
	if err != nil {
		return err
	}
	return el.Render(ctx, w)
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	state := State{Disabled: b.props.Disabled, Focused: b.focused, Hovered: b.hovered}
	return b.ComputeStyle(ctx, b.ClassName(ctx), state).Render(b.label)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(v variant.ButtonVariant) *Button {
	b.props.Variant = v
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(s variant.Size) *Button {
	b.props.Size = s
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.props.Disabled = disabled
	return b
}

// WithAsChild makes the button merge onto its single child element.
func (b *Button) WithAsChild(asChild bool) *Button {
	b.props.AsChild = asChild
	return b
}

// WithClass sets the caller's class override.
func (b *Button) WithClass(class string) *Button {
	b.SetClass(class)
	return b
}

// WithAttr sets an extra HTML attribute such as an aria-* or data-* hook.
// A class string replaces the class override instead.
func (b *Button) WithAttr(name string, value any) *Button {
	if name == "class" {
		class, _ := value.(string)
		return b.WithClass(class)
	}
	b.attrs[name] = value
	return b
}

// WithRef binds ref to the rendered element.
func (b *Button) WithRef(ref *markup.Ref) *Button {
	b.ref = ref
	return b
}

// WithFocused marks the button focused for terminal rendering.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithHovered marks the button hovered for terminal rendering.
func (b *Button) WithHovered(hovered bool) *Button {
	b.hovered = hovered
	return b
}

// WithAppliers adds terminal style modifiers run after class translation.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// Props returns the style-relevant props.
func (b *Button) Props() variant.ButtonProps {
	return b.props
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.props.Disabled
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(variant.ButtonSecondary)
}

// OutlineButton creates an outline button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(variant.ButtonOutline)
}

// GhostButton creates a ghost button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(variant.ButtonGhost)
}
