package components

import (
	"github.com/a-h/templ"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	class    string
	sheet    style.Sheet
	strategy StyleStrategy
}

// StyleStrategy post-processes the terminal style computed from a
// component's classes.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with no override.
func NewBaseComponent() BaseComponent {
	return BaseComponent{strategy: CompositeStrategy{}}
}

// SetClass sets the caller's class override. It is composed last, so it wins
// every conflict with the component's own tokens.
func (b *BaseComponent) SetClass(class string) {
	b.class = class
}

// ClassOverride returns the caller's class override.
func (b *BaseComponent) ClassOverride() string {
	return b.class
}

// SetSheet pins the token sheet for this component, taking precedence over
// the render context's sheet.
func (b *BaseComponent) SetSheet(sheet style.Sheet) {
	b.sheet = sheet
}

// SheetFor returns the sheet the component resolves tokens against.
func (b *BaseComponent) SheetFor(ctx RenderContext) style.Sheet {
	if b.sheet != nil {
		return b.sheet
	}
	if ctx.Sheet != nil {
		return ctx.Sheet
	}
	return variant.DefaultSheet()
}

// ComposeClass composes tokens with the caller's override.
func (b *BaseComponent) ComposeClass(ctx RenderContext, tokens []style.Token) string {
	return style.Compose(b.SheetFor(ctx), tokens, b.class)
}

// ComputeStyle translates class into a terminal style for ctx's theme and
// runs the component's strategy over the result.
func (b *BaseComponent) ComputeStyle(ctx RenderContext, class string, state State) lipgloss.Style {
	s := TerminalStyle(ctx.Theme, class, state)
	if b.strategy == nil {
		return s
	}
	return b.strategy.Apply(s, ctx.Theme)
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// A non-composite strategy is kept and runs before the new appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
		return
	}

	currentStrategy := b.strategy
	wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if currentStrategy != nil {
			base = currentStrategy.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  -1, // -1 means unlimited
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  maxWidth,
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// ClampWidth limits w to the width constraints.
func (c Constraints) ClampWidth(w int) int {
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth >= 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	return w
}

// RenderContext carries the theme, token sheet and layout information
// through a terminal render pass.
type RenderContext struct {
	Theme       Theme
	Sheet       style.Sheet
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the default theme, the
// default sheet and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithSheet returns a new context resolving tokens against sheet.
func (r RenderContext) WithSheet(sheet style.Sheet) RenderContext {
	r.Sheet = sheet
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context that centres overlays within width.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Part renders both as HTML and in the terminal. Dialog bodies and footers
// are built from parts.
type Part interface {
	templ.Component
	ContextualRenderable
}

func viewOf(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Alignment specifies how content should be aligned.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
