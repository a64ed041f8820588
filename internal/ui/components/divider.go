package components

import "strings"

// Divider renders a horizontal rule in the terminal.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider drawn in the theme's border colour.
func NewDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	d.SetClass("text-border")
	return d
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Without an explicit width it fills
// the context's maximum width, then the parent width, then 40 cells.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 && ctx.ParentWidth > 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = 40
	}
	return d.ComputeStyle(ctx, d.ClassOverride(), State{}).Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithClass replaces the divider's utility classes.
func (d *Divider) WithClass(class string) *Divider {
	d.SetClass(class)
	return d
}
