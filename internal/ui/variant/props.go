// Package variant maps component props onto ordered style tokens.
//
// Resolvers never fail. Values outside the known enums fall back to the
// defaults so a bad prop degrades the look of a component instead of breaking
// the render; configuration files are validated before they get here.
package variant

// ButtonVariant selects the visual treatment of a Button.
type ButtonVariant string

const (
	ButtonDefault   ButtonVariant = "default"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonVariants lists every supported button variant in display order.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{ButtonDefault, ButtonSecondary, ButtonOutline, ButtonGhost}
}

// Normalize returns v, or ButtonDefault when v is not a known variant.
func (v ButtonVariant) Normalize() ButtonVariant {
	switch v {
	case ButtonDefault, ButtonSecondary, ButtonOutline, ButtonGhost:
		return v
	default:
		return ButtonDefault
	}
}

// Underlined reports whether the variant carries the underline animation.
func (v ButtonVariant) Underlined() bool {
	switch v.Normalize() {
	case ButtonDefault, ButtonSecondary:
		return true
	default:
		return false
	}
}

// Size is shared by Button and Dialog.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Sizes lists every supported size from smallest to largest.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Normalize returns s, or SizeMedium when s is not a known size.
func (s Size) Normalize() Size {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return s
	default:
		return SizeMedium
	}
}

// ButtonProps are the style-relevant Button props. Disabled does not change
// the token list; it only adds the disabled attribute when rendering.
type ButtonProps struct {
	Variant  ButtonVariant
	Size     Size
	Disabled bool
	AsChild  bool
}

// InputProps are the style-relevant Input props.
type InputProps struct {
	Label        string
	Error        bool
	ErrorMessage string
	Disabled     bool
}

// ShowErrorMessage reports whether the error message element is rendered.
func (p InputProps) ShowErrorMessage() bool {
	return p.Error && p.ErrorMessage != ""
}

// DialogProps are the style-relevant Dialog props.
type DialogProps struct {
	Size Size
}
