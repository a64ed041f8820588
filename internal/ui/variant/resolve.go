package variant

import "github.com/alexisbeaulieu97/uikit/internal/style"

// Token names shared by the resolvers and the default sheet.
const (
	ButtonRoot      = "button.root"
	ButtonUnderline = "button.underline"

	InputRoot    = "input.root"
	InputError   = "input.error"
	InputLabel   = "input.label"
	InputMessage = "input.message"
	InputWrapper = "input.wrapper"

	DialogContent     = "dialog.content"
	DialogOverlay     = "dialog.overlay"
	DialogHeader      = "dialog.header"
	DialogTitle       = "dialog.title"
	DialogDescription = "dialog.description"
	DialogClose       = "dialog.close"
	DialogBody        = "dialog.body"
	DialogFooter      = "dialog.footer"

	CommandRoot      = "command.root"
	CommandInput     = "command.input"
	CommandList      = "command.list"
	CommandEmpty     = "command.empty"
	CommandGroup     = "command.group"
	CommandHeading   = "command.group.heading"
	CommandItem      = "command.item"
	CommandSelected  = "command.item.selected"
	CommandSeparator = "command.separator"
)

// ButtonVariantToken returns the token name for a button variant.
func ButtonVariantToken(v ButtonVariant) string {
	return "button." + string(v.Normalize())
}

// ButtonSizeToken returns the token name for a button size.
func ButtonSizeToken(s Size) string {
	return "button." + string(s.Normalize())
}

// ButtonUnderlineToken returns the variant-specific underline colour token.
func ButtonUnderlineToken(v ButtonVariant) string {
	return ButtonUnderline + "." + string(v.Normalize())
}

// DialogSizeToken returns the token name for a dialog size.
func DialogSizeToken(s Size) string {
	return "dialog." + string(s.Normalize())
}

// ResolveButton returns the Button token list. The underline base and its
// colour token share one activation flag so they can never diverge.
func ResolveButton(p ButtonProps) []style.Token {
	v := p.Variant.Normalize()
	underlined := v.Underlined()

	return []style.Token{
		style.On(ButtonRoot),
		style.On(ButtonVariantToken(v)),
		style.On(ButtonSizeToken(p.Size)),
		style.If(underlined, ButtonUnderline),
		style.If(underlined, ButtonUnderlineToken(v)),
	}
}

// ResolveInput returns the Input token list.
func ResolveInput(p InputProps) []style.Token {
	return []style.Token{
		style.On(InputRoot),
		style.If(p.Error, InputError),
	}
}

// ResolveDialog returns the Dialog content token list.
func ResolveDialog(p DialogProps) []style.Token {
	return []style.Token{
		style.On(DialogContent),
		style.On(DialogSizeToken(p.Size)),
	}
}

// Fixed returns the single-token list used by regions without variants, such
// as the dialog overlay or the command palette parts.
func Fixed(name string) []style.Token {
	return []style.Token{style.On(name)}
}
