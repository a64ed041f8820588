package variant

import "github.com/alexisbeaulieu97/uikit/internal/style"

const underlineBase = "relative after:absolute after:inset-x-0 after:-bottom-0.5 after:h-0.5 " +
	"after:origin-left after:scale-x-0 after:transition-transform after:duration-300 " +
	"hover:after:scale-x-100 focus-visible:after:scale-x-100"

var defaultSheet = style.Sheet{
	ButtonRoot: "inline-flex items-center justify-center gap-2 rounded font-nunito font-semibold " +
		"whitespace-nowrap transition-colors focus-visible:outline-none focus-visible:ring-2 " +
		"focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
	"button.default":   "bg-primary text-black hover:bg-primary/90",
	"button.secondary": "bg-secondary text-white hover:bg-secondary/90",
	"button.outline":   "border border-border bg-transparent text-foreground hover:bg-surface",
	"button.ghost":     "bg-transparent text-foreground hover:bg-surface",
	"button.sm":        "h-8 px-3 text-sm",
	"button.md":        "h-10 px-4 py-2 text-base",
	"button.lg":        "h-12 px-8 text-lg",

	ButtonUnderline:              underlineBase,
	"button.underline.default":   "after:bg-black",
	"button.underline.secondary": "after:bg-primary",

	InputWrapper: "flex flex-col gap-1.5",
	InputLabel:   "text-sm font-medium text-foreground-secondary",
	InputRoot: "h-10 w-full rounded border border-border bg-background px-3 py-2 text-base " +
		"text-foreground placeholder:text-foreground-muted focus-visible:outline-none " +
		"focus-visible:ring-2 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50",
	InputError:   "border-accent focus-visible:ring-accent",
	InputMessage: "text-sm text-accent",

	DialogOverlay: "fixed inset-0 z-50 bg-black/60",
	DialogContent: "fixed left-1/2 top-1/2 z-50 -translate-x-1/2 -translate-y-1/2 w-full rounded " +
		"border border-border bg-surface p-6 text-foreground shadow-lg",
	"dialog.sm":       "max-w-sm",
	"dialog.md":       "max-w-lg",
	"dialog.lg":       "max-w-2xl",
	DialogHeader:      "mb-4 flex items-start justify-between gap-4",
	DialogTitle:       "text-lg font-semibold text-foreground",
	DialogDescription: "text-sm text-foreground-secondary",
	DialogClose: "rounded p-1 text-foreground-muted hover:text-foreground focus-visible:outline-none " +
		"focus-visible:ring-2 focus-visible:ring-ring",
	DialogBody:   "text-base text-foreground",
	DialogFooter: "mt-6 flex justify-end gap-2",

	CommandRoot:      "flex w-full flex-col overflow-hidden rounded border border-border bg-surface text-foreground",
	CommandInput:     "h-11 w-full border-b border-border bg-transparent px-3 text-sm placeholder:text-foreground-muted focus:outline-none",
	CommandList:      "max-h-80 overflow-y-auto p-1",
	CommandEmpty:     "py-6 text-center text-sm text-foreground-muted",
	CommandGroup:     "p-1",
	CommandHeading:   "px-2 py-1.5 text-xs font-semibold uppercase text-foreground-muted",
	CommandItem:      "flex cursor-pointer select-none items-center gap-2 rounded px-2 py-1.5 text-sm",
	CommandSelected:  "bg-primary text-black",
	CommandSeparator: "-mx-1 my-1 h-px bg-border",
}

// DefaultSheet returns a fresh copy of the built-in token sheet. Callers may
// modify the result freely.
func DefaultSheet() style.Sheet {
	return defaultSheet.With(nil)
}
