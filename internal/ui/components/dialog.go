package components

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/a-h/templ"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

const closeIconPath = "M11.7816 4.03157C12.0062 3.80702 12.0062 3.44295 11.7816 3.2184C11.5571 2.99385 11.193 2.99385 " +
	"10.9685 3.2184L7.50005 6.68682L4.03164 3.2184C3.80708 2.99385 3.44301 2.99385 3.21846 3.2184C2.99391 3.44295 " +
	"2.99391 3.80702 3.21846 4.03157L6.68688 7.49999L3.21846 10.9684C2.99391 11.193 2.99391 11.557 3.21846 " +
	"11.7816C3.44301 12.0061 3.80708 12.0061 4.03164 11.7816L7.50005 8.31316L10.9685 11.7816C11.193 12.0061 " +
	"11.5571 12.0061 11.7816 11.7816C12.0062 11.557 12.0062 11.193 11.7816 10.9684L8.31322 7.49999L11.7816 4.03157Z"

// OpenChangeMsg reports that a dialog wants its caller to change the open
// state.
type OpenChangeMsg struct {
	ID   string
	Open bool
}

// DialogKeyMap holds the dialog's key bindings.
type DialogKeyMap struct {
	Close key.Binding
}

// DefaultDialogKeyMap closes on esc.
func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Dialog is a controlled modal. The caller owns the open state: the dialog
// renders according to Open and reports requested changes through
// OnOpenChange and OpenChangeMsg, but never changes Open itself.
type Dialog struct {
	BaseComponent
	id           string
	open         bool
	onOpenChange func(open bool)
	trigger      *Button
	title        string
	description  string
	size         variant.Size
	showClose    bool
	body         []Part
	footer       []Part
	ref          *markup.Ref
	keys         DialogKeyMap
}

// NewDialog creates a closed, medium dialog with a close button.
func NewDialog() *Dialog {
	return &Dialog{
		BaseComponent: NewBaseComponent(),
		size:          variant.SizeMedium,
		showClose:     true,
		keys:          DefaultDialogKeyMap(),
	}
}

// ID returns the dialog id. Dialogs without an explicit id get one derived
// from their title and description; callers placing several alike dialogs in
// one document must set ids.
func (d *Dialog) ID() string {
	if d.id != "" {
		return d.id
	}
	h := fnv.New32a()
	_, _ = io.WriteString(h, d.title+"\x00"+d.description)
	return fmt.Sprintf("dialog-%08x", h.Sum32())
}

// IsOpen reports the open state supplied by the caller.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// Tokens returns the content's resolved style tokens.
func (d *Dialog) Tokens() []style.Token {
	return variant.ResolveDialog(variant.DialogProps{Size: d.size})
}

// ClassName composes the content class string for ctx.
func (d *Dialog) ClassName(ctx RenderContext) string {
	return d.ComposeClass(ctx, d.Tokens())
}

// RequestOpenChange notifies the caller that the dialog wants to open or
// close. The returned command delivers an OpenChangeMsg to bubbletea
// programs.
func (d *Dialog) RequestOpenChange(open bool) tea.Cmd {
	if d.onOpenChange != nil {
		d.onOpenChange(open)
	}
	id := d.ID()
	return func() tea.Msg {
		return OpenChangeMsg{ID: id, Open: open}
	}
}

// Close is the close affordance: it requests the dialog be closed.
func (d *Dialog) Close() tea.Cmd {
	return d.RequestOpenChange(false)
}

// Update handles the close key while the dialog is open.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if !d.open {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, d.keys.Close) {
		return d.Close()
	}
	return nil
}

// Markup builds the trigger and, while open, the overlay and content.
func (d *Dialog) Markup() (markup.Node, error) {
	return d.MarkupWithContext(DefaultContext())
}

// MarkupWithContext is Markup with an explicit sheet and theme.
func (d *Dialog) MarkupWithContext(ctx RenderContext) (markup.Node, error) {
	sheet := d.SheetFor(ctx)
	fixed := func(name string) string { return style.Compose(sheet, variant.Fixed(name), "") }
	id := d.ID()

	var out markup.Fragment
	if d.trigger != nil {
		triggerEl, err := d.triggerMarkup(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, triggerEl)
	}
	if !d.open {
		return out, nil
	}

	overlay := markup.El("div", templ.Attributes{
		"class":               fixed(variant.DialogOverlay),
		"data-state":          "open",
		"data-dialog-overlay": true,
		"aria-hidden":         "true",
	})

	contentProps := templ.Attributes{
		"id":         id,
		"role":       "dialog",
		"aria-modal": "true",
		"data-state": "open",
		"tabindex":   "-1",
	}

	var children []markup.Node
	if d.title != "" || d.description != "" || d.showClose {
		var heading []markup.Node
		if d.title != "" {
			contentProps["aria-labelledby"] = id + "-title"
			heading = append(heading, markup.El("h2", templ.Attributes{
				"id":    id + "-title",
				"class": fixed(variant.DialogTitle),
			}, markup.Text(d.title)))
		}
		if d.description != "" {
			contentProps["aria-describedby"] = id + "-description"
			heading = append(heading, markup.El("p", templ.Attributes{
				"id":    id + "-description",
				"class": fixed(variant.DialogDescription),
			}, markup.Text(d.description)))
		}

		header := []markup.Node{markup.El("div", nil, heading...)}
		if d.showClose {
			header = append(header, closeButtonMarkup(fixed(variant.DialogClose)))
		}
		children = append(children, markup.El("div", templ.Attributes{"class": fixed(variant.DialogHeader)}, header...))
	}

	children = append(children, markup.El("div", templ.Attributes{"class": fixed(variant.DialogBody)}, wrapParts(d.body)...))
	if len(d.footer) > 0 {
		children = append(children, markup.El("div", templ.Attributes{"class": fixed(variant.DialogFooter)}, wrapParts(d.footer)...))
	}

	content, err := markup.Native("div").Resolve("Dialog", contentProps, d.ClassName(ctx), d.ref, children...)
	if err != nil {
		return nil, err
	}
	return append(out, overlay, content), nil
}

// triggerMarkup merges the trigger behaviour onto the caller's button.
func (d *Dialog) triggerMarkup(ctx RenderContext, contentID string) (*markup.Element, error) {
	el, err := d.trigger.MarkupWithContext(ctx)
	if err != nil {
		return nil, err
	}
	state := "closed"
	if d.open {
		state = "open"
	}
	props := templ.Attributes{
		"type":          "button",
		"aria-haspopup": "dialog",
		"aria-expanded": fmt.Sprint(d.open),
		"aria-controls": contentID,
		"data-state":    state,
	}
	return markup.AsChild().Resolve("DialogTrigger", props, "", nil, el)
}

func closeButtonMarkup(class string) *markup.Element {
	icon := markup.El("svg", templ.Attributes{
		"width":       "15",
		"height":      "15",
		"viewBox":     "0 0 15 15",
		"fill":        "none",
		"xmlns":       "http://www.w3.org/2000/svg",
		"aria-hidden": "true",
	}, markup.El("path", templ.Attributes{
		"d":         closeIconPath,
		"fill":      "currentColor",
		"fill-rule": "evenodd",
		"clip-rule": "evenodd",
	}))
	return markup.El("button", templ.Attributes{
		"type":              "button",
		"class":             class,
		"aria-label":        "Close",
		"data-dialog-close": true,
	}, icon)
}

func wrapParts(parts []Part) []markup.Node {
	nodes := make([]markup.Node, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			nodes = append(nodes, markup.Wrap(p))
		}
	}
	return nodes
}

// Render writes the dialog as HTML.
func (d *Dialog) Render(ctx context.Context, w io.Writer) error {
	n, err := d.Markup()
	if err != nil {
		return err
	}
	return n.Render(ctx, w)
}

var dialogWidths = map[variant.Size]int{
	variant.SizeSmall:  40,
	variant.SizeMedium: 56,
	variant.SizeLarge:  72,
}

// View renders the dialog.
func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger while closed and the content box
// while open. The box is centred when the context has a parent width.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	if !d.open {
		if d.trigger == nil {
			return ""
		}
		return d.trigger.ViewWithContext(ctx)
	}

	sheet := d.SheetFor(ctx)
	fixed := func(name string) lipgloss.Style {
		return TerminalStyle(ctx.Theme, style.Compose(sheet, variant.Fixed(name), ""), State{})
	}

	boxStyle := d.ComputeStyle(ctx, d.ClassName(ctx), State{})
	width := ctx.Constraints.ClampWidth(dialogWidths[d.size.Normalize()])
	inner := width - boxStyle.GetHorizontalPadding()
	if inner < 1 {
		inner = 1
	}
	childCtx := ctx.WithConstraints(WithMaxWidth(inner)).WithParentWidth(0)

	var sections []string
	if d.title != "" || d.description != "" || d.showClose {
		var heading []string
		if d.title != "" {
			heading = append(heading, fixed(variant.DialogTitle).Render(d.title))
		}
		if d.description != "" {
			heading = append(heading, fixed(variant.DialogDescription).Render(d.description))
		}
		left := lipgloss.JoinVertical(lipgloss.Left, heading...)
		if d.showClose {
			closeView := fixed(variant.DialogClose).Render("✕")
			left = lipgloss.NewStyle().Width(inner - lipgloss.Width(closeView)).Render(left)
			left = lipgloss.JoinHorizontal(lipgloss.Top, left, closeView)
		}
		sections = append(sections, left)
	}

	bodyViews := make([]string, 0, len(d.body))
	for _, p := range d.body {
		bodyViews = append(bodyViews, viewOf(p, childCtx))
	}
	sections = append(sections, fixed(variant.DialogBody).Render(lipgloss.JoinVertical(lipgloss.Left, bodyViews...)))

	if len(d.footer) > 0 {
		children := make([]ui.Renderable, 0, len(d.footer))
		for _, p := range d.footer {
			children = append(children, p)
		}
		footer := HStack(children...).WithGap(1).ViewWithContext(childCtx)
		sections = append(sections, lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(footer))
	}

	box := boxStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, joinWithBlank(sections)...))
	if ctx.ParentWidth > 0 {
		return lipgloss.PlaceHorizontal(ctx.ParentWidth, lipgloss.Center, box)
	}
	return box
}

func joinWithBlank(sections []string) []string {
	out := make([]string, 0, len(sections)*2)
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}

// WithID sets an explicit id.
func (d *Dialog) WithID(id string) *Dialog {
	d.id = id
	return d
}

// WithOpen sets the open state owned by the caller.
func (d *Dialog) WithOpen(open bool) *Dialog {
	d.open = open
	return d
}

// WithOnOpenChange sets the callback invoked when the dialog asks to change
// its open state.
func (d *Dialog) WithOnOpenChange(fn func(open bool)) *Dialog {
	d.onOpenChange = fn
	return d
}

// WithTrigger sets the button that opens the dialog.
func (d *Dialog) WithTrigger(trigger *Button) *Dialog {
	d.trigger = trigger
	return d
}

// WithTitle sets the title.
func (d *Dialog) WithTitle(title string) *Dialog {
	d.title = title
	return d
}

// WithDescription sets the description.
func (d *Dialog) WithDescription(description string) *Dialog {
	d.description = description
	return d
}

// WithSize sets the content size.
func (d *Dialog) WithSize(size variant.Size) *Dialog {
	d.size = size
	return d
}

// WithShowCloseButton toggles the close affordance.
func (d *Dialog) WithShowCloseButton(show bool) *Dialog {
	d.showClose = show
	return d
}

// WithBody sets the body content.
func (d *Dialog) WithBody(parts ...Part) *Dialog {
	d.body = parts
	return d
}

// WithFooter sets the footer content. An empty footer is not rendered.
func (d *Dialog) WithFooter(parts ...Part) *Dialog {
	d.footer = parts
	return d
}

// WithClass sets the caller's class override for the content.
func (d *Dialog) WithClass(class string) *Dialog {
	d.SetClass(class)
	return d
}

// WithRef binds ref to the content element.
func (d *Dialog) WithRef(ref *markup.Ref) *Dialog {
	d.ref = ref
	return d
}

// WithKeyMap replaces the key bindings.
func (d *Dialog) WithKeyMap(keys DialogKeyMap) *Dialog {
	d.keys = keys
	return d
}

// KeyMap returns the key bindings.
func (d *Dialog) KeyMap() DialogKeyMap {
	return d.keys
}
