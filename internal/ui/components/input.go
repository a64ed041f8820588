package components

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

// Input is a labelled text field with an optional error message. In the
// terminal it wraps a bubbles text input.
type Input struct {
	BaseComponent
	id        string
	name      string
	inputType string
	props     variant.InputProps
	attrs     templ.Attributes
	ref       *markup.Ref
	model     textinput.Model
}

// NewInput creates an empty text input.
func NewInput() *Input {
	model := textinput.New()
	model.Prompt = ""
	return &Input{
		BaseComponent: NewBaseComponent(),
		inputType:     "text",
		attrs:         templ.Attributes{},
		model:         model,
	}
}

// ID returns the input's id. Inputs without an explicit id get one derived
// from their label, name and placeholder so repeated renders agree; callers
// placing several alike inputs in one document must set ids.
func (i *Input) ID() string {
	if i.id != "" {
		return i.id
	}
	h := fnv.New32a()
	_, _ = io.WriteString(h, i.props.Label+"\x00"+i.name+"\x00"+i.model.Placeholder)
	return fmt.Sprintf("input-%08x", h.Sum32())
}

// ErrorID returns the id of the error message element.
func (i *Input) ErrorID() string {
	return i.ID() + "-error"
}

// Tokens returns the input's resolved style tokens.
func (i *Input) Tokens() []style.Token {
	return variant.ResolveInput(i.props)
}

// ClassName composes the input's class string for ctx.
func (i *Input) ClassName(ctx RenderContext) string {
	return i.ComposeClass(ctx, i.Tokens())
}

// Markup builds the wrapper, the optional label, the input and the optional
// error message.
func (i *Input) Markup() (*markup.Element, error) {
	return i.MarkupWithContext(DefaultContext())
}

// MarkupWithContext is Markup with an explicit sheet and theme.
func (i *Input) MarkupWithContext(ctx RenderContext) (*markup.Element, error) {
	sheet := i.SheetFor(ctx)
	id := i.ID()

	props := templ.Attributes{
		"id":   id,
		"type": i.inputType,
	}
	if i.name != "" {
		props["name"] = i.name
	}
	if i.model.Placeholder != "" {
		props["placeholder"] = i.model.Placeholder
	}
	if v := i.model.Value(); v != "" {
		props["value"] = v
	}
	props["aria-invalid"] = strconv.FormatBool(i.props.Error)
	if i.props.ShowErrorMessage() {
		props["aria-describedby"] = i.ErrorID()
	}
	if i.props.Disabled {
		props["disabled"] = true
	}
	for k, v := range i.attrs {
		props[k] = v
	}

	field, err := markup.Native("input").Resolve("Input", props, i.ClassName(ctx), i.ref)
	if err != nil {
		return nil, err
	}

	children := make([]markup.Node, 0, 3)
	if i.props.Label != "" {
		children = append(children, markup.El("label", templ.Attributes{
			"for":   id,
			"class": style.Compose(sheet, variant.Fixed(variant.InputLabel), ""),
		}, markup.Text(i.props.Label)))
	}
	children = append(children, field)
	if i.props.ShowErrorMessage() {
		children = append(children, markup.El("span", templ.Attributes{
			"id":    i.ErrorID(),
			"class": style.Compose(sheet, variant.Fixed(variant.InputMessage), ""),
		}, markup.Text(i.props.ErrorMessage)))
	}

	wrapper := style.Compose(sheet, variant.Fixed(variant.InputWrapper), "")
	return markup.El("div", templ.Attributes{"class": wrapper}, children...), nil
}

// Render writes the input as HTML.
func (i *Input) Render(ctx context.Context, w io.Writer) error {
	el, err := i.Markup()
	if err != nil {
		return err
	}
	return el.Render(ctx, w)
}

// Focus focuses the terminal field. Disabled inputs never take focus.
func (i *Input) Focus() tea.Cmd {
	if i.props.Disabled {
		return nil
	}
	return i.model.Focus()
}

// Blur removes focus from the terminal field.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports whether the terminal field has focus.
func (i *Input) Focused() bool {
	return i.model.Focused()
}

// Update forwards key input to the terminal field.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if i.props.Disabled {
		return nil
	}
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// Value returns the current text.
func (i *Input) Value() string {
	return i.model.Value()
}

// View renders the input.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the field and the error message.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	sheet := i.SheetFor(ctx)
	state := State{Disabled: i.props.Disabled, Focused: i.model.Focused()}
	class := i.ClassName(ctx)

	model := i.model
	model.PlaceholderStyle = TerminalStyle(ctx.Theme, class, State{Placeholder: true}).
		UnsetPadding().UnsetBorderStyle()
	fieldStyle := i.ComputeStyle(ctx, class, state)
	if ctx.Constraints.MaxWidth > 0 {
		model.Width = ctx.Constraints.MaxWidth - fieldStyle.GetHorizontalFrameSize() - 1
	}

	lines := make([]string, 0, 3)
	if i.props.Label != "" {
		labelClass := style.Compose(sheet, variant.Fixed(variant.InputLabel), "")
		lines = append(lines, TerminalStyle(ctx.Theme, labelClass, State{}).Render(i.props.Label))
	}
	lines = append(lines, fieldStyle.Render(model.View()))
	if i.props.ShowErrorMessage() {
		messageClass := style.Compose(sheet, variant.Fixed(variant.InputMessage), "")
		lines = append(lines, TerminalStyle(ctx.Theme, messageClass, State{}).Render(i.props.ErrorMessage))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// WithID sets an explicit id.
func (i *Input) WithID(id string) *Input {
	i.id = id
	return i
}

// WithName sets the form field name.
func (i *Input) WithName(name string) *Input {
	i.name = name
	return i
}

// WithType sets the HTML input type.
func (i *Input) WithType(inputType string) *Input {
	if inputType != "" {
		i.inputType = inputType
	}
	return i
}

// WithLabel sets the label rendered above the field.
func (i *Input) WithLabel(label string) *Input {
	i.props.Label = label
	return i
}

// WithPlaceholder sets the placeholder text.
func (i *Input) WithPlaceholder(placeholder string) *Input {
	i.model.Placeholder = placeholder
	return i
}

// WithValue sets the current text.
func (i *Input) WithValue(value string) *Input {
	i.model.SetValue(value)
	return i
}

// WithError marks the input invalid.
func (i *Input) WithError(invalid bool) *Input {
	i.props.Error = invalid
	return i
}

// WithErrorMessage sets the message shown while the input is invalid.
func (i *Input) WithErrorMessage(message string) *Input {
	i.props.ErrorMessage = message
	return i
}

// WithDisabled sets the disabled state.
func (i *Input) WithDisabled(disabled bool) *Input {
	i.props.Disabled = disabled
	if disabled {
		i.model.Blur()
	}
	return i
}

// WithClass sets the caller's class override for the field.
func (i *Input) WithClass(class string) *Input {
	i.SetClass(class)
	return i
}

// WithAttr sets an extra attribute on the field element. An id goes through
// WithID so the label and error message follow it; a class string replaces
// the class override.
func (i *Input) WithAttr(name string, value any) *Input {
	switch name {
	case "id":
		id, _ := value.(string)
		return i.WithID(id)
	case "class":
		class, _ := value.(string)
		return i.WithClass(class)
	}
	i.attrs[name] = value
	return i
}

// WithRef binds ref to the field element.
func (i *Input) WithRef(ref *markup.Ref) *Input {
	i.ref = ref
	return i
}

// Props returns the style-relevant props.
func (i *Input) Props() variant.InputProps {
	return i.props
}
