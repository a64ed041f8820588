package components

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

// CommandItem is one selectable entry of a command palette.
type CommandItem struct {
	Value    string
	Label    string
	Keywords []string
	Shortcut string
	Disabled bool
}

func (i CommandItem) value() string {
	if i.Value != "" {
		return i.Value
	}
	return i.Label
}

func (i CommandItem) filterValue() string {
	if len(i.Keywords) == 0 {
		return i.Label
	}
	return i.Label + " " + strings.Join(i.Keywords, " ")
}

// CommandGroup is a headed group of items.
type CommandGroup struct {
	Heading string
	Items   []CommandItem
}

// CommandSelectMsg is emitted when an item is chosen.
type CommandSelectMsg struct {
	Item CommandItem
}

// CommandCloseMsg is emitted when the palette asks to be dismissed.
type CommandCloseMsg struct{}

// CommandKeyMap holds the palette's key bindings.
type CommandKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultCommandKeyMap uses the arrow keys, ctrl+p/ctrl+n, enter and esc.
func DefaultCommandKeyMap() CommandKeyMap {
	return CommandKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

type visibleGroup struct {
	heading string
	items   []CommandItem
}

// Command is a filterable command palette: a search field above grouped
// items, with keyboard navigation and an empty state.
type Command struct {
	BaseComponent
	id          string
	label       string
	empty       string
	input       textinput.Model
	groups      []CommandGroup
	partClasses map[string]string
	onSelect    func(CommandItem)
	keys        CommandKeyMap

	visible []visibleGroup
	cursor  int
}

// NewCommand creates an empty palette.
func NewCommand() *Command {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Type a command or search..."
	c := &Command{
		BaseComponent: NewBaseComponent(),
		id:            "command",
		label:         "Command menu",
		empty:         "No results found.",
		input:         input,
		partClasses:   map[string]string{},
		keys:          DefaultCommandKeyMap(),
	}
	c.refilter()
	return c
}

// refilter recomputes the visible groups for the current query. Items keep
// their group; within a group they are ordered by match quality.
func (c *Command) refilter() {
	query := strings.TrimSpace(c.input.Value())
	c.visible = c.visible[:0]

	if query == "" {
		for _, g := range c.groups {
			if len(g.Items) > 0 {
				c.visible = append(c.visible, visibleGroup{heading: g.Heading, items: g.Items})
			}
		}
		c.clampCursor()
		return
	}

	type ref struct{ group, item int }
	var refs []ref
	var targets []string
	for gi, g := range c.groups {
		for ii, item := range g.Items {
			refs = append(refs, ref{gi, ii})
			targets = append(targets, item.filterValue())
		}
	}

	rankOf := map[int]int{}
	for pos, rank := range list.DefaultFilter(query, targets) {
		rankOf[rank.Index] = pos
	}

	byGroup := make([][]int, len(c.groups))
	for flat, r := range refs {
		if _, ok := rankOf[flat]; ok {
			byGroup[r.group] = append(byGroup[r.group], flat)
		}
	}
	for gi, flats := range byGroup {
		if len(flats) == 0 {
			continue
		}
		sort.SliceStable(flats, func(a, b int) bool { return rankOf[flats[a]] < rankOf[flats[b]] })
		items := make([]CommandItem, 0, len(flats))
		for _, flat := range flats {
			items = append(items, c.groups[gi].Items[refs[flat].item])
		}
		c.visible = append(c.visible, visibleGroup{heading: c.groups[gi].Heading, items: items})
	}
	c.cursor = 0
	c.clampCursor()
}

func (c *Command) flat() []CommandItem {
	var out []CommandItem
	for _, g := range c.visible {
		out = append(out, g.items...)
	}
	return out
}

// clampCursor keeps the cursor on an enabled item when one exists.
func (c *Command) clampCursor() {
	items := c.flat()
	if len(items) == 0 {
		c.cursor = 0
		return
	}
	if c.cursor >= len(items) {
		c.cursor = len(items) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	if items[c.cursor].Disabled {
		c.move(1)
	}
}

func (c *Command) move(delta int) {
	items := c.flat()
	n := len(items)
	if n == 0 {
		return
	}
	for step := 1; step <= n; step++ {
		next := ((c.cursor+delta*step)%n + n) % n
		if !items[next].Disabled {
			c.cursor = next
			return
		}
	}
}

// Selected returns the highlighted item.
func (c *Command) Selected() (CommandItem, bool) {
	items := c.flat()
	if len(items) == 0 || items[c.cursor].Disabled {
		return CommandItem{}, false
	}
	return items[c.cursor], true
}

// VisibleItems returns the items matching the current query in display
// order.
func (c *Command) VisibleItems() []CommandItem {
	return c.flat()
}

// Query returns the search text.
func (c *Command) Query() string {
	return c.input.Value()
}

// SetQuery replaces the search text and refilters.
func (c *Command) SetQuery(query string) *Command {
	c.input.SetValue(query)
	c.refilter()
	return c
}

// Focus focuses the search field.
func (c *Command) Focus() tea.Cmd {
	return c.input.Focus()
}

// Blur removes focus from the search field.
func (c *Command) Blur() {
	c.input.Blur()
}

// Update handles navigation, selection and dismissal keys and forwards
// everything else to the search field.
func (c *Command) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, c.keys.Up):
			c.move(-1)
			return nil
		case key.Matches(keyMsg, c.keys.Down):
			c.move(1)
			return nil
		case key.Matches(keyMsg, c.keys.Select):
			return c.selectCurrent()
		case key.Matches(keyMsg, c.keys.Close):
			return func() tea.Msg { return CommandCloseMsg{} }
		}
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() != before {
		c.refilter()
	}
	return cmd
}

func (c *Command) selectCurrent() tea.Cmd {
	item, ok := c.Selected()
	if !ok {
		return nil
	}
	if c.onSelect != nil {
		c.onSelect(item)
	}
	return func() tea.Msg { return CommandSelectMsg{Item: item} }
}

func (c *Command) partClass(ctx RenderContext, part string) string {
	if part == variant.CommandRoot {
		return c.ComposeClass(ctx, variant.Fixed(part))
	}
	return style.Compose(c.SheetFor(ctx), variant.Fixed(part), c.partClasses[part])
}

func (c *Command) itemClass(ctx RenderContext, selected bool) string {
	tokens := []style.Token{style.On(variant.CommandItem), style.If(selected, variant.CommandSelected)}
	return style.Compose(c.SheetFor(ctx), tokens, c.partClasses[variant.CommandItem])
}

// Markup builds the palette's element tree.
func (c *Command) Markup() (*markup.Element, error) {
	return c.MarkupWithContext(DefaultContext())
}

// MarkupWithContext is Markup with an explicit sheet and theme.
func (c *Command) MarkupWithContext(ctx RenderContext) (*markup.Element, error) {
	listID := c.id + "-list"
	itemID := func(i int) string { return fmt.Sprintf("%s-item-%d", c.id, i) }

	inputProps := templ.Attributes{
		"cmdk-input":        true,
		"type":              "text",
		"role":              "combobox",
		"aria-autocomplete": "list",
		"aria-expanded":     "true",
		"aria-controls":     listID,
		"placeholder":       c.input.Placeholder,
		"class":             c.partClass(ctx, variant.CommandInput),
	}
	if q := c.input.Value(); q != "" {
		inputProps["value"] = q
	}
	if _, ok := c.Selected(); ok {
		inputProps["aria-activedescendant"] = itemID(c.cursor)
	}

	var listChildren []markup.Node
	if len(c.visible) == 0 {
		listChildren = append(listChildren, markup.El("div", templ.Attributes{
			"cmdk-empty": true,
			"role":       "presentation",
			"class":      c.partClass(ctx, variant.CommandEmpty),
		}, markup.Text(c.empty)))
	}

	flat := 0
	for gi, g := range c.visible {
		if gi > 0 {
			listChildren = append(listChildren, markup.El("div", templ.Attributes{
				"cmdk-separator": true,
				"role":           "separator",
				"class":          c.partClass(ctx, variant.CommandSeparator),
			}))
		}

		var groupChildren []markup.Node
		if g.heading != "" {
			groupChildren = append(groupChildren, markup.El("div", templ.Attributes{
				"cmdk-group-heading": true,
				"aria-hidden":        "true",
				"class":              c.partClass(ctx, variant.CommandHeading),
			}, markup.Text(g.heading)))
		}

		var items []markup.Node
		for _, item := range g.items {
			selected := flat == c.cursor && !item.Disabled
			attrs := templ.Attributes{
				"cmdk-item":     true,
				"id":            itemID(flat),
				"role":          "option",
				"data-value":    item.value(),
				"aria-selected": fmt.Sprint(selected),
				"data-selected": fmt.Sprint(selected),
				"class":         c.itemClass(ctx, selected),
			}
			if item.Disabled {
				attrs["aria-disabled"] = "true"
				attrs["data-disabled"] = "true"
			}
			items = append(items, markup.El("div", attrs, markup.Text(item.Label)))
			flat++
		}
		groupChildren = append(groupChildren, markup.El("div", templ.Attributes{"cmdk-group-items": true, "role": "group"}, items...))

		listChildren = append(listChildren, markup.El("div", templ.Attributes{
			"cmdk-group": true,
			"role":       "presentation",
			"data-value": g.heading,
			"class":      c.partClass(ctx, variant.CommandGroup),
		}, groupChildren...))
	}

	root := markup.El("div", templ.Attributes{
		"cmdk-root":  true,
		"aria-label": c.label,
		"class":      c.partClass(ctx, variant.CommandRoot),
	},
		markup.El("input", inputProps),
		markup.El("div", templ.Attributes{
			"cmdk-list": true,
			"id":        listID,
			"role":      "listbox",
			"class":     c.partClass(ctx, variant.CommandList),
		}, listChildren...),
	)
	return root, nil
}

// Render writes the palette as HTML.
func (c *Command) Render(ctx context.Context, w io.Writer) error {
	el, err := c.Markup()
	if err != nil {
		return err
	}
	return el.Render(ctx, w)
}

// View renders the palette.
func (c *Command) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the search field, the grouped items and the
// empty state.
func (c *Command) ViewWithContext(ctx RenderContext) string {
	rootStyle := c.ComputeStyle(ctx, c.partClass(ctx, variant.CommandRoot), State{})
	width := ctx.Constraints.ClampWidth(48)
	inner := width - rootStyle.GetHorizontalPadding()
	if inner < 1 {
		inner = 1
	}

	part := func(name string) lipgloss.Style {
		return TerminalStyle(ctx.Theme, c.partClass(ctx, name), State{Focused: c.input.Focused()})
	}

	inputStyle := part(variant.CommandInput)
	lines := []string{inputStyle.Width(inner - inputStyle.GetHorizontalBorderSize()).Render(c.input.View())}

	if len(c.visible) == 0 {
		lines = append(lines, part(variant.CommandEmpty).Width(inner).Render(c.empty))
	}

	flat := 0
	for gi, g := range c.visible {
		if gi > 0 {
			lines = append(lines, NewDivider().WithWidth(inner).ViewWithContext(ctx))
		}
		if g.heading != "" {
			lines = append(lines, part(variant.CommandHeading).Render(g.heading))
		}
		for _, item := range g.items {
			selected := flat == c.cursor && !item.Disabled
			itemStyle := TerminalStyle(ctx.Theme, c.itemClass(ctx, selected), State{Disabled: item.Disabled})
			if item.Disabled {
				itemStyle = itemStyle.Faint(true)
			}
			label := item.Label
			if item.Shortcut != "" {
				gap := inner - itemStyle.GetHorizontalPadding() - lipgloss.Width(label) - lipgloss.Width(item.Shortcut)
				if gap < 1 {
					gap = 1
				}
				label += strings.Repeat(" ", gap) + item.Shortcut
			}
			lines = append(lines, itemStyle.Width(inner).Render(label))
			flat++
		}
	}

	return rootStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithID sets the id prefix used for the list and item ids.
func (c *Command) WithID(id string) *Command {
	if id != "" {
		c.id = id
	}
	return c
}

// WithLabel sets the accessible label.
func (c *Command) WithLabel(label string) *Command {
	c.label = label
	return c
}

// WithPlaceholder sets the search placeholder.
func (c *Command) WithPlaceholder(placeholder string) *Command {
	c.input.Placeholder = placeholder
	return c
}

// WithEmpty sets the text shown when nothing matches.
func (c *Command) WithEmpty(text string) *Command {
	c.empty = text
	return c
}

// WithGroups replaces the item groups.
func (c *Command) WithGroups(groups ...CommandGroup) *Command {
	c.groups = groups
	c.refilter()
	return c
}

// WithOnSelect sets the callback run when an item is chosen.
func (c *Command) WithOnSelect(fn func(CommandItem)) *Command {
	c.onSelect = fn
	return c
}

// WithClass sets the caller's class override for the root.
func (c *Command) WithClass(class string) *Command {
	c.SetClass(class)
	return c
}

// WithPartClass sets the caller's class override for one part, named by its
// token (variant.CommandInput, variant.CommandItem, ...).
func (c *Command) WithPartClass(part, class string) *Command {
	if part == variant.CommandRoot {
		c.SetClass(class)
		return c
	}
	c.partClasses[part] = class
	return c
}

// WithKeyMap replaces the key bindings.
func (c *Command) WithKeyMap(keys CommandKeyMap) *Command {
	c.keys = keys
	return c
}

// KeyMap returns the key bindings.
func (c *Command) KeyMap() CommandKeyMap {
	return c.keys
}
