package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/style"
)

// State lists the interaction states that switch modified utilities such as
// "disabled:opacity-50" or "focus-visible:ring-2" on.
type State struct {
	Disabled    bool
	Focused     bool
	Hovered     bool
	Placeholder bool
}

func (s State) active(modifier string, theme Theme) bool {
	switch modifier {
	case "disabled":
		return s.Disabled
	case "focus", "focus-visible", "focus-within":
		return s.Focused
	case "hover":
		return s.Hovered
	case "placeholder":
		return s.Placeholder
	case "dark":
		return theme.Mode == ModeDark
	case "light":
		return theme.Mode == ModeLight
	case "after", "before":
		return true
	default:
		return false
	}
}

// TerminalStyle translates a composed class string into a lipgloss style.
// Only the utilities that have a terminal meaning are honoured: colours,
// weight, decoration, case, padding, margin, borders and alignment.
// Classes are applied in order, so the composed order decides conflicts just
// as it does in a browser.
func TerminalStyle(theme Theme, class string, state State) lipgloss.Style {
	t := terminalStyle{theme: theme, style: lipgloss.NewStyle()}

	for _, c := range strings.Fields(class) {
		modifiers, base := style.Split(c)

		enabled := true
		pseudo := false
		for _, m := range modifiers {
			if m == "after" || m == "before" {
				pseudo = true
			}
			if !state.active(m, theme) {
				enabled = false
				break
			}
		}
		if !enabled {
			continue
		}

		base = strings.TrimPrefix(base, "!")
		negative := strings.HasPrefix(base, "-")

		props, value, ok := style.Lookup(base)
		if !ok {
			continue
		}
		if pseudo {
			t.pseudo(props, value)
			continue
		}
		t.apply(props, value, negative)
	}

	return t.finish()
}

type terminalStyle struct {
	theme       Theme
	style       lipgloss.Style
	borders     map[string]bool
	borderColor lipgloss.Color
	rounded     bool
}

// pseudo handles decorative pseudo-elements. A coloured bar drawn under the
// element becomes an underline.
func (t *terminalStyle) pseudo(props []string, value string) {
	if props[0] != "background-color" {
		return
	}
	if _, ok := t.theme.Color(value); ok {
		t.style = t.style.Underline(true)
	}
}

func (t *terminalStyle) apply(props []string, value string, negative bool) {
	prop := props[0]
	switch {
	case prop == "background-color":
		if value == "transparent" {
			t.style = t.style.UnsetBackground()
			return
		}
		if c, ok := t.theme.Color(value); ok {
			t.style = t.style.Background(c)
		}
	case prop == "color":
		if c, ok := t.theme.Color(value); ok {
			t.style = t.style.Foreground(c)
		}
	case prop == "font-weight":
		if n, err := strconv.Atoi(strings.TrimPrefix(strings.Trim(value, "[]"), "weight:")); err == nil {
			value = numericWeight(n)
		}
		switch value {
		case "semibold", "bold", "extrabold", "black":
			t.style = t.style.Bold(true).Faint(false)
		case "thin", "extralight", "light":
			t.style = t.style.Bold(false).Faint(true)
		default:
			t.style = t.style.Bold(false)
		}
	case prop == "font-style":
		t.style = t.style.Italic(value == "italic")
	case prop == "text-decoration-line":
		switch value {
		case "underline":
			t.style = t.style.Underline(true)
		case "line-through":
			t.style = t.style.Strikethrough(true)
		default:
			t.style = t.style.Underline(false).Strikethrough(false)
		}
	case prop == "text-transform":
		switch value {
		case "uppercase":
			t.style = t.style.Transform(strings.ToUpper)
		case "lowercase":
			t.style = t.style.Transform(strings.ToLower)
		default:
			t.style = t.style.UnsetTransform()
		}
	case prop == "opacity":
		if n, err := strconv.Atoi(value); err == nil {
			t.style = t.style.Faint(n <= 60)
		}
	case prop == "text-align":
		switch value {
		case "center":
			t.style = t.style.Align(lipgloss.Center)
		case "right", "end":
			t.style = t.style.Align(lipgloss.Right)
		default:
			t.style = t.style.Align(lipgloss.Left)
		}
	case strings.HasPrefix(prop, "padding-"):
		if negative {
			return
		}
		t.spacing(props, value, true)
	case strings.HasPrefix(prop, "margin-"):
		if negative {
			return
		}
		t.spacing(props, value, false)
	case strings.HasSuffix(prop, "-width") && strings.HasPrefix(prop, "border-"):
		if t.borders == nil {
			t.borders = map[string]bool{}
		}
		on := value != "0"
		for _, p := range props {
			t.borders[strings.TrimSuffix(strings.TrimPrefix(p, "border-"), "-width")] = on
		}
	case strings.HasSuffix(prop, "-color") && strings.HasPrefix(prop, "border-"):
		if c, ok := t.theme.Color(value); ok {
			t.borderColor = c
		}
	case strings.HasSuffix(prop, "-radius"):
		t.rounded = value != "none"
	}
}

// Tailwind spacing units are a quarter of a rem. Two units make one terminal
// column and four make one row.
func spacingCells(value string, horizontal bool) (int, bool) {
	if value == "px" {
		return 1, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	if horizontal {
		return int(f+1) / 2, true
	}
	return int(f) / 4, true
}

func (t *terminalStyle) spacing(props []string, value string, padding bool) {
	for _, p := range props {
		side := p[strings.LastIndexByte(p, '-')+1:]
		horizontal := side == "left" || side == "right"
		n, ok := spacingCells(value, horizontal)
		if !ok {
			continue
		}
		switch {
		case padding && side == "top":
			t.style = t.style.PaddingTop(n)
		case padding && side == "right":
			t.style = t.style.PaddingRight(n)
		case padding && side == "bottom":
			t.style = t.style.PaddingBottom(n)
		case padding && side == "left":
			t.style = t.style.PaddingLeft(n)
		case side == "top":
			t.style = t.style.MarginTop(n)
		case side == "right":
			t.style = t.style.MarginRight(n)
		case side == "bottom":
			t.style = t.style.MarginBottom(n)
		case side == "left":
			t.style = t.style.MarginLeft(n)
		}
	}
}

func (t *terminalStyle) finish() lipgloss.Style {
	top, right, bottom, left := t.borders["top"], t.borders["right"], t.borders["bottom"], t.borders["left"]
	if !top && !right && !bottom && !left {
		return t.style
	}

	border := t.theme.Borders.Normal
	if t.rounded {
		border = t.theme.Borders.Rounded
	}
	color := t.borderColor
	if color == "" {
		color = t.theme.Palette.Border
	}
	return t.style.Border(border, top, right, bottom, left).BorderForeground(color)
}

// numericWeight maps a CSS font weight to the nearest keyword.
func numericWeight(n int) string {
	switch {
	case n >= 600:
		return "semibold"
	case n <= 300:
		return "light"
	default:
		return "normal"
	}
}
