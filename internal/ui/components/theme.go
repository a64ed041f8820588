package components

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades represents a Tailwind-style color scale with 10 shades from lightest to darkest.
// Shades are indexed from 50 (lightest) to 900 (darkest), matching Tailwind's numbering.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a palette shade scale from the provided colors.
// Colors should be ordered from lightest to darkest. Accepts up to 10 colors.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the color at the specified shade level.
// Returns an empty string if the shade is out of bounds.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette holds the fixed colour families that utilities such as
// "bg-red-500" refer to.
type ColorPalette struct {
	Slate  PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
	Purple PaletteShades
	Cyan   PaletteShades
}

func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteSlate:
		return cp.Slate
	case PaletteBlue:
		return cp.Blue
	case PaletteGreen:
		return cp.Green
	case PaletteRed:
		return cp.Red
	case PaletteYellow:
		return cp.Yellow
	case PalettePurple:
		return cp.Purple
	case PaletteCyan:
		return cp.Cyan
	default:
		return cp.Slate
	}
}

type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteYellow
	PalettePurple
	PaletteCyan
)

var familyNames = map[string]PaletteFamily{
	"slate":  PaletteSlate,
	"gray":   PaletteSlate,
	"blue":   PaletteBlue,
	"green":  PaletteGreen,
	"red":    PaletteRed,
	"yellow": PaletteYellow,
	"purple": PalettePurple,
	"cyan":   PaletteCyan,
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// shadeFromNumber maps Tailwind's numbering (50, 100, ..., 900) to a shade.
func shadeFromNumber(n int) (PaletteShade, bool) {
	if n == 50 {
		return PaletteShade50, true
	}
	if n < 100 || n > 900 || n%100 != 0 {
		return 0, false
	}
	return PaletteShade(n / 100), true
}

// Mode is the brightness of a theme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Palette holds the theme-aware colour tokens. Each one is published to
// documents as a CSS custom property.
type Palette struct {
	Background          lipgloss.Color
	Surface             lipgloss.Color
	Foreground          lipgloss.Color
	ForegroundSecondary lipgloss.Color
	ForegroundMuted     lipgloss.Color
	Border              lipgloss.Color
	Ring                lipgloss.Color
}

// ColourSet pairs a colour with the text colour that reads well on top of it.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
}

// BrandColours are the static brand colours shared by every theme.
type BrandColours struct {
	Primary   ColourSet
	Secondary ColourSet
	Accent    ColourSet
	Success   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// Theme is an immutable set of colours. Modification helpers return copies.
type Theme struct {
	Name    string
	Mode    Mode
	Palette Palette
	Brand   BrandColours
	Colors  ColorPalette
	Borders BorderSet
}

type colorToken struct {
	name     string
	variable string
	slot     func(*Palette) *lipgloss.Color
}

var colorTokens = []colorToken{
	{"background", "--bg", func(p *Palette) *lipgloss.Color { return &p.Background }},
	{"surface", "--surface", func(p *Palette) *lipgloss.Color { return &p.Surface }},
	{"foreground", "--text-primary", func(p *Palette) *lipgloss.Color { return &p.Foreground }},
	{"foreground-secondary", "--text-secondary", func(p *Palette) *lipgloss.Color { return &p.ForegroundSecondary }},
	{"foreground-muted", "--text-muted", func(p *Palette) *lipgloss.Color { return &p.ForegroundMuted }},
	{"border", "--border-color", func(p *Palette) *lipgloss.Color { return &p.Border }},
	{"ring", "--ring", func(p *Palette) *lipgloss.Color { return &p.Ring }},
}

// ColorTokenNames lists the theme-aware colour tokens in declaration order.
func ColorTokenNames() []string {
	names := make([]string, 0, len(colorTokens))
	for _, t := range colorTokens {
		names = append(names, t.name)
	}
	return names
}

func defaultBrand() BrandColours {
	return BrandColours{
		Primary:   ColourSet{Base: "#FFAA00", OnBase: "#000000"},
		Secondary: ColourSet{Base: "#0032A0", OnBase: "#FFFFFF"},
		Accent:    ColourSet{Base: "#e4002b", OnBase: "#FFFFFF"},
		Success:   ColourSet{Base: "#00843D", OnBase: "#FFFFFF"},
	}
}

func defaultColors() ColorPalette {
	return ColorPalette{
		Slate: NewPaletteShades(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Blue: NewPaletteShades(
			"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
			"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
		),
		Green: NewPaletteShades(
			"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
			"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
		),
		Red: NewPaletteShades(
			"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
			"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
		),
		Yellow: NewPaletteShades(
			"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
			"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
		),
		Purple: NewPaletteShades(
			"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc",
			"#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87",
		),
		Cyan: NewPaletteShades(
			"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee",
			"#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63",
		),
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return Theme{
		Name: string(ModeLight),
		Mode: ModeLight,
		Palette: Palette{
			Background:          "#ffffff",
			Surface:             "#f8fafc",
			Foreground:          "#0f172a",
			ForegroundSecondary: "#334155",
			ForegroundMuted:     "#64748b",
			Border:              "#e2e8f0",
			Ring:                "#FFAA00",
		},
		Brand:   defaultBrand(),
		Colors:  defaultColors(),
		Borders: defaultBorders(),
	}
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	theme := LightTheme()
	theme.Name = string(ModeDark)
	theme.Mode = ModeDark
	theme.Palette = Palette{
		Background:          "#0b1120",
		Surface:             "#111827",
		Foreground:          "#f8fafc",
		ForegroundSecondary: "#cbd5e1",
		ForegroundMuted:     "#94a3b8",
		Border:              "#1e293b",
		Ring:                "#FFAA00",
	}
	return theme
}

// DefaultTheme returns the theme used when nothing else is selected.
func DefaultTheme() Theme {
	return LightTheme()
}

// WithName returns a copy of the theme with a different name.
func (t Theme) WithName(name string) Theme {
	t.Name = name
	return t
}

// WithColors returns a copy of the theme with the named colour tokens
// replaced. Unknown token names are rejected.
func (t Theme) WithColors(colors map[string]string) (Theme, error) {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slot := paletteSlot(&t.Palette, name)
		if slot == nil {
			return t, fmt.Errorf("unknown colour token %q", name)
		}
		*slot = lipgloss.Color(colors[name])
	}
	return t, nil
}

func paletteSlot(p *Palette, name string) *lipgloss.Color {
	for _, token := range colorTokens {
		if token.name == name {
			return token.slot(p)
		}
	}
	return nil
}

// Color resolves a utility colour name such as "primary", "foreground-muted",
// "red-500" or "[#ff0000]". An opacity suffix ("/90") is ignored. ok is false
// for "transparent", "current" and names the theme does not know.
func (t Theme) Color(name string) (lipgloss.Color, bool) {
	if i := strings.IndexByte(name, '/'); i >= 0 && !strings.HasPrefix(name, "[") {
		name = name[:i]
	}

	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		inner := name[1 : len(name)-1]
		if strings.HasPrefix(inner, "#") {
			return lipgloss.Color(inner), true
		}
		return "", false
	}

	switch name {
	case "black":
		return "#000000", true
	case "white":
		return "#ffffff", true
	case "primary":
		return t.Brand.Primary.Base, true
	case "secondary":
		return t.Brand.Secondary.Base, true
	case "accent":
		return t.Brand.Accent.Base, true
	case "success":
		return t.Brand.Success.Base, true
	}

	palette := t.Palette
	if slot := paletteSlot(&palette, name); slot != nil {
		return *slot, *slot != ""
	}

	family, number, found := strings.Cut(name, "-")
	if !found {
		return "", false
	}
	f, ok := familyNames[family]
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return "", false
	}
	shade, ok := shadeFromNumber(n)
	if !ok {
		return "", false
	}
	c := t.Colors.Shades(f).Color(shade)
	return c, c != ""
}

// CSSVariable is one custom property published by a theme.
type CSSVariable struct {
	Name  string
	Value string
}

// CSSVariables returns the theme's custom properties in a stable order.
func (t Theme) CSSVariables() []CSSVariable {
	palette := t.Palette
	vars := make([]CSSVariable, 0, len(colorTokens))
	for _, token := range colorTokens {
		vars = append(vars, CSSVariable{Name: token.variable, Value: string(*token.slot(&palette))})
	}
	return vars
}

// BrandVariables returns the static brand colours as custom properties.
func (t Theme) BrandVariables() []CSSVariable {
	return []CSSVariable{
		{Name: "--brand-primary", Value: string(t.Brand.Primary.Base)},
		{Name: "--brand-secondary", Value: string(t.Brand.Secondary.Base)},
		{Name: "--brand-accent", Value: string(t.Brand.Accent.Base)},
		{Name: "--brand-success", Value: string(t.Brand.Success.Base)},
	}
}

// OnColor returns the text colour that reads well on c, preferring the
// brand pairings and falling back to the theme foreground.
func (t Theme) OnColor(c lipgloss.Color) lipgloss.Color {
	for _, set := range []ColourSet{t.Brand.Primary, t.Brand.Secondary, t.Brand.Accent, t.Brand.Success} {
		if strings.EqualFold(string(set.Base), string(c)) {
			return set.OnBase
		}
	}
	return t.Palette.Foreground
}
