package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeColor(t *testing.T) {
	t.Parallel()

	light := LightTheme()
	dark := DarkTheme()

	tests := []struct {
		name  string
		theme Theme
		color string
		want  lipgloss.Color
		ok    bool
	}{
		{"brand", light, "primary", "#FFAA00", true},
		{"brand ignores opacity", light, "primary/90", "#FFAA00", true},
		{"brand is static", dark, "accent", "#e4002b", true},
		{"arbitrary hex", light, "[#123456]", "#123456", true},
		{"palette light", light, "border", "#e2e8f0", true},
		{"palette dark", dark, "border", "#1e293b", true},
		{"shade", light, "red-500", "#ef4444", true},
		{"shade 50", light, "blue-50", "#eff6ff", true},
		{"gray alias", light, "gray-900", "#0f172a", true},
		{"black", light, "black", "#000000", true},
		{"transparent", light, "transparent", "", false},
		{"unknown family", light, "teal-500", "", false},
		{"bad shade", light, "red-550", "", false},
		{"unknown", light, "nope", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.theme.Color(tt.color)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeWithColors(t *testing.T) {
	t.Parallel()

	base := LightTheme()
	custom, err := base.WithColors(map[string]string{"border": "#ff0000", "ring": "#00ff00"})
	require.NoError(t, err)

	assert.Equal(t, lipgloss.Color("#ff0000"), custom.Palette.Border)
	assert.Equal(t, lipgloss.Color("#00ff00"), custom.Palette.Ring)
	assert.Equal(t, lipgloss.Color("#e2e8f0"), base.Palette.Border)

	_, err = base.WithColors(map[string]string{"primary": "#000000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"primary"`)
}

func TestThemeCSSVariables(t *testing.T) {
	t.Parallel()

	vars := DarkTheme().CSSVariables()
	require.Len(t, vars, len(ColorTokenNames()))
	assert.Equal(t, CSSVariable{Name: "--bg", Value: "#0b1120"}, vars[0])
	assert.Equal(t, "--brand-primary", LightTheme().BrandVariables()[0].Name)
}

func TestThemeOnColor(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	assert.Equal(t, lipgloss.Color("#000000"), theme.OnColor("#ffaa00"))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), theme.OnColor("#0032A0"))
	assert.Equal(t, theme.Palette.Foreground, theme.OnColor("#123456"))
}

func TestThemeSet(t *testing.T) {
	t.Parallel()

	set := DefaultThemeSet()
	assert.Equal(t, []string{"light", "dark"}, set.Names())
	assert.Equal(t, "dark", set.Next("light"))
	assert.Equal(t, "light", set.Next("dark"))
	assert.Equal(t, "light", set.Next("missing"))
	assert.Equal(t, ModeLight, set.Resolve("missing").Mode)

	ocean, err := DarkTheme().WithName("ocean").WithColors(map[string]string{"background": "#001f3f"})
	require.NoError(t, err)
	set.Register(ocean)
	set.Register(LightTheme().WithName("dark"))

	assert.Equal(t, []string{"light", "dark", "ocean"}, set.Names())
	assert.Equal(t, []string{"dark", "light", "ocean"}, set.SortedNames())
	assert.Equal(t, ModeLight, set.Resolve("dark").Mode)
	assert.Equal(t, "light", set.Next("ocean"))

	got, ok := set.Get("ocean")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#001f3f"), got.Palette.Background)
}

func TestThemeCSS(t *testing.T) {
	t.Parallel()

	css := ThemeCSS(DefaultThemeSet())
	assert.Contains(t, css, `:root, :root[data-theme="light"] { --bg: #ffffff;`)
	assert.Contains(t, css, `:root[data-theme="dark"] { --bg: #0b1120;`)
	assert.Contains(t, css, "--brand-primary: #FFAA00;")
}
