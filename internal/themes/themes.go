// Package themes builds theme sets from configuration and from theme
// definition files, including files fetched from git repositories.
package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// Build derives a theme from its definition. The base defaults to light.
func Build(def config.ThemeDefinition) (components.Theme, error) {
	base := components.LightTheme()
	if def.Base == string(components.ModeDark) {
		base = components.DarkTheme()
	}

	theme, err := base.WithName(def.Name).WithColors(def.Colors)
	if err != nil {
		return components.Theme{}, fmt.Errorf("theme %s: %w", def.Name, err)
	}
	return theme, nil
}

// NewSet returns the built-in themes followed by defs in order. A
// definition reusing a name replaces the earlier theme.
func NewSet(defs ...config.ThemeDefinition) (*components.ThemeSet, error) {
	set := components.DefaultThemeSet()
	for _, def := range defs {
		theme, err := Build(def)
		if err != nil {
			return nil, err
		}
		set.Register(theme)
	}
	return set, nil
}

// LoadDir parses every .yaml and .yml file directly inside dir, in name
// order.
func LoadDir(dir string) ([]config.ThemeDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read theme directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	defs := make([]config.ThemeDefinition, 0, len(names))
	for _, name := range names {
		def, err := config.ParseTheme(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, *def)
	}
	return defs, nil
}
