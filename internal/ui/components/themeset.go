package components

import (
	"sort"
	"strings"
	"sync"
)

// ThemeSet is a registry of named themes.
type ThemeSet struct {
	mu     sync.RWMutex
	themes map[string]Theme
	order  []string
}

// NewThemeSet creates a set holding the given themes in order.
func NewThemeSet(themes ...Theme) *ThemeSet {
	set := &ThemeSet{themes: make(map[string]Theme)}
	for _, t := range themes {
		set.Register(t)
	}
	return set
}

// DefaultThemeSet returns a set with the built-in light and dark themes.
func DefaultThemeSet() *ThemeSet {
	return NewThemeSet(LightTheme(), DarkTheme())
}

// Register adds or replaces a theme. Replacing keeps the original position.
func (s *ThemeSet) Register(theme Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.themes[theme.Name]; !exists {
		s.order = append(s.order, theme.Name)
	}
	s.themes[theme.Name] = theme
}

// Get returns the named theme.
func (s *ThemeSet) Get(name string) (Theme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.themes[name]
	return t, ok
}

// Resolve returns the named theme, or the first registered theme (or the
// default theme for an empty set) when the name is unknown.
func (s *ThemeSet) Resolve(name string) Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.themes[name]; ok {
		return t
	}
	if len(s.order) > 0 {
		return s.themes[s.order[0]]
	}
	return DefaultTheme()
}

// Names returns theme names in registration order.
func (s *ThemeSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.order...)
}

// SortedNames returns theme names alphabetically.
func (s *ThemeSet) SortedNames() []string {
	names := s.Names()
	sort.Strings(names)
	return names
}

// Themes returns every theme in registration order.
func (s *ThemeSet) Themes() []Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Theme, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.themes[name])
	}
	return out
}

// Next returns the name following current in registration order, wrapping
// around. Unknown names yield the first theme.
func (s *ThemeSet) Next(current string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return current
	}
	for i, name := range s.order {
		if strings.EqualFold(name, current) {
			return s.order[(i+1)%len(s.order)]
		}
	}
	return s.order[0]
}
