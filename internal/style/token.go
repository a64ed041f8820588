package style

import "sort"

// Token names a style fragment that a component asks for. Inactive tokens
// are carried through resolution so callers can inspect them, but they never
// contribute classes.
type Token struct {
	Name   string
	Active bool
}

// On returns an active token.
func On(name string) Token {
	return Token{Name: name, Active: true}
}

// If returns a token that is active only when cond holds.
func If(cond bool, name string) Token {
	return Token{Name: name, Active: cond}
}

// ActiveNames lists the names of the active tokens in order.
func ActiveNames(tokens []Token) []string {
	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Active {
			names = append(names, t.Name)
		}
	}
	return names
}

// Sheet maps token names to space separated utility classes.
type Sheet map[string]string

// Classes returns the classes registered for name. A name that is not in the
// sheet is treated as a literal class list so callers can pass raw utilities
// as tokens.
func (s Sheet) Classes(name string) string {
	if classes, ok := s[name]; ok {
		return classes
	}
	return name
}

// With returns a copy of the sheet with the supplied entries replaced or
// added. The receiver is not modified.
func (s Sheet) With(entries map[string]string) Sheet {
	out := make(Sheet, len(s)+len(entries))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range entries {
		out[k] = v
	}
	return out
}

// Names returns the sheet's token names in sorted order.
func (s Sheet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
