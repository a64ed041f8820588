// Package style turns style tokens and caller overrides into a single class
// string. Utility classes are grouped by the declarations they set; within a
// group the latest class wins, so a caller override always beats a token that
// sets the same property.
package style

import "strings"

// Compose resolves the active tokens against sheet, appends override and
// returns the merged class string. Output is deterministic for equal inputs.
func Compose(sheet Sheet, tokens []Token, override string) string {
	parts := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		if !t.Active {
			continue
		}
		parts = append(parts, sheet.Classes(t.Name))
	}
	parts = append(parts, override)
	return Merge(parts...)
}

// Merge joins class lists left to right and drops every class whose
// declarations are all set again by a later class. Exact duplicates collapse
// to their last occurrence.
func Merge(classLists ...string) string {
	var classes []string
	for _, list := range classLists {
		classes = append(classes, strings.Fields(list)...)
	}
	return strings.Join(resolve(classes), " ")
}

func resolve(classes []string) []string {
	expanded := make([][]Declaration, len(classes))
	owner := make(map[string]int)
	for i, class := range classes {
		expanded[i] = Declarations(class)
		for _, d := range expanded[i] {
			owner[d.Property] = i
		}
	}

	out := make([]string, 0, len(classes))
	for i, class := range classes {
		for _, d := range expanded[i] {
			if owner[d.Property] == i {
				out = append(out, class)
				break
			}
		}
	}
	return out
}

// Join concatenates non-empty class fragments with single spaces without
// resolving conflicts.
func Join(fragments ...string) string {
	var b strings.Builder
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f)
	}
	return b.String()
}

// When returns class if cond holds and the empty string otherwise.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
