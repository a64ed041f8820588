// Package diff produces line diffs for generated output checks.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	contextLines = 3
	maxDiffLines = 10000
	truncated    = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified returns a line diff from want to got, or the empty string when
// they are equal. Unchanged runs longer than twice the context are folded.
func Unified(want, got, wantLabel, gotLabel string) string {
	if want == got {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", wantLabel, gotLabel)

	written := 0
	emit := func(prefix, line string) bool {
		if written == maxDiffLines {
			buf.WriteString(truncated + "\n")
			return false
		}
		buf.WriteString(prefix + line + "\n")
		written++
		return true
	}

	for i, d := range diffs {
		text := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range text {
				if !emit("-", line) {
					return buf.String()
				}
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range text {
				if !emit("+", line) {
					return buf.String()
				}
			}
		case diffmatchpatch.DiffEqual:
			for _, line := range fold(text, i == 0, i == len(diffs)-1) {
				if !emit(" ", line) {
					return buf.String()
				}
			}
		}
	}
	return buf.String()
}

// fold keeps the context next to changes and replaces the rest of an
// unchanged run with a marker line.
func fold(lines []string, first, last bool) []string {
	head, tail := contextLines, contextLines
	if first {
		head = 0
	}
	if last {
		tail = 0
	}
	if len(lines) <= head+tail {
		return lines
	}

	out := append([]string(nil), lines[:head]...)
	out = append(out, fmt.Sprintf("@@ %d unchanged lines @@", len(lines)-head-tail))
	return append(out, lines[len(lines)-tail:]...)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

// MarkupLines puts every HTML tag boundary on its own line so markup
// written on one line diffs element by element.
func MarkupLines(html string) string {
	return strings.ReplaceAll(html, "><", ">\n<")
}
