package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdentical(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "want", "got"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	out := Unified("line1\nline2\nline3\n", "line1\nmodified\nline3\n", "index.html", "rendered")

	assert.True(t, strings.HasPrefix(out, "--- index.html\n+++ rendered\n"))
	assert.Contains(t, out, " line1\n")
	assert.Contains(t, out, "-line2\n")
	assert.Contains(t, out, "+modified\n")
	assert.Contains(t, out, " line3\n")
}

func TestUnifiedFoldsLongUnchangedRuns(t *testing.T) {
	t.Parallel()

	var want, got strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&want, "line%d\n", i)
		if i == 10 {
			got.WriteString("changed\n")
			continue
		}
		fmt.Fprintf(&got, "line%d\n", i)
	}

	out := Unified(want.String(), got.String(), "want", "got")
	assert.Contains(t, out, "@@ 7 unchanged lines @@")
	assert.Contains(t, out, " line7\n")
	assert.NotContains(t, out, " line6\n")
	assert.Contains(t, out, "-line10\n")
	assert.Contains(t, out, "+changed\n")
	assert.Contains(t, out, " line13\n")
	assert.NotContains(t, out, " line14\n")
}

func TestUnifiedTruncates(t *testing.T) {
	t.Parallel()

	want := strings.Repeat("a\n", maxDiffLines+10)
	got := strings.Repeat("b\n", maxDiffLines+10)

	out := Unified(want, got, "want", "got")
	assert.True(t, strings.HasSuffix(out, truncated+"\n"))
}

func TestMarkupLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<div>\n<p>hi</p>\n</div>", MarkupLines("<div><p>hi</p></div>"))
}
