package page

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

func render(t *testing.T, part components.Part) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, part.Render(context.Background(), &b))
	return b.String()
}

func TestBuildButton(t *testing.T) {
	t.Parallel()

	part, err := NewBuilder(nil).Build(config.ComponentSpec{
		Kind:    config.KindButton,
		ID:      "save",
		Label:   "Save",
		Variant: "secondary",
		Size:    "lg",
		Class:   "px-2",
	})
	require.NoError(t, err)

	out := render(t, part)
	assert.True(t, strings.HasPrefix(out, "<button"))
	assert.Contains(t, out, `id="save"`)
	assert.Contains(t, out, "bg-secondary")
	assert.Contains(t, out, "h-12")
	assert.NotContains(t, out, "px-8")
	assert.Contains(t, out, "px-2")
	assert.Contains(t, out, ">Save</button>")
}

func TestBuildButtonWithHrefRendersAnchor(t *testing.T) {
	t.Parallel()

	part, err := NewBuilder(nil).Build(config.ComponentSpec{
		Kind:  config.KindButton,
		Label: "Docs",
		Href:  "/docs",
	})
	require.NoError(t, err)

	out := render(t, part)
	assert.True(t, strings.HasPrefix(out, "<a "))
	assert.Contains(t, out, `href="/docs"`)
	assert.Contains(t, out, "bg-primary")
	assert.Contains(t, out, ">Docs</a>")
	assert.NotContains(t, out, "<button")
}

func TestBuildUsesSheet(t *testing.T) {
	t.Parallel()

	sheet := variant.DefaultSheet().With(map[string]string{"button.default": "bg-accent text-white"})
	part, err := NewBuilder(sheet).Build(config.ComponentSpec{Kind: config.KindButton, Label: "Go"})
	require.NoError(t, err)

	out := render(t, part)
	assert.Contains(t, out, "bg-accent")
	assert.NotContains(t, out, "bg-primary")
}

func TestBuildInput(t *testing.T) {
	t.Parallel()

	part, err := NewBuilder(nil).Build(config.ComponentSpec{
		Kind:         config.KindInput,
		ID:           "email",
		Name:         "email",
		Type:         "email",
		Label:        "Email",
		Error:        true,
		ErrorMessage: "Required",
	})
	require.NoError(t, err)

	out := render(t, part)
	assert.Contains(t, out, `for="email"`)
	assert.Contains(t, out, `type="email"`)
	assert.Contains(t, out, `aria-invalid="true"`)
	assert.Contains(t, out, "Required")
}

func TestBuildDialog(t *testing.T) {
	t.Parallel()

	noClose := false
	part, err := NewBuilder(nil).Build(config.ComponentSpec{
		Kind:      config.KindDialog,
		ID:        "publish",
		Title:     "Publish?",
		Open:      true,
		ShowClose: &noClose,
		Trigger:   "Publish",
		Body:      "Everyone will see it.",
		Footer: []config.ComponentSpec{
			{Kind: config.KindButton, Label: "Cancel", Variant: "outline"},
			{Kind: config.KindButton, Label: "Confirm"},
		},
	})
	require.NoError(t, err)

	out := render(t, part)
	assert.Contains(t, out, `role="dialog"`)
	assert.Contains(t, out, "Publish?")
	assert.Contains(t, out, "Everyone will see it.")
	assert.Contains(t, out, ">Cancel</button>")
	assert.Contains(t, out, ">Confirm</button>")
	assert.NotContains(t, out, `aria-label="Close"`)
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	part, err := NewBuilder(nil).Build(config.ComponentSpec{
		Kind:  config.KindCommand,
		ID:    "cmd",
		Empty: "Nothing here",
		Groups: []config.CommandGroupSpec{{
			Heading: "Actions",
			Items: []config.CommandItemSpec{
				{Label: "Copy", Shortcut: "⌘C"},
				{Label: "Paste", Value: "paste", Disabled: true},
			},
		}},
	})
	require.NoError(t, err)

	out := render(t, part)
	assert.Contains(t, out, "cmdk-root")
	assert.Contains(t, out, "Actions")
	assert.Contains(t, out, `id="cmd-item-0"`)
	assert.Contains(t, out, `data-value="paste"`)
}

func TestBuildUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(nil).Build(config.ComponentSpec{Kind: "slider"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"slider"`)
}

func TestDocument(t *testing.T) {
	t.Parallel()

	p := &config.Page{
		Title: "Demo",
		Theme: "dark",
		Components: []config.ComponentSpec{
			{Kind: config.KindButton, Label: "One"},
			{Kind: config.KindInput, ID: "name", Label: "Name"},
		},
	}

	doc, err := NewBuilder(nil).Document(p, components.DefaultThemeSet())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, doc.Render(context.Background(), &b))
	out := b.String()

	assert.Contains(t, out, `data-theme="dark"`)
	assert.Contains(t, out, "<title>Demo</title>")
	assert.Contains(t, out, "<main")
	assert.Less(t, strings.Index(out, ">One</button>"), strings.Index(out, `for="name"`))
}

func TestDocumentReportsComponentIndex(t *testing.T) {
	t.Parallel()

	p := &config.Page{
		Title:      "Broken",
		Components: []config.ComponentSpec{{Kind: config.KindButton, Label: "Ok"}, {Kind: "nope"}},
	}
	_, err := NewBuilder(nil).Document(p, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "components[1]")
}

var idAttr = regexp.MustCompile(`\sid="([^"]+)"`)

func TestDocumentIDsAreUnique(t *testing.T) {
	t.Parallel()

	field := config.ComponentSpec{Kind: config.KindInput, Label: "Email", Error: true, ErrorMessage: "bad"}
	modal := config.ComponentSpec{
		Kind:    config.KindDialog,
		Title:   "Confirm",
		Trigger: "Open",
		Open:    true,
		Footer:  []config.ComponentSpec{{Kind: config.KindButton, Label: "Ok"}},
	}
	palette := config.ComponentSpec{
		Kind:   config.KindCommand,
		Groups: []config.CommandGroupSpec{{Items: []config.CommandItemSpec{{Label: "Copy"}}}},
	}
	p := &config.Page{
		Title: "Twins",
		Components: []config.ComponentSpec{
			field, field, modal, modal, palette, palette,
			{Kind: config.KindInput, ID: "input-1", Label: "Named"},
		},
	}

	builder := NewBuilder(nil)
	doc, err := builder.Document(p, components.DefaultThemeSet())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, doc.Render(context.Background(), &b))
	out := b.String()

	seen := map[string]int{}
	for _, m := range idAttr.FindAllStringSubmatch(out, -1) {
		seen[m[1]]++
	}
	require.NotEmpty(t, seen)
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %q rendered %d times", id, n)
	}

	assert.Contains(t, out, `for="input-1"`)
	assert.Contains(t, out, `for="input-2"`)
	assert.Contains(t, out, `for="input-3"`)
	assert.Contains(t, out, `aria-describedby="input-2-error"`)
	assert.Contains(t, out, `id="dialog-1"`)
	assert.Contains(t, out, `id="dialog-2"`)
	assert.Contains(t, out, `id="command-1-list"`)
	assert.Contains(t, out, `id="command-2-list"`)

	again, err := builder.Document(p, components.DefaultThemeSet())
	require.NoError(t, err)
	var second strings.Builder
	require.NoError(t, again.Render(context.Background(), &second))
	assert.Equal(t, out, second.String())
}
