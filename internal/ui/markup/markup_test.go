package markup

import (
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

func render(t *testing.T, n Node) string {
	t.Helper()
	out, err := String(context.Background(), n)
	require.NoError(t, err)
	return out
}

func TestElementRenderSortsAndEscapesAttributes(t *testing.T) {
	t.Parallel()

	el := El("button", templ.Attributes{
		"type":     "button",
		"disabled": true,
		"hidden":   false,
		"data-x":   `a"b`,
		"tabindex": 0,
		"class":    "",
	}, Text("Save & close"))

	require.Equal(t, `<button data-x="a&#34;b" disabled tabindex="0" type="button">Save &amp; close</button>`, render(t, el))
}

func TestVoidElementsHaveNoClosingTag(t *testing.T) {
	t.Parallel()

	require.Equal(t, `<input id="email">`, render(t, El("input", templ.Attributes{"id": "email"})))
}

func TestFragmentRawAndWrappedComponents(t *testing.T) {
	t.Parallel()

	custom := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<b>hi</b>")
		return err
	})
	frag := Fragment{Text("<"), Raw("<i>x</i>"), Wrap(custom)}
	require.Equal(t, "&lt;<i>x</i><b>hi</b>", render(t, frag))
}

func TestNativeTargetBindsRef(t *testing.T) {
	t.Parallel()

	ref := NewRef()
	el, err := Native("button").Resolve("Button", templ.Attributes{"type": "button"}, "px-4 bg-primary", ref, Text("Go"))
	require.NoError(t, err)
	require.Same(t, el, ref.Current())
	require.Equal(t, `<button class="px-4 bg-primary" type="button">Go</button>`, render(t, el))
}

func TestAsChildMergesOntoChild(t *testing.T) {
	t.Parallel()

	childRef := NewRef()
	child := El("a", templ.Attributes{
		"href":  "/docs",
		"class": "bg-accent underline",
		"type":  "link",
		"style": "color: red",
	})
	bindRefs(child, childRef)

	ref := NewRef()
	el, err := AsChild().Resolve("Button",
		templ.Attributes{"type": "button", "aria-label": "Docs", "style": "color: blue; margin: 0"},
		"inline-flex bg-primary px-4", ref, child)
	require.NoError(t, err)

	assert.Equal(t, "a", el.Tag)
	assert.Equal(t, "inline-flex px-4 bg-accent underline", el.Class())
	assert.Equal(t, "link", el.Attrs["type"], "child attribute wins")
	assert.Equal(t, "Docs", el.Attrs["aria-label"])
	assert.Equal(t, "/docs", el.Attrs["href"])
	assert.Equal(t, "color: red; margin: 0", el.Attrs["style"])

	assert.Same(t, el, ref.Current())
	assert.Same(t, el, childRef.Current())
	assert.Equal(t, "bg-accent underline", child.Class(), "child is not mutated")

	out := render(t, el)
	assert.NotContains(t, out, "<button")
}

func TestAsChildRejectsWrongChildCount(t *testing.T) {
	t.Parallel()

	cases := map[string][]Node{
		"none":     nil,
		"two":      {El("a", nil), El("span", nil)},
		"text":     {Text("plain")},
		"nil only": {nil},
	}
	for name, children := range cases {
		children := children
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			el, err := AsChild().Resolve("Button", nil, "px-4", nil, children...)
			require.Nil(t, el)

			var contractErr *uierrors.ContractError
			require.ErrorAs(t, err, &contractErr)
			require.Equal(t, "Button", contractErr.Component)
		})
	}
}

func TestTargetFor(t *testing.T) {
	t.Parallel()

	assert.True(t, TargetFor(true, "button").IsAsChild())
	assert.Equal(t, "", TargetFor(true, "button").Tag())
	assert.Equal(t, "button", TargetFor(false, "button").Tag())
}

func TestMergeInlineStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", MergeInlineStyle("", ""))
	assert.Equal(t, "color: red; margin: 0", MergeInlineStyle("color: blue; margin: 0;", "COLOR: red"))
	assert.Equal(t, "background: url(a:b)", MergeInlineStyle("background: url(a:b)", "garbage"))
}

func TestFindWalksFragments(t *testing.T) {
	t.Parallel()

	target := El("span", templ.Attributes{"id": "x"})
	root := El("div", nil, Fragment{Text("a"), El("p", nil, target)})

	found := root.Find(func(e *Element) bool { return e.Attrs["id"] == "x" })
	require.Same(t, target, found)
	require.Nil(t, root.Find(func(e *Element) bool { return e.Tag == "table" }))
}

type role string

func (r role) String() string { return "role-" + string(r) }

func TestElementRenderAttributeValueKinds(t *testing.T) {
	t.Parallel()

	label := "Close"
	el := El("div", templ.Attributes{
		"aria-label": &label,
		"data-nil":   nil,
		"data-ratio": 1.5,
		"data-role":  role("menu"),
		"class":      "p-2",
	})

	require.Equal(t, `<div aria-label="Close" class="p-2" data-ratio="1.5" data-role="role-menu"></div>`, render(t, el))
}
