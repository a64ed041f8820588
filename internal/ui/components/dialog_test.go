package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

func newTestDialog() *Dialog {
	return NewDialog().
		WithID("confirm").
		WithTitle("Delete project").
		WithDescription("This cannot be undone.").
		WithTrigger(NewButton("Delete")).
		WithBody(NewText("All files will be removed.")).
		WithFooter(OutlineButton("Cancel"), NewButton("Delete"))
}

func dialogHTML(t *testing.T, d *Dialog) string {
	t.Helper()
	n, err := d.Markup()
	require.NoError(t, err)
	return renderNode(t, n)
}

func TestDialogClosedRendersOnlyTrigger(t *testing.T) {
	t.Parallel()

	html := dialogHTML(t, newTestDialog())
	assert.NotContains(t, html, `role="dialog"`)
	assert.NotContains(t, html, "data-dialog-overlay")
	assert.Contains(t, html, `aria-expanded="false"`)
	assert.Contains(t, html, `data-state="closed"`)
	assert.Contains(t, html, `aria-haspopup="dialog"`)
	assert.Contains(t, html, `aria-controls="confirm"`)
}

func TestDialogOpenRendersContent(t *testing.T) {
	t.Parallel()

	html := dialogHTML(t, newTestDialog().WithOpen(true))
	assert.Contains(t, html, `role="dialog"`)
	assert.Contains(t, html, `aria-modal="true"`)
	assert.Contains(t, html, `aria-labelledby="confirm-title"`)
	assert.Contains(t, html, `aria-describedby="confirm-description"`)
	assert.Contains(t, html, `id="confirm-title">Delete project</h2>`)
	assert.Contains(t, html, `aria-label="Close"`)
	assert.Contains(t, html, "data-dialog-overlay")
	assert.Contains(t, html, "All files will be removed.")
	assert.Contains(t, html, `aria-expanded="true"`)
}

func TestDialogOpenThenClosedMatchesNeverOpened(t *testing.T) {
	t.Parallel()

	never := dialogHTML(t, newTestDialog())
	d := newTestDialog().WithOpen(true)
	_ = dialogHTML(t, d)
	assert.Equal(t, never, dialogHTML(t, d.WithOpen(false)))
}

func TestDialogWithoutHeaderContent(t *testing.T) {
	t.Parallel()

	d := NewDialog().WithID("bare").WithOpen(true).WithShowCloseButton(false)
	html := dialogHTML(t, d)
	assert.NotContains(t, html, "aria-labelledby")
	assert.NotContains(t, html, "data-dialog-close")
	assert.NotContains(t, html, "<h2")
}

func TestDialogSizeClass(t *testing.T) {
	t.Parallel()

	tests := map[variant.Size]string{
		variant.SizeSmall:  "max-w-sm",
		variant.SizeMedium: "max-w-lg",
		variant.SizeLarge:  "max-w-2xl",
	}
	for size, want := range tests {
		class := NewDialog().WithSize(size).ClassName(DefaultContext())
		assert.Contains(t, strings.Fields(class), want, "size %s", size)
	}
}

func TestDialogRefBindsContent(t *testing.T) {
	t.Parallel()

	ref := markup.NewRef()
	_, err := newTestDialog().WithOpen(true).WithRef(ref).Markup()
	require.NoError(t, err)
	require.NotNil(t, ref.Current())
	role, _ := ref.Current().Attr("role")
	assert.Equal(t, "dialog", role)
}

func TestDialogEscRequestsCloseWithoutMutating(t *testing.T) {
	t.Parallel()

	var requested []bool
	d := newTestDialog().WithOpen(true).WithOnOpenChange(func(open bool) {
		requested = append(requested, open)
	})

	cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenChangeMsg{ID: "confirm", Open: false}, cmd())
	assert.Equal(t, []bool{false}, requested)
	assert.True(t, d.IsOpen())
}

func TestDialogIgnoresKeysWhileClosed(t *testing.T) {
	t.Parallel()

	called := false
	d := newTestDialog().WithOnOpenChange(func(bool) { called = true })
	assert.Nil(t, d.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, called)
}

func TestDialogView(t *testing.T) {
	t.Parallel()

	closed := newTestDialog()
	assert.Contains(t, closed.View(), "Delete")
	assert.NotContains(t, closed.View(), "Delete project")
	assert.Empty(t, NewDialog().View())

	open := newTestDialog().WithOpen(true).ViewWithContext(DefaultContext().WithParentWidth(100))
	assert.Contains(t, open, "Delete project")
	assert.Contains(t, open, "Cancel")
	assert.Contains(t, open, "✕")
}
