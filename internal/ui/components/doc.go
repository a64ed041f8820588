// Package components provides the kit's themed components: Button, Input,
// Dialog, Command and Card, plus the terminal layout helpers used to
// preview them.
//
// # Rendering
//
// Every component renders two ways. As HTML, each one is a templ.Component
// whose markup is built from markup.Element trees:
//
//	btn := components.NewButton("Save").WithVariant(variant.ButtonSecondary)
//	err := btn.Render(ctx, w)
//
// In the terminal, View and ViewWithContext translate the same composed
// class string into a lipgloss style:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := btn.ViewWithContext(ctx)
//
// # Classes
//
// A component's class string is composed from variant tokens resolved
// against a style.Sheet, followed by the caller's override. Overrides are
// merged per property group, so WithClass("px-8") replaces the button's
// horizontal padding and leaves everything else alone.
//
// # Themes
//
// Themes are values passed through RenderContext. The only process-wide
// state is the document theme attribute, set with SetDocumentTheme and
// emitted by Document as <html data-theme="...">. ThemeCSS renders the
// CSS custom properties that the data-theme attribute selects between.
//
// # Controlled dialogs
//
// Dialog never changes its own open state. Requests to open or close it go
// to the OnOpenChange callback and are emitted as OpenChangeMsg; the owner
// decides and calls WithOpen.
package components
