package components

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/uikit/internal/ui/markup"
)

// DefaultThemeName is the document theme before anything sets one.
const DefaultThemeName = "light"

// documentTheme is the only process-wide state in the kit: the theme
// attribute of the root document. The most recent write wins.
var documentTheme = struct {
	mu   sync.RWMutex
	name string
}{name: DefaultThemeName}

// SetDocumentTheme sets the root document's theme attribute.
func SetDocumentTheme(name string) {
	documentTheme.mu.Lock()
	defer documentTheme.mu.Unlock()
	documentTheme.name = name
}

// DocumentTheme returns the root document's theme attribute.
func DocumentTheme() string {
	documentTheme.mu.RLock()
	defer documentTheme.mu.RUnlock()
	return documentTheme.name
}

// ToggleDocumentTheme advances the document theme to the next theme in set
// and returns the new name.
func ToggleDocumentTheme(set *ThemeSet) string {
	next := set.Next(DocumentTheme())
	SetDocumentTheme(next)
	return next
}

// ContextForDocument returns a render context using the document's theme.
func ContextForDocument(set *ThemeSet) RenderContext {
	return DefaultContext().WithTheme(set.Resolve(DocumentTheme()))
}

// ThemeCSS renders one custom-property block per theme, keyed on the
// data-theme attribute. The first theme also applies to a bare :root.
func ThemeCSS(set *ThemeSet) string {
	var b strings.Builder
	for i, theme := range set.Themes() {
		selectors := `:root[data-theme="` + theme.Name + `"]`
		if i == 0 {
			selectors = ":root, " + selectors
		}
		b.WriteString(selectors)
		b.WriteString(" {")
		vars := theme.CSSVariables()
		if i == 0 {
			vars = append(vars, theme.BrandVariables()...)
		}
		for _, v := range vars {
			b.WriteString(" ")
			b.WriteString(v.Name)
			b.WriteString(": ")
			b.WriteString(v.Value)
			b.WriteString(";")
		}
		b.WriteString(" }\n")
	}
	return b.String()
}

// Document is a full HTML page. Its root element carries the data-theme
// attribute and its head carries the stylesheet for every theme in Themes.
type Document struct {
	Title     string
	Lang      string
	Theme     string
	Themes    *ThemeSet
	BodyClass string
	Body      []templ.Component
}

// Render writes the document. An empty Theme uses the document theme.
func (d Document) Render(ctx context.Context, w io.Writer) error {
	set := d.Themes
	if set == nil {
		set = DefaultThemeSet()
	}
	theme := d.Theme
	if theme == "" {
		theme = DocumentTheme()
	}
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}
	bodyClass := d.BodyClass
	if bodyClass == "" {
		bodyClass = "bg-background text-foreground font-nunito"
	}

	body := make([]markup.Node, 0, len(d.Body))
	for _, c := range d.Body {
		if c != nil {
			body = append(body, markup.Wrap(c))
		}
	}

	page := markup.El("html", templ.Attributes{"lang": lang, "data-theme": theme},
		markup.El("head", nil,
			markup.El("meta", templ.Attributes{"charset": "utf-8"}),
			markup.El("meta", templ.Attributes{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
			markup.El("title", nil, markup.Text(d.Title)),
			markup.El("style", nil, markup.Raw(ThemeCSS(set))),
		),
		markup.El("body", templ.Attributes{"class": bodyClass}, body...),
	)

	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	return page.Render(ctx, w)
}
