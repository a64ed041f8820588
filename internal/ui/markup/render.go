package markup

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

func writeElement(ctx context.Context, w io.Writer, e *Element) error {
	if e == nil {
		return nil
	}

	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, renderableAttrs(e.Attrs)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if _, void := voidElements[e.Tag]; void {
		return nil
	}

	for _, child := range e.Children {
		if err := child.Render(ctx, w); err != nil {
			return fmt.Errorf("render <%s>: %w", e.Tag, err)
		}
	}

	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// renderableAttrs prepares attrs for templ, which writes them in key order.
// Stringers become strings; nil values and an empty class are dropped.
func renderableAttrs(attrs templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case nil:
		case string:
			if k == "class" && val == "" {
				continue
			}
			out[k] = val
		case fmt.Stringer:
			out[k] = val.String()
		default:
			out[k] = v
		}
	}
	return out
}

// stringAttr returns v when it holds a string value and "" otherwise.
func stringAttr(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}
