// Package markup is the HTML backend of the kit: a small node tree whose
// nodes are templ components, plus the render target that decides whether a
// component renders its own tag or merges onto a caller-supplied child.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Node is anything that can appear in a markup tree.
type Node interface {
	templ.Component
	isNode()
}

// Element is an HTML element with attributes and children.
type Element struct {
	Tag      string
	Attrs    templ.Attributes
	Children []Node

	refs []*Ref
}

// El builds an element. A nil attrs map is replaced with an empty one.
func El(tag string, attrs templ.Attributes, children ...Node) *Element {
	if attrs == nil {
		attrs = templ.Attributes{}
	}
	return &Element{Tag: tag, Attrs: attrs, Children: compact(children)}
}

func (*Element) isNode() {}

// Render writes the element as HTML.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	return writeElement(ctx, w, e)
}

// Attr returns the named attribute.
func (e *Element) Attr(name string) (any, bool) {
	if e == nil || e.Attrs == nil {
		return nil, false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// Class returns the class attribute, or "" when unset.
func (e *Element) Class() string {
	v, _ := e.Attr("class")
	s, _ := v.(string)
	return s
}

// Refs returns the refs bound to this element.
func (e *Element) Refs() []*Ref {
	if e == nil {
		return nil
	}
	return append([]*Ref(nil), e.refs...)
}

// Clone returns a shallow copy whose attribute map, child slice and ref list
// can be modified without touching the original.
func (e *Element) Clone() *Element {
	out := &Element{
		Tag:      e.Tag,
		Attrs:    make(templ.Attributes, len(e.Attrs)),
		Children: append([]Node(nil), e.Children...),
		refs:     append([]*Ref(nil), e.refs...),
	}
	for k, v := range e.Attrs {
		out.Attrs[k] = v
	}
	return out
}

// Find returns the first element in document order, starting with e, for
// which match returns true.
func (e *Element) Find(match func(*Element) bool) *Element {
	if e == nil {
		return nil
	}
	if match(e) {
		return e
	}
	for _, child := range e.Children {
		if found := findIn(child, match); found != nil {
			return found
		}
	}
	return nil
}

func findIn(n Node, match func(*Element) bool) *Element {
	switch v := n.(type) {
	case *Element:
		return v.Find(match)
	case Fragment:
		for _, child := range v {
			if found := findIn(child, match); found != nil {
				return found
			}
		}
	}
	return nil
}

// Text is escaped character data.
type Text string

func (Text) isNode() {}

// Render writes the escaped text.
func (t Text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, templ.EscapeString(string(t)))
	return err
}

// Raw is written verbatim. It is meant for trusted content such as
// generated stylesheets.
type Raw string

func (Raw) isNode() {}

// Render writes the raw string.
func (r Raw) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}

// Fragment groups nodes without a wrapping element.
type Fragment []Node

func (Fragment) isNode() {}

// Render writes every node in order.
func (f Fragment) Render(ctx context.Context, w io.Writer) error {
	for _, n := range f {
		if err := n.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

type component struct {
	templ.Component
}

func (component) isNode() {}

// Wrap adapts any templ component, including generated ones, into a Node.
func Wrap(c templ.Component) Node {
	if n, ok := c.(Node); ok {
		return n
	}
	return component{Component: c}
}

// String renders n to a string.
func String(ctx context.Context, n Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var b strings.Builder
	if err := n.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func compact(nodes []Node) []Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if e, ok := n.(*Element); ok && e == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
