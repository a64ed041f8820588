package markup

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

type targetKind int

const (
	nativeTarget targetKind = iota
	childTarget
)

// Target selects how a component renders: as its own native tag, or merged
// onto the single child element the caller supplies.
type Target struct {
	kind targetKind
	tag  string
}

// Native renders the component as tag.
func Native(tag string) Target {
	return Target{kind: nativeTarget, tag: tag}
}

// AsChild merges the component onto its only child element.
func AsChild() Target {
	return Target{kind: childTarget}
}

// TargetFor returns AsChild when asChild is set and Native(tag) otherwise.
func TargetFor(asChild bool, tag string) Target {
	if asChild {
		return AsChild()
	}
	return Native(tag)
}

// IsAsChild reports whether the target merges onto a child.
func (t Target) IsAsChild() bool {
	return t.kind == childTarget
}

// Tag returns the native tag, or "" for an as-child target.
func (t Target) Tag() string {
	if t.kind == childTarget {
		return ""
	}
	return t.tag
}

// Resolve produces the element for a component.
//
// For a native target the element is tag with props, class and children.
// For an as-child target children must hold exactly one *Element; that
// element is cloned and props are merged under its own attributes, its class
// is merged after class through the style composer, and inline styles are
// merged per property with the child winning. ref is bound to the result in
// both cases.
func (t Target) Resolve(component string, props templ.Attributes, class string, ref *Ref, children ...Node) (*Element, error) {
	if t.kind == childTarget {
		return mergeOntoChild(component, props, class, ref, children)
	}

	attrs := copyAttrs(props)
	if class != "" {
		attrs["class"] = class
	}
	el := El(t.tag, attrs, children...)
	bindRefs(el, ref)
	return el, nil
}

func mergeOntoChild(component string, props templ.Attributes, class string, ref *Ref, children []Node) (*Element, error) {
	children = compact(children)
	if len(children) != 1 {
		return nil, uierrors.NewContractError(component,
			fmt.Sprintf("asChild expects exactly one child element, got %d", len(children)))
	}
	child, ok := children[0].(*Element)
	if !ok {
		return nil, uierrors.NewContractError(component,
			fmt.Sprintf("asChild expects an element child, got %T", children[0]))
	}

	merged := child.Clone()
	attrs := copyAttrs(props)
	for k, v := range child.Attrs {
		switch k {
		case "class", "style":
		default:
			attrs[k] = v
		}
	}

	if s := MergeInlineStyle(stringAttr(props["style"]), stringAttr(child.Attrs["style"])); s != "" {
		attrs["style"] = s
	}

	if c := style.Merge(class, child.Class()); c != "" {
		attrs["class"] = c
	} else {
		delete(attrs, "class")
	}

	merged.Attrs = attrs
	bindRefs(merged, ref)
	return merged, nil
}

func copyAttrs(in templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

// MergeInlineStyle merges two inline style declarations. Properties in over
// replace the same properties in base; order follows first appearance.
func MergeInlineStyle(base, over string) string {
	var order []string
	values := map[string]string{}
	for _, src := range []string{base, over} {
		for _, decl := range strings.Split(src, ";") {
			prop, value, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			prop = strings.ToLower(strings.TrimSpace(prop))
			value = strings.TrimSpace(value)
			if prop == "" {
				continue
			}
			if _, seen := values[prop]; !seen {
				order = append(order, prop)
			}
			values[prop] = value
		}
	}

	parts := make([]string, 0, len(order))
	for _, prop := range order {
		parts = append(parts, prop+": "+values[prop])
	}
	return strings.Join(parts, "; ")
}
