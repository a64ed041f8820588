package markup

// Ref gives a caller a handle on the element a component finally rendered,
// whether that is the component's own tag or a merged child.
type Ref struct {
	current *Element
}

// NewRef returns an unbound ref.
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the element the ref was last bound to, or nil.
func (r *Ref) Current() *Element {
	if r == nil {
		return nil
	}
	return r.current
}

func (r *Ref) bind(e *Element) {
	if r == nil {
		return
	}
	r.current = e
}

// bindRefs attaches ref to e alongside any refs e already carries and points
// all of them at e.
func bindRefs(e *Element, ref *Ref) {
	if ref != nil {
		seen := false
		for _, existing := range e.refs {
			if existing == ref {
				seen = true
				break
			}
		}
		if !seen {
			e.refs = append(e.refs, ref)
		}
	}
	for _, r := range e.refs {
		r.bind(e)
	}
}
