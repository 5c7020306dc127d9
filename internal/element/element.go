// Package element defines the already-parsed configuration element tree
// that the core consumes. The core never parses XML syntax itself; it is
// handed a tree of these nodes by the configuration collaborator
// (internal/config) and every Create/importXml/exportXml boundary in
// internal/objects, internal/scheduler and internal/ioport is expressed in
// terms of it. Kept dependency-free so every domain package can import it
// without creating cycles.
package element

// Element is one node of a parsed configuration document: a tag name,
// its attributes, and its child elements in document order.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// New returns an empty element with the given tag.
func New(tag string) *Element {
	return &Element{Tag: tag, Attrs: map[string]string{}}
}

// Attr returns the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// AttrOr returns the named attribute, or def if absent or empty.
func (e *Element) AttrOr(name, def string) string {
	v := e.Attr(name)
	if v == "" {
		return def
	}
	return v
}

// SetAttr sets an attribute, creating the map if necessary.
func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = map[string]string{}
	}
	e.Attrs[name] = value
}

// AddChild appends a child element and returns it.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// ChildrenByTag returns direct children matching tag, in document order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}
