package statusapi

import (
	"github.com/stefdude/linknx/internal/element"
	"github.com/stefdude/linknx/internal/objects"
)

func toObjectView(o objects.Object) objectView {
	return objectView{
		ID:           o.ID(),
		Kind:         string(o.Kind()),
		GroupAddress: o.GroupAddress(),
		Init:         string(o.Init()),
		Value:        o.Value(),
	}
}

// elementNode is the JSON projection of an element.Element, used for the
// schedule/port trees which have no fixed shape worth a dedicated struct.
type elementNode struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []elementNode     `json:"children,omitempty"`
}

func elementToJSON(e *element.Element) elementNode {
	n := elementNode{Tag: e.Tag, Attrs: e.Attrs}
	for _, c := range e.Children {
		n.Children = append(n.Children, elementToJSON(c))
	}
	return n
}
