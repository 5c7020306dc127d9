package objects

import "github.com/stefdude/linknx/internal/element"

// newObjectElement returns an empty element suitable for ExportXML/Create
// round-trip tests.
func newObjectElement() *element.Element {
	return element.New("object")
}
