package scheduler

import (
	"strconv"

	"github.com/stefdude/linknx/internal/element"
)

// intAttrOr parses an integer attribute, returning def if absent or
// unparsable — mirrors ticpp's GetAttributeOrDefault used throughout the
// original's importXml methods.
func intAttrOr(e *element.Element, name string, def int) int {
	v := e.Attr(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func setIntAttr(e *element.Element, name string, v int) {
	e.SetAttr(name, strconv.Itoa(v))
}
