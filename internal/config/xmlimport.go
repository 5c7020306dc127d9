package config

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/stefdude/linknx/internal/element"
)

// ImportFile reads the daemon's XML configuration document — `<ioport>`,
// `<object>`, `<timer>`/`<task>`, `<exceptiondays>` elements, per spec.md
// §6 — and builds the generic element.Element tree that internal/objects,
// internal/scheduler and internal/ioport import from. It builds a full
// tree from a token stream the way etsimport.parseGenericXML walks
// arbitrary XML with encoding/xml's Decoder, rather than unmarshalling
// into fixed Go structs: the document's shape isn't known up front here
// the way it is for ETS project files.
func ImportFile(path string) (*element.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	root, err := Import(f)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return root, nil
}

// Import decodes a single root element (and its descendants) from r.
func Import(r io.Reader) (*element.Element, error) {
	dec := xml.NewDecoder(r)
	var root *element.Element
	var stack []*element.Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			e := element.New(t.Name.Local)
			for _, attr := range t.Attr {
				e.SetAttr(attr.Name.Local, attr.Value)
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AddChild(e)
			} else {
				root = e
			}
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced closing tag %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("empty configuration document")
	}
	return root, nil
}
