package ioport

import (
	"fmt"
	"sync"

	"github.com/stefdude/linknx/internal/element"
)

// Registry owns the set of configured ports, keyed by id. It replaces
// IOPortManager's process-wide singleton with an explicit
// dependency-injected collaborator, the same deviation internal/objects
// makes for Controller and internal/scheduler makes for Environment.
type Registry struct {
	mu    sync.RWMutex
	ports map[string]Port
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ports: make(map[string]Port)}
}

// Add registers a port under its own id.
func (r *Registry) Add(p Port) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ports[p.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, p.ID())
	}
	r.ports[p.ID()] = p
	return nil
}

// Get looks up a port by id.
func (r *Registry) Get(id string) (Port, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.ports[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}

// Remove closes and unregisters a port.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.ports[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(r.ports, id)
	return p.Close()
}

// ImportXML creates, replaces or deletes ports from a set of sibling
// `<ioport>` elements, following IOPortManager::importXml: a "delete"
// attribute of "true" removes an existing port (an error if it doesn't
// exist), otherwise a new port is created and registered.
func (r *Registry) ImportXML(children []*element.Element, logger Logger) error {
	for _, child := range children {
		id := child.Attr("id")
		del := child.Attr("delete") == "true"

		r.mu.RLock()
		_, exists := r.ports[id]
		r.mu.RUnlock()

		if exists {
			if del {
				if err := r.Remove(id); err != nil {
					return err
				}
				continue
			}
			// Configuration replaces an existing port wholesale: the
			// concrete Port types here aren't mutable in place the way
			// the original's virtual importXml is, so close the old one
			// and create the new one in its place.
			if err := r.Remove(id); err != nil {
				return err
			}
		} else if del {
			return fmt.Errorf("%w: %q", ErrNotFound, id)
		}

		p, err := Create(child, logger)
		if err != nil {
			return err
		}
		if err := r.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// ExportXML appends one `<ioport>` element per registered port.
func (r *Registry) ExportXML(parent *element.Element) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.ports {
		e := parent.AddChild(element.New("ioport"))
		p.ExportXML(e)
	}
}

// Close closes every registered port.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for id, p := range r.ports {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.ports, id)
	}
	return firstErr
}
