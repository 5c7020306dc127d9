package objects

import (
	"fmt"
	"sync"

	"github.com/stefdude/linknx/internal/element"
)

// Controller is the process-wide object registry (spec.md §5, "Shared
// resources": the global object registry ... initialised at startup and
// torn down at shutdown"). It owns the one strong reference to each
// object; other holders (a TimeSpec, RxCondition or TxAction) keep plain
// references and do not call Retain/Release. Mirrors the caching-registry shape of
// device.Registry, minus the persistence-backed cache refresh (objects
// here are held purely in memory; internal/persistence is consulted only
// for the init="persist" seeding/write-through described in spec.md §6).
type Controller struct {
	mu      sync.RWMutex
	objects map[string]Object
}

// NewController returns an empty Controller.
func NewController() *Controller {
	return &Controller{objects: make(map[string]Object)}
}

// Get looks up an object by id.
func (c *Controller) Get(id string) (Object, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	obj, ok := c.objects[id]
	if !ok {
		return nil, fmt.Errorf("%w: object %q", ErrNotFound, id)
	}
	return obj, nil
}

// Add registers obj under its own id. Returns ErrDuplicateID if the id
// is already taken.
func (c *Controller) Add(obj Object) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.objects[obj.ID()]; exists {
		return fmt.Errorf("%w: object %q", ErrDuplicateID, obj.ID())
	}
	c.objects[obj.ID()] = obj
	return nil
}

// Remove drops an object from the registry. Returns ErrNotFound if absent.
func (c *Controller) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.objects[id]; !exists {
		return fmt.Errorf("%w: object %q", ErrNotFound, id)
	}
	delete(c.objects, id)
	return nil
}

// ImportXML creates or updates objects from a tree of `<object>` elements
// under pConfig, mirroring ObjectController::importXml's delete="true"
// semantics: a matching id with delete="true" removes the object instead
// of re-creating it.
func (c *Controller) ImportXML(pConfig *element.Element) error {
	for _, child := range pConfig.ChildrenByTag("object") {
		id := child.Attr("id")
		del := child.Attr("delete") == "true"

		c.mu.Lock()
		_, exists := c.objects[id]
		c.mu.Unlock()

		switch {
		case exists && del:
			if err := c.Remove(id); err != nil {
				return err
			}
		case exists && !del:
			// Re-importing an existing id replaces its configuration but,
			// unlike the original's in-place mutation, this Go port treats
			// re-import as create-and-replace: any listener already bound
			// to the old instance must re-resolve through the Controller.
			obj, err := Create(child)
			if err != nil {
				return err
			}
			c.mu.Lock()
			c.objects[id] = obj
			c.mu.Unlock()
		case del:
			return fmt.Errorf("%w: object %q", ErrNotFound, id)
		default:
			obj, err := Create(child)
			if err != nil {
				return err
			}
			if err := c.Add(obj); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportXML appends one `<object>` element per registered object to pConfig.
func (c *Controller) ExportXML(pConfig *element.Element) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, obj := range c.objects {
		e := element.New("object")
		obj.ExportXML(e)
		pConfig.AddChild(e)
	}
}

// All returns a snapshot slice of every registered object.
func (c *Controller) All() []Object {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Object, 0, len(c.objects))
	for _, obj := range c.objects {
		out = append(out, obj)
	}
	return out
}
