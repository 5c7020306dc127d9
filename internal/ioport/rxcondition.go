package ioport

import (
	"sync"

	"github.com/stefdude/linknx/internal/element"
	"github.com/stefdude/linknx/internal/objects"
)

// RxCondition is a rule condition that watches a named port for a
// specific byte payload and pulses true, mirroring RxCondition: it
// evaluates to true only for the instant a matching datagram arrives,
// then immediately resets to false, each transition notifying the
// owning rule's change listener so the rule re-evaluates.
type RxCondition struct {
	port     Port
	expected string
	listener objects.ChangeListener

	mu    sync.Mutex
	value bool
}

// NewRxCondition resolves the `ioport` reference from reg, registers
// itself as a Listener on it, and returns a condition that pulses true
// whenever a datagram matching the `expected` attribute arrives; a
// datagram longer than expected is compared on its leading bytes only.
func NewRxCondition(e *element.Element, reg *Registry, listener objects.ChangeListener) (*RxCondition, error) {
	portID := e.Attr("ioport")
	p, err := reg.Get(portID)
	if err != nil {
		return nil, err
	}
	c := &RxCondition{port: p, expected: e.Attr("expected"), listener: listener}
	p.AddListener(c)
	return c, nil
}

// Evaluate reports the condition's current value.
func (c *RxCondition) Evaluate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// OnDataReceived implements Listener. A received datagram is truncated
// to the expected payload's length before comparison, matching
// RxCondition::onDataReceived's len = exp_m.length() clamp.
func (c *RxCondition) OnDataReceived(data []byte) {
	if len(data) > len(c.expected) {
		data = data[:len(c.expected)]
	}
	if string(data) != c.expected {
		return
	}
	c.mu.Lock()
	c.value = true
	c.mu.Unlock()
	if c.listener != nil {
		c.listener.OnChange(nil)
	}
	c.mu.Lock()
	c.value = false
	c.mu.Unlock()
	if c.listener != nil {
		c.listener.OnChange(nil)
	}
}

// Close stops watching the port.
func (c *RxCondition) Close() {
	c.port.RemoveListener(c)
}

func (c *RxCondition) ExportXML(e *element.Element) {
	e.SetAttr("type", "ioport-rx")
	if c.port != nil {
		e.SetAttr("ioport", c.port.ID())
	}
	e.SetAttr("expected", c.expected)
}
