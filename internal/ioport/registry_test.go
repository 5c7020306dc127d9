package ioport

import (
	"testing"

	"github.com/stefdude/linknx/internal/element"
)

type fakePort struct {
	id        string
	sent      [][]byte
	listeners []Listener
	closed    bool
}

func (p *fakePort) ID() string { return p.id }

func (p *fakePort) Send(data []byte) error {
	p.sent = append(p.sent, append([]byte(nil), data...))
	return nil
}

func (p *fakePort) AddListener(l Listener) { p.listeners = append(p.listeners, l) }

func (p *fakePort) RemoveListener(l Listener) bool {
	for i, x := range p.listeners {
		if x == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (p *fakePort) Close() error { p.closed = true; return nil }

func (p *fakePort) ExportXML(e *element.Element) { e.SetAttr("id", p.id) }

func (p *fakePort) deliver(data []byte) {
	for _, l := range p.listeners {
		l.OnDataReceived(data)
	}
}

func TestRegistryAddGetRemove(t *testing.T) {
	r := NewRegistry()
	p := &fakePort{id: "gate"}
	if err := r.Add(p); err != nil {
		t.Fatal(err)
	}
	got, err := r.Get("gate")
	if err != nil || got != Port(p) {
		t.Fatalf("Get() = %v, %v; want %v, nil", got, err, p)
	}
	if err := r.Remove("gate"); err != nil {
		t.Fatal(err)
	}
	if !p.closed {
		t.Error("Remove should close the port")
	}
	if _, err := r.Get("gate"); err == nil {
		t.Error("expected error after removal")
	}
}

func TestRegistryAddDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(&fakePort{id: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(&fakePort{id: "a"}); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestRegistryExportXML(t *testing.T) {
	r := NewRegistry()
	r.Add(&fakePort{id: "a"})
	r.Add(&fakePort{id: "b"})
	parent := element.New("config")
	r.ExportXML(parent)
	if len(parent.Children) != 2 {
		t.Fatalf("got %d ioport children, want 2", len(parent.Children))
	}
}
