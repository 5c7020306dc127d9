package ioport

import (
	"testing"

	"github.com/stefdude/linknx/internal/element"
	"github.com/stefdude/linknx/internal/objects"
)

type fakeChangeListener struct{ calls int }

func (l *fakeChangeListener) OnChange(objects.Object) { l.calls++ }

func TestRxConditionMatchPulses(t *testing.T) {
	r := NewRegistry()
	p := &fakePort{id: "sensor"}
	r.Add(p)

	e := element.New("condition")
	e.SetAttr("ioport", "sensor")
	e.SetAttr("expected", "OK")

	l := &fakeChangeListener{}
	c, err := NewRxCondition(e, r, l)
	if err != nil {
		t.Fatal(err)
	}
	if c.Evaluate() {
		t.Error("should start false")
	}

	p.deliver([]byte("OK"))
	if c.Evaluate() {
		t.Error("pulse should have settled back to false")
	}
	if l.calls != 2 {
		t.Errorf("listener should be notified twice (true then false), got %d", l.calls)
	}
}

func TestRxConditionMismatchDoesNothing(t *testing.T) {
	r := NewRegistry()
	p := &fakePort{id: "sensor"}
	r.Add(p)

	e := element.New("condition")
	e.SetAttr("ioport", "sensor")
	e.SetAttr("expected", "OK")

	l := &fakeChangeListener{}
	c, err := NewRxCondition(e, r, l)
	if err != nil {
		t.Fatal(err)
	}

	p.deliver([]byte("XX"))
	if l.calls != 0 {
		t.Errorf("mismatched payload should not notify, got %d calls", l.calls)
	}
	if c.Evaluate() {
		t.Error("mismatched payload should not set value")
	}
}

func TestRxConditionTruncatesLongPayload(t *testing.T) {
	r := NewRegistry()
	p := &fakePort{id: "sensor"}
	r.Add(p)

	e := element.New("condition")
	e.SetAttr("ioport", "sensor")
	e.SetAttr("expected", "OK")

	l := &fakeChangeListener{}
	_, err := NewRxCondition(e, r, l)
	if err != nil {
		t.Fatal(err)
	}

	p.deliver([]byte("OK-EXTRA-BYTES"))
	if l.calls != 2 {
		t.Errorf("expected match after truncation, got %d calls", l.calls)
	}
}

func TestRxConditionClose(t *testing.T) {
	r := NewRegistry()
	p := &fakePort{id: "sensor"}
	r.Add(p)

	e := element.New("condition")
	e.SetAttr("ioport", "sensor")
	e.SetAttr("expected", "OK")

	c, err := NewRxCondition(e, r, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Close()
	if len(p.listeners) != 0 {
		t.Error("Close should deregister the listener")
	}
}
