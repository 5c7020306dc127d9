package objects

import (
	"sync/atomic"

	"github.com/stefdude/linknx/internal/element"
)

// Value is a detached peer value used for comparison without holding a
// live Object — the Go shape of the original's ObjectValue hierarchy
// (SwitchingObjectValue, DimmingObjectValue, ...). Two Values compare
// equal iff they share a Kind and canonical text.
type Value struct {
	Kind Kind
	Text string
}

// Equal reports whether two detached values represent the same state.
func (v Value) Equal(o Value) bool {
	return v.Kind == o.Kind && v.Text == o.Text
}

// Object is the common contract every type variant implements
// (spec.md §4.1). Each variant additionally exposes typed accessors
// (e.g. GetBoolValue/SetBoolValue on the switching variant) that callers
// reach by type-asserting to the concrete type.
type Object interface {
	// ID is the stable configuration identifier.
	ID() string
	// Kind identifies the type variant.
	Kind() Kind
	// GroupAddress is the bus group address, or "" if unaddressed.
	GroupAddress() string
	// Init is the start-up value-seeding policy.
	Init() InitPolicy

	// Value returns the current value in canonical text form.
	Value() string
	// SetValue parses and normalises text, updating the value and
	// notifying listeners iff it differs from the current value.
	// Returns ErrParse (wrapped) on invalid input; the previous value
	// is left intact.
	SetValue(text string) error
	// OnWrite decodes a bus telegram payload (the full APDU/telegram
	// buffer; variant offsets are relative to its start, per spec.md
	// §4.1) and applies the same update/notify rule as SetValue.
	OnWrite(data []byte) error

	// Equals compares against a detached peer value.
	Equals(v Value) bool
	// CreateObjectValue parses text into a detached peer value without
	// mutating the receiver. Returns ErrParse on invalid input.
	CreateObjectValue(text string) (Value, error)

	// AddChangeListener registers l; RemoveChangeListener unregisters
	// it. Both are safe to call from within a listener's own OnChange.
	AddChangeListener(l ChangeListener)
	RemoveChangeListener(l ChangeListener)

	// Retain/Release implement the shared-ownership reference count
	// described in spec.md §3. No holder in this module calls them:
	// TimeSpecs, RxConditions and TxActions keep plain references
	// without touching the count. Release returns the count after
	// decrementing.
	Retain()
	Release() int32

	// ExportXML appends this object's persisted description (id, type,
	// group address, init policy) to e, mirroring exportXml/importXml
	// round-tripping through Create (spec.md §4.1).
	ExportXML(e *element.Element)
}

// base carries the state and behaviour common to every variant: identity,
// group address, init policy, reference count and the change-listener
// registry. Variants embed base and add their own typed value plus
// SetValue/OnWrite/Equals/CreateObjectValue.
type base struct {
	id       string
	gad      string
	init     InitPolicy
	refcount int32
	listeners listenerRegistry
}

func newBase(id, gad string, init InitPolicy) base {
	return base{id: id, gad: gad, init: init, refcount: 1}
}

func (b *base) ID() string            { return b.id }
func (b *base) GroupAddress() string  { return b.gad }
func (b *base) Init() InitPolicy      { return b.init }
func (b *base) AddChangeListener(l ChangeListener)    { b.listeners.add(l) }
func (b *base) RemoveChangeListener(l ChangeListener) { b.listeners.remove(l) }
func (b *base) Retain()               { atomic.AddInt32(&b.refcount, 1) }
func (b *base) Release() int32        { return atomic.AddInt32(&b.refcount, -1) }

func (b *base) exportXMLCommon(e *element.Element, kind Kind) {
	e.SetAttr("id", b.id)
	e.SetAttr("type", string(kind))
	if b.gad != "" {
		e.SetAttr("gad", b.gad)
	}
	e.SetAttr("init", string(b.init))
}
