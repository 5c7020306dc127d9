package objects

// Kind identifies an object's semantic type, the tag used in the
// configuration element tree and the wire layout it decodes/encodes.
type Kind string

// Kind values, one per object type variant described in spec.md §3.
// The element-tree tag names follow the EIS aliases used by the original
// linknx configuration format (spec.md §6).
const (
	KindSwitching   Kind = "EIS1"
	KindDimming     Kind = "EIS2"
	KindTimeOfDay   Kind = "EIS3"
	KindDate        Kind = "EIS4"
	KindValue       Kind = "EIS5"
	KindScaling     Kind = "EIS6"
	KindString      Kind = "EIS15"
	KindHeatingMode Kind = "heat-mode"
)

// AllKinds returns every recognised object kind.
func AllKinds() []Kind {
	return []Kind{
		KindSwitching, KindDimming, KindTimeOfDay, KindDate,
		KindValue, KindScaling, KindString, KindHeatingMode,
	}
}

// InitPolicy controls how an object's value is seeded at start-up.
type InitPolicy string

const (
	// InitDefault leaves the object at its type's zero value.
	InitDefault InitPolicy = "default"
	// InitPersist reads the initial value from, and writes every
	// changed value to, the persistence collaborator (spec.md §6).
	InitPersist InitPolicy = "persist"
	// InitRequest requests the current value from the bus on start-up.
	InitRequest InitPolicy = "request"
)

// AllInitPolicies returns every recognised init policy.
func AllInitPolicies() []InitPolicy {
	return []InitPolicy{InitDefault, InitPersist, InitRequest}
}
