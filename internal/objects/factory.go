package objects

import (
	"fmt"

	"github.com/stefdude/linknx/internal/element"
)

// Create builds an Object variant from a configuration element of the
// form `<object id="…" type="…" gad="…" init="default|persist|request" />`
// (spec.md §6), dispatching on the type tag the way the original's
// Object::create factory dispatches on a type string. An unrecognised
// type returns ErrUnsupportedType.
func Create(e *element.Element) (Object, error) {
	id := e.Attr("id")
	gad := e.Attr("gad")
	init := InitPolicy(e.AttrOr("init", string(InitDefault)))

	switch Kind(e.Attr("type")) {
	case KindSwitching:
		return NewSwitching(id, gad, init), nil
	case KindDimming:
		return NewDimming(id, gad, init), nil
	case KindTimeOfDay:
		return NewTimeOfDay(id, gad, init), nil
	case KindDate:
		return NewDate(id, gad, init), nil
	case KindValue:
		return NewFloatValue(id, gad, init), nil
	case KindScaling:
		return NewScaling(id, gad, init), nil
	case KindString:
		return NewStringValue(id, gad, init), nil
	case KindHeatingMode:
		return NewHeatingMode(id, gad, init), nil
	default:
		return nil, fmt.Errorf("%w: object type %q", ErrUnsupportedType, e.Attr("type"))
	}
}
