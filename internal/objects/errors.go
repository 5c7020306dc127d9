package objects

import "errors"

// Domain errors for the object model package, following the taxonomy of
// spec.md §7 and the sentinel-error style of bridges/knx/errors.go.
var (
	// ErrParse is returned when value text does not match a variant's
	// grammar. Emitted by SetValue and by CreateObjectValue.
	ErrParse = errors.New("objects: parse error")

	// ErrUnsupportedType is returned when configuration names an unknown
	// object type.
	ErrUnsupportedType = errors.New("objects: unsupported type")

	// ErrDuplicateID is returned when a registry already holds an object
	// with the given id.
	ErrDuplicateID = errors.New("objects: duplicate id")

	// ErrNotFound is returned when a registry lookup misses.
	ErrNotFound = errors.New("objects: not found")

	// ErrDecoding is returned when OnWrite is given a payload too short
	// for the variant's wire layout.
	ErrDecoding = errors.New("objects: decoding failed")
)
