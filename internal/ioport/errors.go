package ioport

import "errors"

var (
	// ErrUnsupportedType is returned when configuration names an
	// unrecognised ioport type.
	ErrUnsupportedType = errors.New("ioport: unsupported type")

	// ErrNotFound is returned when a Registry lookup misses.
	ErrNotFound = errors.New("ioport: not found")

	// ErrDuplicateID is returned when a Registry already holds a port
	// with the given id.
	ErrDuplicateID = errors.New("ioport: duplicate id")

	// ErrClosed is returned by Send/receive operations on a Port whose
	// socket failed to open or has since been closed.
	ErrClosed = errors.New("ioport: closed")
)
