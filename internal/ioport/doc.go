// Package ioport implements raw UDP transport endpoints used by rule
// actions and rule conditions to talk to external devices that speak a
// simple datagram protocol rather than KNX group communication
// (spec.md §9): a TxAction sends a fixed byte payload out a named port,
// an RxCondition watches a named port for an expected payload.
package ioport
