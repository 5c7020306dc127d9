// Package statusapi exposes a read-only HTTP view of the running daemon:
// object values, queued schedule tasks and I/O port state, for external
// monitoring UIs. It carries no command/write endpoints — mutating the
// daemon happens only through the bus and the configuration file (the
// original system's REST device/scene/auth surface is out of scope,
// spec.md §1).
package statusapi
