// Package persistence implements the SQLite-backed value store consulted
// by objects with init="persist": on Attach, their current value is
// seeded from the store; on every subsequent change, the new value is
// written back (spec.md §6, "Persistence side-effect").
package persistence
