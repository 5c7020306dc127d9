// Package config loads the daemon's own ambient settings (site, logging,
// persistence, MQTT, status API) from YAML, and separately imports the
// XML configuration element tree — ioports, objects, timer tasks,
// exception days (spec.md §6) — that internal/objects, internal/scheduler
// and internal/ioport consume. The two are deliberately separate
// concerns: ambient YAML settings never mix with the domain element tree.
package config
