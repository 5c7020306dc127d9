// Package mqttsink republishes object value changes to an MQTT broker, one
// retained message per object under a configurable topic prefix, mirroring
// the spec's "status objects are observable from outside the daemon"
// requirement (spec.md §6).
package mqttsink
