// Package mqttclient wraps paho.mqtt.golang with the connection,
// reconnect and last-will handling linknxd needs to run the
// internal/notify/mqttsink republisher, trimmed to a publish-only
// surface (the daemon never subscribes to command topics; the bus is
// the only command path, spec.md §1).
package mqttclient
