package mqttclient

import (
	"fmt"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/stefdude/linknx/internal/config"
)

// buildClientOptions creates paho options from the daemon's MQTT config:
// broker address, client id, optional auth, and reconnect behaviour.
func buildClientOptions(cfg config.MQTTConfig) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()

	brokerURL := fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)
	opts.AddBroker(brokerURL)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(defaultConnectTimeout)
	opts.SetKeepAlive(defaultKeepAlive)

	return opts
}

// configureLWT sets the last-will message published by the broker if the
// client disconnects unexpectedly.
func configureLWT(opts *pahomqtt.ClientOptions, clientID, topicPrefix string) {
	willTopic := fmt.Sprintf("%s/system/status", topicPrefix)
	willPayload := fmt.Sprintf(`{"status":"offline","client_id":%q,"reason":"unexpected_disconnect"}`, clientID)
	opts.SetWill(willTopic, willPayload, 1, true)
}
