package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DaemonConfig is the root ambient configuration for the daemon: the
// YAML layer around the XML element tree (imported separately) — site,
// persistence, MQTT, status API, logging.
type DaemonConfig struct {
	Site        SiteConfig        `yaml:"site"`
	ConfigFile  string            `yaml:"config_file"`
	Persistence PersistenceConfig `yaml:"persistence"`
	MQTT        MQTTConfig        `yaml:"mqtt"`
	StatusAPI   StatusAPIConfig   `yaml:"status_api"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SiteConfig carries the site's timezone name and geographic coordinates,
// the latter feeding internal/sun's sunrise/sunset/solar-noon TimeSpecs.
type SiteConfig struct {
	Name      string  `yaml:"name"`
	Timezone  string  `yaml:"timezone"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// PersistenceConfig contains SQLite store settings for init="persist"
// objects (spec.md §6, "Persistence side-effect").
type PersistenceConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// MQTTConfig contains the optional republishing sink's broker settings.
// Enabled defaults to false: a daemon with no MQTT section configured
// runs with no external change-notification transport.
type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	QoS      int    `yaml:"qos"`
	Topic    string `yaml:"topic_prefix"`
}

// StatusAPIConfig contains the read-only operator HTTP endpoint settings.
type StatusAPIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

// LoggingConfig controls output destination, level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads a DaemonConfig from a YAML file, applies environment
// overrides and validates the result: defaults, then file, then env.
func Load(path string) (*DaemonConfig, error) {
	cfg := defaultDaemonConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading daemon config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing daemon config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating daemon config: %w", err)
	}
	return cfg, nil
}

func defaultDaemonConfig() *DaemonConfig {
	return &DaemonConfig{
		Site: SiteConfig{
			Name:     "linknx",
			Timezone: "UTC",
		},
		ConfigFile: "/etc/linknxd/linknx.xml",
		Persistence: PersistenceConfig{
			Path:        "./data/linknx.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		MQTT: MQTTConfig{
			Host:     "localhost",
			Port:     1883,
			ClientID: "linknxd",
			QoS:      1,
			Topic:    "linknx",
		},
		StatusAPI: StatusAPIConfig{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies LINKNXD_-prefixed environment variable
// overrides, mirroring applyEnvOverrides's GRAYLOGIC_ prefix convention.
func applyEnvOverrides(cfg *DaemonConfig) {
	if v := os.Getenv("LINKNXD_CONFIG_FILE"); v != "" {
		cfg.ConfigFile = v
	}
	if v := os.Getenv("LINKNXD_PERSISTENCE_PATH"); v != "" {
		cfg.Persistence.Path = v
	}
	if v := os.Getenv("LINKNXD_MQTT_HOST"); v != "" {
		cfg.MQTT.Host = v
	}
	if v := os.Getenv("LINKNXD_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Username = v
	}
	if v := os.Getenv("LINKNXD_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Password = v
	}
	if v := os.Getenv("LINKNXD_STATUS_API_HOST"); v != "" {
		cfg.StatusAPI.Host = v
	}
}

// Validate checks the configuration for obvious errors.
func (c *DaemonConfig) Validate() error {
	var errs []string

	if c.Site.Name == "" {
		errs = append(errs, "site.name is required")
	}
	if c.ConfigFile == "" {
		errs = append(errs, "config_file is required")
	}
	if c.Persistence.Path == "" {
		errs = append(errs, "persistence.path is required")
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.StatusAPI.Port < 0 || c.StatusAPI.Port > 65535 {
		errs = append(errs, "status_api.port must be between 0 and 65535")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
