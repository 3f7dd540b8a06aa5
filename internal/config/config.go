// Package config loads the client and server configuration from a YAML
// file, filling in defaults for anything left out.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all TabDeck sync-core configuration
type Config struct {
	Client ClientConfig `yaml:"client"`
	Server ServerConfig `yaml:"server"`
}

// ClientConfig configures the offline engine on the client
type ClientConfig struct {
	// ServerURL is the base URL of the remote mutation sink
	ServerURL string `yaml:"server_url"`

	// DBPath is the BoltDB file holding the queue and the widget replica
	DBPath string `yaml:"db_path"`

	Grid GridConfig `yaml:"grid"`
	Sync SyncConfig `yaml:"sync"`
}

// GridConfig declares the widget grid bounds. Rows 0 means the grid grows
// downward without limit.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// SyncConfig tunes the drain pass
type SyncConfig struct {
	// FanOut bounds how many entity streams are sent concurrently
	FanOut int `yaml:"fan_out"`

	// RecordTimeoutSeconds bounds one sink call
	RecordTimeoutSeconds int `yaml:"record_timeout_seconds"`
}

// ServerConfig configures the reference sink server
type ServerConfig struct {
	ListenAddr string          `yaml:"listen_addr"`
	DBPath     string          `yaml:"db_path"`
	LogLevel   string          `yaml:"log_level"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig tunes the per-IP request gate
type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Client: ClientConfig{
			ServerURL: "http://localhost:8080",
			DBPath:    "tabdeck-client.db",
			Grid: GridConfig{
				Columns: 12,
				Rows:    0,
			},
			Sync: SyncConfig{
				FanOut:               4,
				RecordTimeoutSeconds: 10,
			},
		},
		Server: ServerConfig{
			ListenAddr: ":8080",
			DBPath:     "tabdeck-server.db",
			LogLevel:   "info",
			RateLimit: RateLimitConfig{
				Requests:      120,
				WindowSeconds: 60,
			},
		},
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Client.Grid.Columns <= 0 {
		return fmt.Errorf("client.grid.columns must be positive, got %d", c.Client.Grid.Columns)
	}
	if c.Client.Grid.Rows < 0 {
		return fmt.Errorf("client.grid.rows must not be negative, got %d", c.Client.Grid.Rows)
	}
	if c.Client.Sync.FanOut <= 0 {
		return fmt.Errorf("client.sync.fan_out must be positive, got %d", c.Client.Sync.FanOut)
	}
	if c.Client.Sync.RecordTimeoutSeconds <= 0 {
		return fmt.Errorf("client.sync.record_timeout_seconds must be positive, got %d", c.Client.Sync.RecordTimeoutSeconds)
	}
	return nil
}
