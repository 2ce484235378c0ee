// Package config provides configuration types and defaults for corsair.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// UEXConfig holds trade API settings.
type UEXConfig struct {
	// BaseURL of the UEX API.
	BaseURL string `mapstructure:"base_url"`
	// CacheTTL controls how long fetched responses stay fresh.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// Timeout bounds a single HTTP request.
	Timeout time.Duration `mapstructure:"timeout"`
}

// FleetConfig controls where the cargo fleet comes from.
type FleetConfig struct {
	// Live fetches the flight-ready catalogue from FleetYards instead of
	// using only the built-in fleet. Falls back to the built-ins when the
	// API is unreachable.
	Live bool `mapstructure:"live"`
	// BaseURL of the FleetYards API.
	BaseURL string `mapstructure:"base_url"`
	// CacheTTL controls how long the fetched catalogue stays fresh.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// ServerConfig holds REST API settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DataConfig holds dataset and snapshot locations.
type DataConfig struct {
	// ItemsFile is the user items YAML merged with the builtin dataset.
	ItemsFile string `mapstructure:"items_file"`
	// SnapshotDB is the SQLite file for offline terminal/commodity snapshots.
	SnapshotDB string `mapstructure:"snapshot_db"`
	// WatchItems rebuilds the registry when the items file changes.
	WatchItems bool `mapstructure:"watch_items"`
}

// TracingConfig configures the OpenTelemetry provider.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Exporter is one of "file", "stdout", "otlp", "none".
	Exporter string `mapstructure:"exporter"`
	// FilePath is the JSONL output for the "file" exporter. Empty means
	// traces/traces.jsonl under the user config directory.
	FilePath     string  `mapstructure:"file_path"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"`
	ServiceName  string  `mapstructure:"service_name"`
}

// Config holds all configuration options for corsair.
type Config struct {
	UEX     UEXConfig     `mapstructure:"uex"`
	Fleet   FleetConfig   `mapstructure:"fleet"`
	Server  ServerConfig  `mapstructure:"server"`
	Data    DataConfig    `mapstructure:"data"`
	Tracing TracingConfig `mapstructure:"tracing"`
	// Debug enables file logging.
	Debug bool `mapstructure:"debug"`
	// LogFile is where debug logging goes.
	LogFile string `mapstructure:"log_file"`
}

// UserConfigDir returns ~/.config/corsair, or "" when the home directory
// cannot be determined.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "corsair")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	dir := UserConfigDir()
	return Config{
		UEX: UEXConfig{
			BaseURL:  "https://uexcorp.space/api/2.0",
			CacheTTL: 5 * time.Minute,
			Timeout:  15 * time.Second,
		},
		Fleet: FleetConfig{
			Live:     false,
			BaseURL:  "https://api.fleetyards.net/v1",
			CacheTTL: time.Hour,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8780",
		},
		Data: DataConfig{
			ItemsFile:  filepath.Join(dir, "items.yaml"),
			SnapshotDB: filepath.Join(dir, "snapshots.db"),
			WatchItems: true,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "stdout",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
			ServiceName:  "corsair",
		},
		Debug:   false,
		LogFile: filepath.Join(dir, "corsair.log"),
	}
}

// DefaultConfigTemplate returns the default config as commented YAML.
func DefaultConfigTemplate() string {
	return `# Corsair configuration

# Trade data API
uex:
  base_url: https://uexcorp.space/api/2.0
  cache_ttl: 5m     # How long fetched trade data stays fresh
  timeout: 15s

# Cargo fleet source
fleet:
  live: false       # Fetch the flight-ready catalogue from FleetYards
  base_url: https://api.fleetyards.net/v1
  cache_ttl: 1h

# REST API server (corsair serve)
server:
  addr: 127.0.0.1:8780

# Datasets
data:
  # items_file: ~/.config/corsair/items.yaml   # User items merged with builtins
  # snapshot_db: ~/.config/corsair/snapshots.db
  watch_items: true   # Rebuild the registry when the items file changes

# Tracing (OpenTelemetry)
tracing:
  enabled: false
  exporter: stdout    # file, stdout, otlp, or none
  # otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Debug logging
debug: false
# log_file: ~/.config/corsair/corsair.log
`
}

// WriteDefaultConfig creates a commented config file at path, creating parent
// directories as needed. Fails if the file already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o644); err != nil { //nolint:gosec // config is not secret
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	if c.UEX.BaseURL == "" {
		return fmt.Errorf("uex.base_url must not be empty")
	}
	if c.UEX.CacheTTL < 0 {
		return fmt.Errorf("uex.cache_ttl must not be negative")
	}
	if c.Fleet.Live && c.Fleet.BaseURL == "" {
		return fmt.Errorf("fleet.base_url must not be empty when fleet.live is set")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch c.Tracing.Exporter {
	case "", "file", "stdout", "otlp", "none":
	default:
		return fmt.Errorf("tracing.exporter must be file, stdout, otlp, or none, got %q", c.Tracing.Exporter)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be in [0,1], got %v", c.Tracing.SampleRate)
	}
	return nil
}
