package config

import "time"

// Config holds runtime settings for the Pawsome CLI.
//
// Fields:
//   - ServerURL: base URL of the accounts server.
//   - ProfileDSN: SQLite DSN of the local profile store. Empty means a file
//     in the .pawsome directory under the working directory.
//   - RequestTimeout: upper bound for one signup or login round trip.
type Config struct {
	ServerURL      string
	ProfileDSN     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.ProfileDSN = ""
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
