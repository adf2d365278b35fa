package config

import "time"

// Config holds runtime settings for the stockroom console.
//
// Fields:
//   - BackendBaseURL: scheme://host:port of the inventory backend.
//   - AuthBasePath: path prefix of the credential-issuing endpoint family.
//   - RequestTimeout: per-request timeout for outbound HTTP calls.
//   - DatabaseDSN: path of the local SQLite database holding console state.
type Config struct {
	BackendBaseURL string
	AuthBasePath   string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://localhost:8080"
	c.AuthBasePath = "/api/auth"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "stockroom.db"
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
