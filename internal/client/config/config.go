// Package config loads runtime settings for the VANDA client.
package config

import "time"

// Config holds runtime settings for the VANDA terminal client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - KeystoreDir: directory of the encrypted credential store; empty means
//     the platform default config directory.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	KeystoreDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.vanda.app"
	c.RequestTimeout = 15 * time.Second
	c.KeystoreDir = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
