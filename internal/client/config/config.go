package config

import "time"

// Config holds runtime settings for the CastPro admin console.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - StateDBPath: path of the local sqlite file holding the admin session.
//   - RequestTimeout: per-request HTTP timeout.
//
// Units: RequestTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	APIBaseURL     string
	StateDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.StateDBPath = "castpro.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
