package config

import "os"

// Environment variable names understood by the console.
const (
	EnvAPIBaseURL  = "CASTPRO_API_URL"
	EnvStateDBPath = "CASTPRO_STATE_DB"
)

// parseEnv overlays Config with values from the environment. Unset variables
// leave the existing values alone.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvStateDBPath); v != "" {
		cfg.StateDBPath = v
	}
}
