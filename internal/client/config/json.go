package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/castpro/console/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is in
// whole seconds; values are copied into the runtime Config afterwards.
type JsonConfig struct {
	APIBaseURL         string `json:"api_base_url"`
	StateDBPath        string `json:"state_db_path"`
	RequestTimeoutSecs int    `json:"request_timeout_secs"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when no file is named the function
// is a no-op. Read or unmarshal errors panic, matching the fail-fast startup
// path. Zero-valued JSON fields leave the existing Config values alone.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
	if jc.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSecs) * time.Second
	}
}
