// Package config loads runtime configuration for the CastPro admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables CASTPRO_API_URL and CASTPRO_STATE_DB.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path of the local session database file
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "state_db_path": "castpro.db",
//	  "request_timeout_secs": 15
//	}
package config
