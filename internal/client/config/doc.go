// Package config loads runtime configuration for the vetclinic CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with VETCLINIC_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   origin of the clinic API
//	-d string   local session database path
//	-i int      session check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "storage_path": "vetclinic.db",
//	  "session_check_interval": "30s",
//	  "log_level": "info",
//	  "log_format": "console",
//	  "scoped_teardown": false
//	}
//
// # Environment
//
//	VETCLINIC_SERVER_BASE_URL, VETCLINIC_STORAGE_PATH,
//	VETCLINIC_SESSION_CHECK_INTERVAL (Go duration), VETCLINIC_LOG_LEVEL,
//	VETCLINIC_LOG_FORMAT, VETCLINIC_SCOPED_TEARDOWN
package config
