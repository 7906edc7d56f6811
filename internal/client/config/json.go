package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vetclinic/internal/flagx"
	"github.com/dmitrijs2005/vetclinic/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a file may set any subset.
type JsonConfig struct {
	ServerBaseURL        *string         `json:"server_base_url"`
	StoragePath          *string         `json:"storage_path"`
	SessionCheckInterval *timex.Duration `json:"session_check_interval"`
	LogLevel             *string         `json:"log_level"`
	LogFormat            *string         `json:"log_format"`
	ScopedTeardown       *bool           `json:"scoped_teardown"`
}

// parseJson overlays cfg with values from the file named by -c or -config.
// Without either flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = jc.SessionCheckInterval.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.ScopedTeardown != nil {
		cfg.ScopedTeardown = *jc.ScopedTeardown
	}
}
