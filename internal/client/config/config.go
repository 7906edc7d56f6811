package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the vetclinic CLI.
//
// Fields:
//   - ServerBaseURL: origin of the clinic REST API; the /api prefix is added by the gateway.
//   - StoragePath: SQLite file holding the persisted session.
//   - SessionCheckInterval: how often the client checks that the session is still valid.
//   - LogLevel, LogFormat: see logging.Options.
//   - ScopedTeardown: ignore 401 responses issued under an older session.
type Config struct {
	ServerBaseURL        string
	StoragePath          string
	SessionCheckInterval time.Duration
	LogLevel             string
	LogFormat            string
	ScopedTeardown       bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.StoragePath = "vetclinic.db"
	c.SessionCheckInterval = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.ScopedTeardown = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerBaseURL == "" {
		errs = append(errs, errors.New("server base url is empty"))
	}
	if c.StoragePath == "" {
		errs = append(errs, errors.New("storage path is empty"))
	}
	if c.SessionCheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("session check interval must be positive, got %s", c.SessionCheckInterval))
	}
	return errors.Join(errs...)
}
