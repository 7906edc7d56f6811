package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// EnvPrefix is prepended to every variable name read by parseEnv.
const EnvPrefix = "VETCLINIC_"

// envConfig mirrors Config for go-envconfig. noinit keeps the pointers nil
// for unset variables so they do not overwrite earlier sources.
type envConfig struct {
	ServerBaseURL        *string        `env:"SERVER_BASE_URL, noinit"`
	StoragePath          *string        `env:"STORAGE_PATH, noinit"`
	SessionCheckInterval *time.Duration `env:"SESSION_CHECK_INTERVAL, noinit"`
	LogLevel             *string        `env:"LOG_LEVEL, noinit"`
	LogFormat            *string        `env:"LOG_FORMAT, noinit"`
	ScopedTeardown       *bool          `env:"SCOPED_TEARDOWN, noinit"`
}

func parseEnv(cfg *Config) {
	if err := loadEnv(context.Background(), cfg, envconfig.OsLookuper()); err != nil {
		panic(fmt.Sprintf("config: failed to load environment: %v", err))
	}
}

func loadEnv(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	var ec envConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &ec,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, l),
	}); err != nil {
		return err
	}

	if ec.ServerBaseURL != nil {
		cfg.ServerBaseURL = *ec.ServerBaseURL
	}
	if ec.StoragePath != nil {
		cfg.StoragePath = *ec.StoragePath
	}
	if ec.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = *ec.SessionCheckInterval
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	if ec.LogFormat != nil {
		cfg.LogFormat = *ec.LogFormat
	}
	if ec.ScopedTeardown != nil {
		cfg.ScopedTeardown = *ec.ScopedTeardown
	}
	return nil
}
