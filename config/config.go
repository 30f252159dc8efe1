// Package config reads the service settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string        `env:"EVENTDESK_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"EVENTDESK_SHUTDOWN_TIMEOUT" envDefault:"3s"`

	LogLevel  string `env:"EVENTDESK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"EVENTDESK_LOG_FORMAT" envDefault:"text"`

	// SeedFile is a yaml seed; the built-in demo data is loaded when empty.
	SeedFile string `env:"EVENTDESK_SEED_FILE"`

	LoginRatePerMinute float64 `env:"EVENTDESK_LOGIN_RATE_PER_MINUTE" envDefault:"30"`
	LoginBurst         int     `env:"EVENTDESK_LOGIN_BURST" envDefault:"10"`

	TracingEnabled bool `env:"EVENTDESK_TRACING_ENABLED" envDefault:"false"`

	JournalCapacity int `env:"EVENTDESK_JOURNAL_CAPACITY" envDefault:"200"`
}

// Load reads the configuration from the environment. Files in envFiles are
// loaded first without overriding variables that are already set; missing
// files are ignored.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.LoginRatePerMinute < 0 {
		return fmt.Errorf("login rate must not be negative: %v", c.LoginRatePerMinute)
	}
	if c.LoginBurst < 1 {
		return fmt.Errorf("login burst must be positive: %d", c.LoginBurst)
	}
	if c.JournalCapacity < 1 {
		return fmt.Errorf("journal capacity must be positive: %d", c.JournalCapacity)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
