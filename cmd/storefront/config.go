package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from STOREFRONT_* environment variables, with an
// optional .env file loaded first.
type Config struct {
	Env  string `default:"development"`
	Port string `default:"8080"`

	MetricsEnabled bool   `split_words:"true" default:"false"`
	MetricsToken   string `split_words:"true"`

	// Storage selects the persistence backend: memory, file, postgres
	// or redis. Memory keeps state for the process lifetime only.
	Storage     string `default:"memory"`
	DataDir     string `split_words:"true" default:"./data"`
	PostgresDSN string `split_words:"true"`

	// AuthDelayMS is the artificial sign-up/sign-in latency.
	AuthDelayMS int `split_words:"true" default:"500"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return Config{}, fmt.Errorf("process config: %w", err)
	}

	switch cfg.Storage {
	case "memory", "file", "postgres", "redis":
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}

	return cfg, nil
}
