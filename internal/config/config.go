// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DefinitionFile string        `validate:"required"`
	LogLevel       string        `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat      string        `validate:"oneof=text json"`
	Environment    string        `validate:"required"`
	Version        string        `validate:"required"`
	QueryCacheSize int           `validate:"min=1,max=1000000"`
	WatchDebounce  time.Duration `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		DefinitionFile: getEnv(EnvDefinitionFile, DefaultDefinitionFile),
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		Version:        getEnv(EnvVersion, DefaultVersion),
	}

	size, err := strconv.Atoi(getEnv(EnvQueryCacheSize, strconv.Itoa(DefaultQueryCacheSize)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvQueryCacheSize, err)
	}
	cfg.QueryCacheSize = size

	debounce, err := time.ParseDuration(getEnv(EnvWatchDebounce, DefaultWatchDebounce.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvWatchDebounce, err)
	}
	cfg.WatchDebounce = debounce

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
