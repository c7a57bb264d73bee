package config

import "time"

// Environment variable names
const (
	EnvDefinitionFile = "ITEMALIAS_FILE"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvVersion        = "ITEMALIAS_VERSION"
	EnvQueryCacheSize = "QUERY_CACHE_SIZE"
	EnvWatchDebounce  = "WATCH_DEBOUNCE"
)

// Defaults
const (
	DefaultDefinitionFile = "aliases.yaml"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultVersion        = "dev"
	DefaultQueryCacheSize = 512
	DefaultWatchDebounce  = 300 * time.Millisecond
)
