package domain

import "time"

// ConfigFileName is the configuration file slink looks for, walking upward
// from the working directory.
const ConfigFileName = "slink.yaml"

// Cache backend names accepted in configuration.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// RedisSettings configures the redis cache backend.
type RedisSettings struct {
	Address  string
	Password string
	DB       int
	Prefix   string
}

// Config is the resolved runtime configuration. Paths are absolute by the
// time the loader hands the config out.
type Config struct {
	Site          Site
	PluginsDir    string
	MenusExport   string
	CacheBackend  string
	Redis         RedisSettings
	MenuTTL       time.Duration
	PluginTTL     time.Duration
	OverridesPath string
	NetworkActive []string
	SettingsTerms []string
	LinkSynonyms  []string
	Verbose       bool
}
