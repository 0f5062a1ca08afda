package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Records RecordsConfig `mapstructure:"records"`
	Session SessionConfig `mapstructure:"session"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// RecordsConfig holds connection settings for the records backend
type RecordsConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// SessionConfig holds settings for the local view-selection store
type SessionConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// CacheConfig holds Redis settings for the insights cache.
// An empty Addr disables caching entirely.
type CacheConfig struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`  // "json" or "text"
	Backend string `mapstructure:"backend"` // "slog" or "zap"
	File    string `mapstructure:"file"`    // rotation target for the zap backend; empty = stdout only
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("session.db_path", "innerlog-session.db")
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.backend", "slog")

	// Read from environment variables
	v.SetEnvPrefix("INNERLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables for backward compatibility
	v.BindEnv("server.port", "PORT")
	v.BindEnv("records.url", "RECORDS_BACKEND_URL")
	v.BindEnv("records.service_key", "RECORDS_BACKEND_SERVICE_KEY")
	v.BindEnv("cache.addr", "REDIS_ADDR")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	if c.Records.URL == "" {
		return fmt.Errorf("RECORDS_BACKEND_URL is required")
	}
	if c.Records.ServiceKey == "" {
		return fmt.Errorf("RECORDS_BACKEND_SERVICE_KEY is required")
	}
	return nil
}
