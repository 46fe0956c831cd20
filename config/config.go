package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Cache     CacheConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoreConfig holds hosted table store configuration
type StoreConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds catalog cache configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// SearchConfig holds search and ranking configuration
type SearchConfig struct {
	FuzzyThreshold     float64 `mapstructure:"fuzzy_threshold"`
	IncludeDescription bool    `mapstructure:"include_description"`
	MaxResults         int     `mapstructure:"max_results"`
	SuggestLimit       int     `mapstructure:"suggest_limit"`
	RecentLimit        int     `mapstructure:"recent_limit"`
	EnableDebugLogging bool    `mapstructure:"debug"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storefront/")

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "5m")

	// Search defaults
	v.SetDefault("search.fuzzy_threshold", 0.7)
	v.SetDefault("search.include_description", true)
	v.SetDefault("search.max_results", 100)
	v.SetDefault("search.suggest_limit", 5)
	v.SetDefault("search.recent_limit", 5)

	// Rate limit defaults (requests per minute per client IP)
	v.SetDefault("ratelimit.per_ip", 120)
}

// loadEnvFile loads KEY=VALUE pairs from a local .env file into the
// environment. A missing file is fine; env vars and defaults take over.
func loadEnvFile() error {
	data, err := os.ReadFile(".env")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		os.Setenv(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return nil
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Store.APIKey == "" {
		return fmt.Errorf("store API key is required (set STOREFRONT_STORE_API_KEY)")
	}

	if config.Store.BaseURL == "" {
		return fmt.Errorf("store base URL is required (set STOREFRONT_STORE_BASE_URL)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Search.FuzzyThreshold <= 0 || config.Search.FuzzyThreshold > 1 {
		return fmt.Errorf("search fuzzy threshold must be in (0, 1], got: %g", config.Search.FuzzyThreshold)
	}

	return nil
}
