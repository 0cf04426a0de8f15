// Package config provides configuration loading, validation, and hot
// reload for the leaderboard service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gateway GatewayConfig `yaml:"gateway"`
	CORS    CORSConfig    `yaml:"cors"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	OpenAPI OpenAPIConfig `yaml:"openapi"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// GatewayConfig configures the upstream LiteLLM gateway.
type GatewayConfig struct {
	URL      string        `yaml:"url"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
	PageSize int           `yaml:"page_size"`
	MaxPages int           `yaml:"max_pages"`
}

// CORSConfig configures the allowed frontend origins.
type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// CatalogConfig configures the model name catalog cache.
type CatalogConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // default: /metrics
}

// OpenAPIConfig configures the Swagger UI endpoint.
type OpenAPIConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from a YAML file. Environment variables in
// the file are expanded, then LEADERBOARD_* variables override.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv creates configuration entirely from environment
// variables, for container deployments with no config file.
//
// Environment variables:
//
//	LEADERBOARD_GATEWAY_URL      - LiteLLM gateway URL (required)
//	LEADERBOARD_GATEWAY_API_KEY  - Gateway API key
//	LEADERBOARD_SERVER_HOST      - Server host (default: 0.0.0.0)
//	LEADERBOARD_SERVER_PORT      - Server port (default: 8080)
//	LEADERBOARD_CORS_ORIGINS     - Comma-separated allowed origins
//	LEADERBOARD_LOG_LEVEL        - debug, info, warn, error (default: info)
//	LEADERBOARD_LOG_FORMAT       - json or console (default: json)
//	LEADERBOARD_METRICS_ENABLED  - Enable /metrics (default: true)
//	LEADERBOARD_OPENAPI_ENABLED  - Enable /docs (default: true)
func LoadFromEnv() (*Config, error) {
	var cfg Config

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback tries to load from file, falls back to environment
// variables.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	if HasEnvConfig() {
		return LoadFromEnv()
	}

	return nil, fmt.Errorf("no configuration found: provide config file or set LEADERBOARD_GATEWAY_URL")
}

// HasEnvConfig returns true if essential environment variables are set.
func HasEnvConfig() bool {
	return os.Getenv("LEADERBOARD_GATEWAY_URL") != ""
}

// applyEnvOverrides applies LEADERBOARD_* environment variables.
// Environment always overrides file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LEADERBOARD_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LEADERBOARD_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LEADERBOARD_SERVER_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if v := os.Getenv("LEADERBOARD_SERVER_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}

	if v := os.Getenv("LEADERBOARD_GATEWAY_URL"); v != "" {
		cfg.Gateway.URL = v
	}
	if v := os.Getenv("LEADERBOARD_GATEWAY_API_KEY"); v != "" {
		cfg.Gateway.APIKey = v
	}
	if v := os.Getenv("LEADERBOARD_GATEWAY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Gateway.Timeout = d
		}
	}
	if v := os.Getenv("LEADERBOARD_GATEWAY_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Gateway.PageSize = n
		}
	}
	if v := os.Getenv("LEADERBOARD_GATEWAY_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Gateway.MaxPages = n
		}
	}

	if v := os.Getenv("LEADERBOARD_CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		cfg.CORS.Origins = cfg.CORS.Origins[:0]
		for _, o := range origins {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORS.Origins = append(cfg.CORS.Origins, o)
			}
		}
	}

	if v := os.Getenv("LEADERBOARD_CATALOG_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.RefreshInterval = d
		}
	}

	if v := os.Getenv("LEADERBOARD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LEADERBOARD_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv("LEADERBOARD_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("LEADERBOARD_METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}

	if v := os.Getenv("LEADERBOARD_OPENAPI_ENABLED"); v != "" {
		cfg.OpenAPI.Enabled = parseBool(v)
	}
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}

	if cfg.Gateway.Timeout == 0 {
		cfg.Gateway.Timeout = 10 * time.Second
	}
	if cfg.Gateway.PageSize == 0 {
		cfg.Gateway.PageSize = 20000
	}
	if cfg.Gateway.MaxPages == 0 {
		cfg.Gateway.MaxPages = 10
	}

	if cfg.Catalog.RefreshInterval == 0 {
		cfg.Catalog.RefreshInterval = 5 * time.Minute
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if cfg.Gateway.URL == "" {
		return fmt.Errorf("gateway.url is required")
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q invalid (debug, info, warn, error)", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q invalid (json, console)", cfg.Logging.Format)
	}
	if cfg.Gateway.MaxPages < 1 {
		return fmt.Errorf("gateway.max_pages must be at least 1")
	}
	return nil
}
