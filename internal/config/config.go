package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Backend BackendConfig
	Log     LogConfig
}

// BackendConfig holds the backend platform connection settings
type BackendConfig struct {
	Endpoint   string        `yaml:"endpoint"`
	Namespace  string        `yaml:"namespace"`
	Database   string        `yaml:"database"`
	Collection string        `yaml:"collection"`
	User       string        `yaml:"user"`
	Password   string        `yaml:"password"`
	Timeout    time.Duration `yaml:"timeout"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from environment variables with sensible defaults.
// If STUDYBUDDY_CONFIG points at a YAML file (or ~/.studybuddy.yaml exists),
// its values are applied first and the environment overrides them.
func Load() (*Config, error) {
	cfg := &Config{
		Backend: BackendConfig{
			Endpoint:   "ws://localhost:8000",
			Namespace:  "studybuddy",
			Database:   "main",
			Collection: "study_notes",
			User:       "root",
			Password:   "root",
			Timeout:    15 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	path := os.Getenv("STUDYBUDDY_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := home + "/.studybuddy.yaml"
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.Backend.Endpoint = getEnv("STUDYBUDDY_ENDPOINT", cfg.Backend.Endpoint)
	cfg.Backend.Namespace = getEnv("STUDYBUDDY_NAMESPACE", cfg.Backend.Namespace)
	cfg.Backend.Database = getEnv("STUDYBUDDY_DATABASE", cfg.Backend.Database)
	cfg.Backend.Collection = getEnv("STUDYBUDDY_COLLECTION", cfg.Backend.Collection)
	cfg.Backend.User = getEnv("STUDYBUDDY_USER", cfg.Backend.User)
	cfg.Backend.Password = getEnv("STUDYBUDDY_PASSWORD", cfg.Backend.Password)
	cfg.Backend.Timeout = getDurationEnv("STUDYBUDDY_TIMEOUT", cfg.Backend.Timeout)
	cfg.Log.Level = getEnv("STUDYBUDDY_LOG_LEVEL", cfg.Log.Level)

	return cfg, nil
}

// fileConfig mirrors the YAML layout of ~/.studybuddy.yaml
type fileConfig struct {
	Backend BackendConfig `yaml:"backend"`
	Log     LogConfig     `yaml:"log"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if fc.Backend.Endpoint != "" {
		cfg.Backend.Endpoint = fc.Backend.Endpoint
	}
	if fc.Backend.Namespace != "" {
		cfg.Backend.Namespace = fc.Backend.Namespace
	}
	if fc.Backend.Database != "" {
		cfg.Backend.Database = fc.Backend.Database
	}
	if fc.Backend.Collection != "" {
		cfg.Backend.Collection = fc.Backend.Collection
	}
	if fc.Backend.User != "" {
		cfg.Backend.User = fc.Backend.User
	}
	if fc.Backend.Password != "" {
		cfg.Backend.Password = fc.Backend.Password
	}
	if fc.Backend.Timeout != 0 {
		cfg.Backend.Timeout = fc.Backend.Timeout
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	return nil
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Backend.Endpoint == "" {
		errs = append(errs, errors.New("STUDYBUDDY_ENDPOINT is required"))
	} else if !strings.HasPrefix(c.Backend.Endpoint, "ws://") && !strings.HasPrefix(c.Backend.Endpoint, "wss://") {
		errs = append(errs, fmt.Errorf("STUDYBUDDY_ENDPOINT must be a ws:// or wss:// URL, got '%s'", c.Backend.Endpoint))
	}
	if c.Backend.Namespace == "" {
		errs = append(errs, errors.New("STUDYBUDDY_NAMESPACE is required"))
	}
	if c.Backend.Database == "" {
		errs = append(errs, errors.New("STUDYBUDDY_DATABASE is required"))
	}
	if c.Backend.Collection == "" {
		errs = append(errs, errors.New("STUDYBUDDY_COLLECTION is required"))
	}
	if c.Backend.Timeout <= 0 {
		errs = append(errs, errors.New("STUDYBUDDY_TIMEOUT must be positive"))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("STUDYBUDDY_LOG_LEVEL must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
