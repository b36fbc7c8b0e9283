package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Endpoint:   "ws://localhost:8000",
			Namespace:  "studybuddy",
			Database:   "main",
			Collection: "study_notes",
			User:       "root",
			Password:   "root",
			Timeout:    15 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_MissingEndpoint(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Backend.Endpoint = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing STUDYBUDDY_ENDPOINT")
	}
	if !strings.Contains(err.Error(), "STUDYBUDDY_ENDPOINT") {
		t.Errorf("expected error to mention STUDYBUDDY_ENDPOINT, got: %v", err)
	}
}

func TestConfig_Validate_BadEndpointScheme(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Backend.Endpoint = "http://localhost:8000"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for http endpoint")
	}
	if !strings.Contains(err.Error(), "ws://") {
		t.Errorf("expected error to mention ws://, got: %v", err)
	}
}

func TestConfig_Validate_ListsAllMissingKeys(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Backend.Endpoint = ""
	cfg.Backend.Namespace = ""
	cfg.Backend.Collection = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, key := range []string{"STUDYBUDDY_ENDPOINT", "STUDYBUDDY_NAMESPACE", "STUDYBUDDY_COLLECTION"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected error to mention %s, got: %v", key, err)
		}
	}
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid STUDYBUDDY_LOG_LEVEL")
	}
	if !strings.Contains(err.Error(), "STUDYBUDDY_LOG_LEVEL") {
		t.Errorf("expected error to mention STUDYBUDDY_LOG_LEVEL, got: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"STUDYBUDDY_CONFIG", "STUDYBUDDY_ENDPOINT", "STUDYBUDDY_NAMESPACE",
		"STUDYBUDDY_DATABASE", "STUDYBUDDY_COLLECTION", "STUDYBUDDY_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	// Keep the default ~/.studybuddy.yaml lookup out of the test.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend.Endpoint != "ws://localhost:8000" {
		t.Errorf("expected default endpoint, got %s", cfg.Backend.Endpoint)
	}
	if cfg.Backend.Collection != "study_notes" {
		t.Errorf("expected default collection study_notes, got %s", cfg.Backend.Collection)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studybuddy.yaml")
	data := []byte("backend:\n  endpoint: ws://filehost:8000\n  collection: file_notes\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("STUDYBUDDY_CONFIG", path)
	t.Setenv("STUDYBUDDY_ENDPOINT", "ws://envhost:8000")
	t.Setenv("STUDYBUDDY_COLLECTION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend.Endpoint != "ws://envhost:8000" {
		t.Errorf("expected env to override file, got %s", cfg.Backend.Endpoint)
	}
	if cfg.Backend.Collection != "file_notes" {
		t.Errorf("expected file value for collection, got %s", cfg.Backend.Collection)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected file log level debug, got %s", cfg.Log.Level)
	}
}
