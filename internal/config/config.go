// Package config loads the user-level mapforge configuration: a YAML
// file under the user's home directory with environment-variable
// overrides on top. API keys are deliberately not part of the file;
// credentials flow through flags, the environment, or the keystore.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized as overrides.
const (
	EnvProvider    = "MAPFORGE_PROVIDER"
	EnvModel       = "MAPFORGE_MODEL"
	EnvBaseURL     = "MAPFORGE_BASE_URL"
	EnvMaxAttempts = "MAPFORGE_MAX_ATTEMPTS"
	EnvTimeout     = "MAPFORGE_TIMEOUT_SECONDS"

	// EnvAPIKey is read by the CLI, never by this package or the core.
	EnvAPIKey = "MAPFORGE_API_KEY"
)

// Config is the user-level configuration.
type Config struct {
	Provider        string `yaml:"provider"`
	Model           string `yaml:"model"`
	BaseURL         string `yaml:"base_url"`
	MaxAttempts     int    `yaml:"max_attempts"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Provider:       "gemini",
		MaxAttempts:    3,
		TimeoutSeconds: 60,
	}
}

// DefaultDir returns the mapforge data directory (~/.mapforge).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".mapforge"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides. Malformed
// YAML is an error; a missing file is not.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = Default().MaxAttempts
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvMaxAttempts); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxAttempts = n
		}
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutSeconds = n
		}
	}
}

// AttemptTimeout returns the per-attempt timeout as a duration.
func (c Config) AttemptTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
