package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when no credential is configured for the selected provider
var ErrMissingAPIKey = errors.New("API key is not configured")

// Config is the complete runtime configuration
type Config struct {
	Environment string         `yaml:"environment" validate:"oneof=development production"`
	LogLevel    string         `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Provider    ProviderConfig `yaml:"provider"`
	Server      ServerConfig   `yaml:"server"`
	Session     SessionConfig  `yaml:"session"`
}

// ProviderConfig selects and configures the transcription backend
type ProviderConfig struct {
	Name      string        `yaml:"name" validate:"required,oneof=gemini openai"`
	APIKey    string        `yaml:"api_key" validate:"required"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Model     string        `yaml:"model" validate:"required"`
	BaseURL   string        `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
}

// SessionConfig holds session store settings
type SessionConfig struct {
	TTL time.Duration `yaml:"ttl" validate:"gt=0"`
}

// IsDevelopment reports whether the development environment is selected
func (c *Config) IsDevelopment() bool {
	return c.Environment != EnvProduction
}

// LoadEnv loads environment variables from the first .env file found.
// It returns the path that was loaded, or "" when none exists.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	// Environment variables might be set system-wide, so a missing file is fine
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// Load builds the configuration from the environment and validates it.
// A missing credential is fatal and reported as ErrMissingAPIKey.
func Load() (*Config, error) {
	providerName := strings.ToLower(getEnvOrDefault("SCRIBE_PROVIDER", ProviderGemini))
	defaults := GetProviderDefaults(providerName)

	apiKey, keyEnv := firstEnv(defaults.APIKeyEnv...)
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set %s in the environment or a .env file",
			ErrMissingAPIKey, strings.Join(defaults.APIKeyEnv, " or "))
	}

	timeout, err := durationEnv("SCRIBE_TIMEOUT", defaults.Timeout)
	if err != nil {
		return nil, err
	}
	ttl, err := durationEnv("SCRIBE_SESSION_TTL", DefaultSessionTTL)
	if err != nil {
		return nil, err
	}
	maxBody, err := int64Env("SCRIBE_MAX_BODY_BYTES", DefaultMaxBodyBytes)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: strings.ToLower(getEnvOrDefault("SCRIBE_ENV", EnvDevelopment)),
		LogLevel:    strings.ToLower(os.Getenv("SCRIBE_LOG_LEVEL")),
		Provider: ProviderConfig{
			Name:      providerName,
			APIKey:    apiKey,
			APIKeyEnv: keyEnv,
			Model:     getEnvOrDefault("SCRIBE_MODEL", defaults.Model),
			BaseURL:   os.Getenv("SCRIBE_BASE_URL"),
			Timeout:   timeout,
		},
		Server: ServerConfig{
			Host:         getEnvOrDefault("SCRIBE_HOST", DefaultHost),
			Port:         getEnvOrDefault("SCRIBE_PORT", DefaultHTTPPort),
			MaxBodyBytes: maxBody,
		},
		Session: SessionConfig{TTL: ttl},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitializeConfig loads the .env file if available, then the configuration.
// This is the main entry point for configuration loading
func InitializeConfig() (*Config, string, error) {
	envPath, err := LoadEnv()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	cfg, err := Load()
	if err != nil {
		return nil, envPath, err
	}
	return cfg, envPath, nil
}

// Masked returns a copy safe to print, with the credential obscured
func (c *Config) Masked() *Config {
	masked := *c
	masked.Provider.APIKey = maskSecret(c.Provider.APIKey)
	return &masked
}

// YAML renders the masked configuration
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c.Masked())
	if err != nil {
		return nil, fmt.Errorf("failed to render configuration: %w", err)
	}
	return out, nil
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func int64Env(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}
