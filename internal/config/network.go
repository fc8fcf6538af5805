package config

import (
	"net"
	"os"
)

// ServerConfig holds listener and upload settings
type ServerConfig struct {
	Host         string `yaml:"host" validate:"required"`
	Port         string `yaml:"port" validate:"required,numeric"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" validate:"gt=0"`
}

// Addr returns the host:port the server listens on
func (sc ServerConfig) Addr() string {
	return net.JoinHostPort(sc.Host, sc.Port)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty value among keys and the key it came from
func firstEnv(keys ...string) (string, string) {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value, key
		}
	}
	return "", ""
}
