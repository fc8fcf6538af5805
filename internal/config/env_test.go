package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var scribeEnv = []string{
	"API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY",
	"SCRIBE_PROVIDER", "SCRIBE_MODEL", "SCRIBE_BASE_URL", "SCRIBE_TIMEOUT",
	"SCRIBE_HOST", "SCRIBE_PORT", "SCRIBE_ENV", "SCRIBE_LOG_LEVEL",
	"SCRIBE_SESSION_TTL", "SCRIBE_MAX_BODY_BYTES",
}

// clearEnv blanks every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range scribeEnv {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "AIzaTest-1234567890abcdef1234567890")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ProviderGemini, cfg.Provider.Name)
	assert.Equal(t, "gemini-2.5-flash", cfg.Provider.Model)
	assert.Equal(t, "API_KEY", cfg.Provider.APIKeyEnv)
	assert.Equal(t, DefaultGeminiTimeout, cfg.Provider.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, int64(83886080), cfg.Server.MaxBodyBytes)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestLoad_APIKeySources(t *testing.T) {
	testCases := []struct {
		name      string
		env       map[string]string
		expectKey string
		expectEnv string
		expectErr bool
	}{
		{
			name:      "API_KEY",
			env:       map[string]string{"API_KEY": "primary-key-123456"},
			expectKey: "primary-key-123456",
			expectEnv: "API_KEY",
		},
		{
			name:      "falls back to GEMINI_API_KEY",
			env:       map[string]string{"GEMINI_API_KEY": "gemini-key-123456"},
			expectKey: "gemini-key-123456",
			expectEnv: "GEMINI_API_KEY",
		},
		{
			name:      "API_KEY wins over GEMINI_API_KEY",
			env:       map[string]string{"API_KEY": "primary", "GEMINI_API_KEY": "secondary"},
			expectKey: "primary",
			expectEnv: "API_KEY",
		},
		{
			name:      "missing key is fatal",
			env:       map[string]string{},
			expectErr: true,
		},
		{
			name:      "openai ignores gemini keys",
			env:       map[string]string{"SCRIBE_PROVIDER": "openai", "API_KEY": "gemini"},
			expectErr: true,
		},
		{
			name:      "openai key",
			env:       map[string]string{"SCRIBE_PROVIDER": "openai", "OPENAI_API_KEY": "sk-1234567890abcdef"},
			expectKey: "sk-1234567890abcdef",
			expectEnv: "OPENAI_API_KEY",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrMissingAPIKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectKey, cfg.Provider.APIKey)
			assert.Equal(t, tc.expectEnv, cfg.Provider.APIKeyEnv)
		})
	}
}

func TestLoad_OpenAIDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRIBE_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-1234567890abcdef")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider.Name)
	assert.Equal(t, "whisper-1", cfg.Provider.Model)
	assert.Equal(t, DefaultOpenAITimeout, cfg.Provider.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "key")
	t.Setenv("SCRIBE_MODEL", "gemini-2.5-pro")
	t.Setenv("SCRIBE_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("SCRIBE_HOST", "127.0.0.1")
	t.Setenv("SCRIBE_PORT", "9090")
	t.Setenv("SCRIBE_ENV", "production")
	t.Setenv("SCRIBE_LOG_LEVEL", "warn")
	t.Setenv("SCRIBE_SESSION_TTL", "15m")
	t.Setenv("SCRIBE_TIMEOUT", "30s")
	t.Setenv("SCRIBE_MAX_BODY_BYTES", "1048576")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "gemini-2.5-pro", cfg.Provider.Model)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Provider.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, int64(1048576), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name          string
		key           string
		value         string
		errorContains string
	}{
		{"unknown provider", "SCRIBE_PROVIDER", "elevenlabs", "provider.name failed oneof"},
		{"non numeric port", "SCRIBE_PORT", "http", "server.port failed numeric"},
		{"bad environment", "SCRIBE_ENV", "staging", "environment failed oneof"},
		{"bad base url", "SCRIBE_BASE_URL", "not a url", "provider.base_url failed url"},
		{"bad ttl", "SCRIBE_SESSION_TTL", "soon", "invalid SCRIBE_SESSION_TTL"},
		{"negative ttl", "SCRIBE_SESSION_TTL", "-1m", "session.ttl failed gt"},
		{"bad body cap", "SCRIBE_MAX_BODY_BYTES", "lots", "invalid SCRIBE_MAX_BODY_BYTES"},
		{"bad log level", "SCRIBE_LOG_LEVEL", "trace", "log_level failed oneof"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("API_KEY", "key")
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestConfig_YAMLMasksKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "AIzaTest-1234567890abcdef1234567890")

	cfg, err := Load()
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "AIzaTest-1234567890abcdef1234567890")
	assert.Contains(t, string(out), "AIza")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "provider")
	assert.Equal(t, "AIzaTest-1234567890abcdef1234567890", cfg.Provider.APIKey, "original is untouched")
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "*****", maskSecret("short"))
	assert.Equal(t, "sk-1****wxyz", maskSecret("sk-12345wxyz"))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, path)

	t.Setenv("SCRIBE_DOTENV_PROBE", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCRIBE_DOTENV_PROBE=loaded\n"), 0o600))

	path, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", path)
}
