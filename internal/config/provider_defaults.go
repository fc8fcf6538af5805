package config

import "time"

// Provider default configuration constants
const (
	// Provider names as registered in the provider registry
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	// Model defaults
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "whisper-1"

	// Timeout defaults
	DefaultGeminiTimeout = 300 * time.Second
	DefaultOpenAITimeout = 120 * time.Second

	// Server defaults
	DefaultHost         = "0.0.0.0"
	DefaultHTTPPort     = "8080"
	DefaultSessionTTL   = time.Hour
	DefaultMaxBodyBytes = 4 * 20 * 1024 * 1024

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ProviderDefaults holds the default settings for one backend
type ProviderDefaults struct {
	Model     string
	Timeout   time.Duration
	APIKeyEnv []string
}

// GetProviderDefaults returns default configuration for a given provider type
func GetProviderDefaults(providerType string) ProviderDefaults {
	switch providerType {
	case ProviderOpenAI:
		return ProviderDefaults{
			Model:     DefaultOpenAIModel,
			Timeout:   DefaultOpenAITimeout,
			APIKeyEnv: []string{"OPENAI_API_KEY"},
		}
	default:
		return ProviderDefaults{
			Model:     DefaultGeminiModel,
			Timeout:   DefaultGeminiTimeout,
			APIKeyEnv: []string{"API_KEY", "GEMINI_API_KEY"},
		}
	}
}
