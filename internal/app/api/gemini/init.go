package gemini

import (
	"context"

	"speaker-scribe/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(providerName, createGeminiProvider)
}

func createGeminiProvider(settings provider.Settings) (provider.Transcriber, error) {
	return NewGeminiProvider(context.Background(), Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
		Timeout: settings.Timeout,
	})
}
