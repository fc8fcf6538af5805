package whisper

import (
	"fmt"

	"speaker-scribe/internal/app/api/openai"
	"speaker-scribe/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(providerName, createOpenAIProvider)
}

func createOpenAIProvider(settings provider.Settings) (provider.Transcriber, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("openai provider requires an API key")
	}
	client := openai.NewClient(settings.APIKey, settings.BaseURL, settings.Timeout)
	return NewRemoteTranscriber(client, settings.Model), nil
}
