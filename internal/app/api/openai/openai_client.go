package openai

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI client, pointing it at baseURL when one is given.
func NewClient(apiKey, baseURL string, timeout time.Duration) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if timeout > 0 {
		config.HTTPClient = &http.Client{Timeout: timeout}
	}
	return openai.NewClientWithConfig(config)
}
