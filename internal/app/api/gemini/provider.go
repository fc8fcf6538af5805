package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/genai"

	"speaker-scribe/internal/app/api/provider"
)

const (
	providerName = "gemini"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	defaultTimeout = 10 * time.Minute
)

// Config represents configuration for the Gemini provider
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout time.Duration
}

// GeminiProvider implements provider.Transcriber on the Gemini generateContent API
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini provider requires an API key")
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: config.Timeout},
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  config.Model,
	}, nil
}

// Submit sends the audio and instruction as one user turn and returns the response text.
func (g *GeminiProvider) Submit(ctx context.Context, request *provider.Request) (string, error) {
	if err := request.Validate(); err != nil {
		return "", provider.NewServiceError(providerName, "invalid_request", err)
	}

	audio, err := request.Audio.Bytes()
	if err != nil {
		return "", provider.NewServiceError(providerName, "invalid_request", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(audio, request.Audio.MIMEType),
			genai.NewPartFromText(request.Instruction),
		}, genai.RoleUser),
	}

	model := request.Model
	if model == "" {
		model = g.model
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", provider.NewServiceError(providerName, errorCode(err), err)
	}
	if err := blockedError(resp); err != nil {
		return "", provider.NewServiceError(providerName, "blocked", err)
	}

	return resp.Text(), nil
}

// blockedError reports a prompt the model refused to answer
func blockedError(resp *genai.GenerateContentResponse) error {
	if len(resp.Candidates) > 0 || resp.PromptFeedback == nil || resp.PromptFeedback.BlockReason == "" {
		return nil
	}
	if msg := resp.PromptFeedback.BlockReasonMessage; msg != "" {
		return fmt.Errorf("request blocked by the model (%s): %s", resp.PromptFeedback.BlockReason, msg)
	}
	return fmt.Errorf("request blocked by the model (%s)", resp.PromptFeedback.BlockReason)
}

// GetProviderInfo returns information about the Gemini provider
func (g *GeminiProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:           providerName,
		DisplayName:    "Google Gemini",
		DefaultModel:   g.model,
		RequiresAPIKey: true,
	}
}

func errorCode(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("api_error_%d", apiErr.Code)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return "network_error"
}
