package whisper

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"speaker-scribe/internal/app/api/provider"
	"speaker-scribe/internal/app/audio"
)

const providerName = "openai"

// RemoteTranscriber implements provider.Transcriber on the OpenAI audio transcription API.
// The instruction is passed as the prompt; speaker labelling depends on the model honoring it.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model}
}

// Submit uploads the decoded audio with the instruction as prompt.
func (rt *RemoteTranscriber) Submit(ctx context.Context, request *provider.Request) (string, error) {
	if err := request.Validate(); err != nil {
		return "", provider.NewServiceError(providerName, "invalid_request", err)
	}

	raw, err := request.Audio.Bytes()
	if err != nil {
		return "", provider.NewServiceError(providerName, "invalid_request", err)
	}

	model := request.Model
	if model == "" {
		model = rt.model
	}

	req := openai.AudioRequest{
		Model:    model,
		FilePath: "audio" + audio.Extension(request.Audio.MIMEType),
		Reader:   bytes.NewReader(raw),
		Prompt:   request.Instruction,
		Format:   openai.AudioResponseFormatText,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", provider.NewServiceError(providerName, errorCode(err),
			fmt.Errorf("createTranscription failed: %w", err))
	}

	return resp.Text, nil
}

// GetProviderInfo returns information about the OpenAI provider
func (rt *RemoteTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:           providerName,
		DisplayName:    "OpenAI Audio Transcription",
		DefaultModel:   rt.model,
		RequiresAPIKey: true,
	}
}

func errorCode(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("api_error_%d", apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("api_error_%d", reqErr.HTTPStatusCode)
	}
	return "network_error"
}
