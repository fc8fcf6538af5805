package provider

import (
	"encoding/base64"
	"fmt"
	"time"
)

// InlineData is a request part carrying raw audio as base64 plus its media type.
type InlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Bytes decodes the base64 payload.
func (d InlineData) Bytes() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(d.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 audio payload: %w", err)
	}
	return raw, nil
}

// Request is one transcription attempt: a model id, the audio part and the
// instruction text part.
type Request struct {
	Model       string     `json:"model"`
	Audio       InlineData `json:"audio"`
	Instruction string     `json:"instruction"`
}

// Validate checks that every part of the request is present.
func (r *Request) Validate() error {
	switch {
	case r == nil:
		return fmt.Errorf("request is required")
	case r.Model == "":
		return fmt.Errorf("model is required")
	case r.Audio.MIMEType == "":
		return fmt.Errorf("audio mime type is required")
	case r.Audio.Data == "":
		return fmt.Errorf("audio data is required")
	case r.Instruction == "":
		return fmt.Errorf("instruction is required")
	}
	return nil
}

// ProviderInfo contains metadata about a transcription backend
type ProviderInfo struct {
	Name           string `json:"name"`         // Registry name (e.g., "gemini", "openai")
	DisplayName    string `json:"display_name"` // Human-readable name
	DefaultModel   string `json:"default_model"`
	RequiresAPIKey bool   `json:"requires_api_key"`
}

// Settings carries what a backend factory needs to build a Transcriber.
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ServiceError represents a transport or service failure from a backend
type ServiceError struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Cause    error  `json:"-"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// NewServiceError wraps err as a ServiceError carrying its message.
func NewServiceError(providerName, code string, err error) *ServiceError {
	return &ServiceError{
		Provider: providerName,
		Code:     code,
		Message:  err.Error(),
		Cause:    err,
	}
}
