package dto

import (
	"speaker-scribe/internal/app/api/provider"
)

// ProviderResponse describes the configured transcription backend
type ProviderResponse struct {
	Name           string   `json:"name" example:"gemini"`
	DisplayName    string   `json:"display_name" example:"Google Gemini"`
	Model          string   `json:"model" example:"gemini-2.5-flash"`
	RequiresAPIKey bool     `json:"requires_api_key"`
	MaxFileSizeMB  int      `json:"max_file_size_mb" example:"20"`
	Registered     []string `json:"registered"`
}

// NewProviderResponse builds a response from provider info
func NewProviderResponse(info provider.ProviderInfo, model string, maxFileSizeMB int) *ProviderResponse {
	return &ProviderResponse{
		Name:           info.Name,
		DisplayName:    info.DisplayName,
		Model:          model,
		RequiresAPIKey: info.RequiresAPIKey,
		MaxFileSizeMB:  maxFileSizeMB,
		Registered:     provider.ListRegisteredProviders(),
	}
}
