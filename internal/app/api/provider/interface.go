package provider

import (
	"context"
)

// Transcriber is the one capability the application needs from a remote model:
// submit inline audio plus an instruction and get text back.
//
// Implementations live in their own packages (gemini, openai) so nothing
// outside them depends on a vendor SDK.
type Transcriber interface {
	// Submit sends a single request and returns the response text as-is.
	// Failures are reported as *ServiceError.
	Submit(ctx context.Context, request *Request) (string, error)

	// GetProviderInfo returns metadata about the backend.
	GetProviderInfo() ProviderInfo
}
