package services

import (
	"context"

	"speaker-scribe/internal/api/v1/dto"
	"speaker-scribe/internal/app/session"
)

// SessionService defines the interface for session operations
type SessionService interface {
	CreateSession(ctx context.Context) (*dto.SessionResponse, error)
	// EnsureSession returns the session for id, creating one when id is unknown.
	EnsureSession(ctx context.Context, id string) (*dto.SessionResponse, bool)
	GetSession(ctx context.Context, id string) (*dto.SessionResponse, error)
	SelectFile(ctx context.Context, id string, candidate session.Candidate) (*dto.SessionResponse, error)
	// Transcribe blocks until the remote call completes.
	Transcribe(ctx context.Context, id string) (*dto.SessionResponse, error)
	// StartTranscription moves the session to loading and returns immediately.
	StartTranscription(ctx context.Context, id string) (*dto.SessionResponse, error)
	ClearSession(ctx context.Context, id string) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, id string) error
}

// TranscriptionService defines the interface for one-shot transcriptions
type TranscriptionService interface {
	TranscribeUpload(ctx context.Context, candidate session.Candidate) (*dto.TranscriptionResponse, error)
	ProviderInfo(ctx context.Context) *dto.ProviderResponse
}
