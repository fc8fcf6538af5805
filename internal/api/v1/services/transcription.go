package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"speaker-scribe/internal/api/v1/dto"
	"speaker-scribe/internal/app/audio"
	"speaker-scribe/internal/app/metrics"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/internal/app/transcribe"
)

// TranscriptionServiceImpl implements TranscriptionService without a session
type TranscriptionServiceImpl struct {
	client  *transcribe.Client
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(client *transcribe.Client, m *metrics.Metrics, logger *zap.Logger) TranscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptionServiceImpl{
		client:  client,
		metrics: m,
		logger:  logger,
	}
}

// TranscribeUpload validates, encodes and transcribes one file
func (s *TranscriptionServiceImpl) TranscribeUpload(ctx context.Context, candidate session.Candidate) (*dto.TranscriptionResponse, error) {
	if err := audio.Validate(candidate.Size, candidate.MIMEType); err != nil {
		s.recordRejection(err)
		return nil, toAPIError(err)
	}

	payload, size, err := encodeCandidate(candidate)
	if err != nil {
		if !s.recordRejection(err) {
			s.logger.Warn("failed to read upload", zap.String("file_name", candidate.Name), zap.Error(err))
		}
		return nil, toAPIError(err)
	}

	text, err := s.client.Transcribe(ctx, candidate.MIMEType, payload)
	if err != nil {
		return nil, toAPIError(err)
	}

	return &dto.TranscriptionResponse{
		Text:     text,
		Provider: s.client.ProviderName(),
		Model:    s.client.Model(),
		MIMEType: candidate.MIMEType,
		Size:     size,
	}, nil
}

// ProviderInfo describes the configured backend
func (s *TranscriptionServiceImpl) ProviderInfo(ctx context.Context) *dto.ProviderResponse {
	return dto.NewProviderResponse(s.client.ProviderInfo(), s.client.Model(), audio.MaxFileSizeMB)
}

// recordRejection counts validation failures and reports whether err was one
func (s *TranscriptionServiceImpl) recordRejection(err error) bool {
	var vErr *audio.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	s.metrics.RecordRejection(vErr.Reason)
	return true
}

func encodeCandidate(candidate session.Candidate) (string, int64, error) {
	if candidate.Open == nil {
		return "", 0, audio.ErrRead
	}
	rc, err := candidate.Open()
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", audio.ErrRead, err)
	}
	defer rc.Close()

	counter := &countingReader{r: io.LimitReader(rc, audio.MaxFileSizeBytes+1)}
	payload, err := audio.Encode(counter)
	if err != nil {
		return "", 0, err
	}
	if counter.n > audio.MaxFileSizeBytes {
		return "", 0, audio.ErrTooLarge()
	}
	return payload, counter.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
