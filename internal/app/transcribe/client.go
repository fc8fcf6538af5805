package transcribe

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"go.uber.org/zap"

	"speaker-scribe/internal/app/api/provider"
	"speaker-scribe/internal/app/metrics"
)

// Instruction is sent with every audio file. Speaker labels and timestamps in
// the result come from the model; they are not parsed or reformatted here.
const Instruction = "Please extract the full text. Please arrange it in paragraph form. " +
	"Identify each speaker. And every time there is a new speaker, add a timestamp next to the speaker's name."

// Error is returned for any failure of the remote call. Its message is the
// underlying failure text.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client packages encoded audio with the fixed instruction and sends it,
// once, to the configured model.
type Client struct {
	transcriber provider.Transcriber
	model       string
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewClient creates a transcription client. metrics may be nil.
func NewClient(transcriber provider.Transcriber, model string, m *metrics.Metrics, logger *zap.Logger) *Client {
	if model == "" {
		model = transcriber.GetProviderInfo().DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		transcriber: transcriber,
		model:       model,
		metrics:     m,
		logger:      logger,
	}
}

// Model returns the model identifier sent with every request
func (c *Client) Model() string {
	return c.model
}

// ProviderName returns the backend's registry name
func (c *Client) ProviderName() string {
	return c.transcriber.GetProviderInfo().Name
}

// ProviderInfo returns the backend's description
func (c *Client) ProviderInfo() provider.ProviderInfo {
	return c.transcriber.GetProviderInfo()
}

// Transcribe sends one request and returns the response text verbatim.
func (c *Client) Transcribe(ctx context.Context, mimeType, payload string) (string, error) {
	request := &provider.Request{
		Model:       c.model,
		Audio:       provider.InlineData{MIMEType: mimeType, Data: payload},
		Instruction: Instruction,
	}
	providerName := c.ProviderName()

	start := time.Now()
	text, err := c.transcriber.Submit(ctx, request)
	elapsed := time.Since(start)

	if err != nil {
		code := errorCode(err)
		c.metrics.RecordFailure(providerName, code, elapsed)
		c.logger.Warn("transcription failed",
			zap.String("provider", providerName),
			zap.String("model", c.model),
			zap.String("mime_type", mimeType),
			zap.String("code", code),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return "", &Error{Message: err.Error(), Cause: err}
	}

	audioBytes := base64.StdEncoding.DecodedLen(len(payload))
	c.metrics.RecordSuccess(providerName, elapsed, audioBytes)
	c.logger.Info("transcription completed",
		zap.String("provider", providerName),
		zap.String("model", c.model),
		zap.String("mime_type", mimeType),
		zap.Int("audio_bytes", audioBytes),
		zap.Int("text_length", len(text)),
		zap.Duration("elapsed", elapsed),
	)
	return text, nil
}

func errorCode(err error) string {
	var serviceErr *provider.ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Code != "" {
		return serviceErr.Code
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	return "unknown"
}
