package services

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"speaker-scribe/internal/api/errors"
	"speaker-scribe/internal/app/api/provider"
	"speaker-scribe/internal/app/audio"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/internal/app/transcribe"
)

func TestToAPIError(t *testing.T) {
	cause := stderrors.New("read tcp: connection reset")

	t.Run("read failure keeps its cause", func(t *testing.T) {
		apiErr := toAPIError(fmt.Errorf("%w: %v", audio.ErrRead, cause))
		assert.Equal(t, errors.KindInternal, apiErr.Kind)
		assert.Equal(t, session.ReadMessage, apiErr.Message)
		assert.ErrorIs(t, apiErr, audio.ErrRead)
	})

	t.Run("unknown error keeps its cause", func(t *testing.T) {
		apiErr := toAPIError(cause)
		assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatus())
		assert.Equal(t, "Internal server error", apiErr.Message)
		assert.ErrorIs(t, apiErr, cause)
	})

	t.Run("validation error", func(t *testing.T) {
		apiErr := toAPIError(audio.ErrTooLarge())
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.HTTPStatus())
		assert.Equal(t, audio.ReasonTooLarge, apiErr.Code)
	})

	t.Run("transcription failure carries backend code", func(t *testing.T) {
		serviceErr := provider.NewServiceError("gemini", "api_error_429", stderrors.New("quota exceeded"))
		apiErr := toAPIError(&transcribe.Error{Message: serviceErr.Error(), Cause: serviceErr})
		assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus())
		assert.Equal(t, "Transcription failed: quota exceeded", apiErr.Message)
		assert.Equal(t, "api_error_429", apiErr.Code)
	})

	t.Run("session errors", func(t *testing.T) {
		assert.Equal(t, http.StatusUnprocessableEntity, toAPIError(session.ErrNoFile).HTTPStatus())
		assert.Equal(t, http.StatusConflict, toAPIError(session.ErrBusy).HTTPStatus())
		assert.Equal(t, http.StatusConflict, toAPIError(session.ErrDiscarded).HTTPStatus())
	})
}
