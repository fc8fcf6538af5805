package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speaker-scribe/internal/api/middleware"
	"speaker-scribe/internal/api/v1/services"
)

// TranscriptionHandler handles one-shot transcription endpoints
type TranscriptionHandler struct {
	service      services.TranscriptionService
	maxBodyBytes int64
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, maxBodyBytes int64) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
	}
}

// Create handles POST /api/v1/transcriptions
//
// @Summary Transcribe an audio file
// @Description Uploads an audio file and returns the speaker-annotated transcript without creating a session
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file, at most 20 MB"
// @Success 200 {object} dto.TranscriptionResponse "Transcript"
// @Failure 400 {object} errors.APIError "Malformed form"
// @Failure 422 {object} errors.APIError "File rejected"
// @Failure 502 {object} errors.APIError "Transcription failed"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Create(c *gin.Context) {
	candidate, err := BindCandidate(c, h.maxBodyBytes)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.TranscribeUpload(c.Request.Context(), candidate)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Provider handles GET /api/v1/provider
//
// @Summary Describe the transcription backend
// @Tags transcriptions
// @Produce json
// @Success 200 {object} dto.ProviderResponse "Configured backend"
// @Router /provider [get]
func (h *TranscriptionHandler) Provider(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ProviderInfo(c.Request.Context()))
}
