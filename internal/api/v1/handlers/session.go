package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speaker-scribe/internal/api/middleware"
	"speaker-scribe/internal/api/v1/services"
)

// SessionHandler handles session-related API endpoints
type SessionHandler struct {
	service      services.SessionService
	maxBodyBytes int64
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service services.SessionService, maxBodyBytes int64) *SessionHandler {
	return &SessionHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
	}
}

// Create handles POST /api/v1/sessions
//
// @Summary Create a session
// @Description Starts a new idle upload/transcribe session
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse "Session created"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	response, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Get handles GET /api/v1/sessions/:id
//
// @Summary Get a session
// @Description Returns the current state of a session, including the view flags a client renders from
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Success 200 {object} dto.SessionResponse "Session state"
// @Failure 404 {object} errors.APIError "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	response, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SelectFile handles PUT /api/v1/sessions/:id/file
//
// @Summary Select an audio file
// @Description Offers an audio file to the session. Files over 20 MB or without an audio/* type are rejected and no file is held afterwards.
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Param file formData file true "Audio file; only the first file is used"
// @Success 200 {object} dto.SessionResponse "File accepted"
// @Failure 400 {object} errors.APIError "Malformed form"
// @Failure 404 {object} errors.APIError "Session not found"
// @Failure 422 {object} errors.APIError "File rejected"
// @Router /sessions/{id}/file [put]
func (h *SessionHandler) SelectFile(c *gin.Context) {
	candidate, err := BindCandidate(c, h.maxBodyBytes)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SelectFile(c.Request.Context(), c.Param("id"), candidate)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Transcribe handles POST /api/v1/sessions/:id/transcribe
//
// @Summary Transcribe the selected file
// @Description Sends the held file to the model once and waits for the speaker-annotated transcript
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Success 200 {object} dto.SessionResponse "Transcript ready"
// @Failure 404 {object} errors.APIError "Session not found"
// @Failure 409 {object} errors.APIError "A transcription is already in progress"
// @Failure 422 {object} errors.APIError "No file selected"
// @Failure 502 {object} errors.APIError "Transcription failed"
// @Router /sessions/{id}/transcribe [post]
func (h *SessionHandler) Transcribe(c *gin.Context) {
	response, err := h.service.Transcribe(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Clear handles POST /api/v1/sessions/:id/clear
//
// @Summary Clear a session
// @Description Drops the file, transcript and error. A transcription still in flight is discarded when it returns.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Success 200 {object} dto.SessionResponse "Session cleared"
// @Failure 404 {object} errors.APIError "Session not found"
// @Router /sessions/{id}/clear [post]
func (h *SessionHandler) Clear(c *gin.Context) {
	response, err := h.service.ClearSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/sessions/:id
//
// @Summary Delete a session
// @Tags sessions
// @Param id path string true "Session ID" format(uuid)
// @Success 204 "Session deleted"
// @Failure 404 {object} errors.APIError "Session not found"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
