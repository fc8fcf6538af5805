package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speaker-scribe/internal/api/v1/dto"
	v1handlers "speaker-scribe/internal/api/v1/handlers"
	"speaker-scribe/internal/api/v1/services"
	"speaker-scribe/internal/app/audio"
)

const (
	// SessionCookie holds the browser's session id
	SessionCookie = "scribe_session"

	refreshSeconds = 2
)

// PageData is rendered by index.html
type PageData struct {
	Session        *dto.SessionResponse
	MaxFileSizeMB  int
	RefreshSeconds int
}

// PageHandler serves the single page and its form posts
type PageHandler struct {
	sessions     services.SessionService
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(sessions services.SessionService, maxBodyBytes int64, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		sessions:     sessions,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	sess := h.session(c)

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "index.html", PageData{
		Session:        sess,
		MaxFileSizeMB:  audio.MaxFileSizeMB,
		RefreshSeconds: refreshSeconds,
	})
}

// Upload handles POST /upload
func (h *PageHandler) Upload(c *gin.Context) {
	sess := h.session(c)

	candidate, err := v1handlers.BindCandidate(c, h.maxBodyBytes)
	if err != nil {
		// nothing was chosen, so the page stays as it was
		h.logger.Debug("upload without a file", zap.String("session_id", sess.ID), zap.Error(err))
		h.redirect(c)
		return
	}

	// a rejection is recorded on the session and shown on the page
	_, _ = h.sessions.SelectFile(c.Request.Context(), sess.ID, candidate)
	h.redirect(c)
}

// Transcribe handles POST /transcribe
func (h *PageHandler) Transcribe(c *gin.Context) {
	sess := h.session(c)

	if _, err := h.sessions.StartTranscription(c.Request.Context(), sess.ID); err != nil {
		h.logger.Debug("transcription not started", zap.String("session_id", sess.ID), zap.Error(err))
	}
	h.redirect(c)
}

// Clear handles POST /clear
func (h *PageHandler) Clear(c *gin.Context) {
	sess := h.session(c)

	_, _ = h.sessions.ClearSession(c.Request.Context(), sess.ID)
	h.redirect(c)
}

// session resolves the cookie to a session, issuing a new cookie when needed
func (h *PageHandler) session(c *gin.Context) *dto.SessionResponse {
	id, _ := c.Cookie(SessionCookie)

	sess, created := h.sessions.EnsureSession(c.Request.Context(), id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

func (h *PageHandler) redirect(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
