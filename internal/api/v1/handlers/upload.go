package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"speaker-scribe/internal/api/middleware"
	"speaker-scribe/internal/api/v1/services"
	"speaker-scribe/internal/app/session"
)

// BindCandidate reads the upload field. A body over maxBodyBytes becomes a
// candidate that fails the size check like any other oversized file.
func BindCandidate(c *gin.Context, maxBodyBytes int64) (session.Candidate, error) {
	fh, err := middleware.BindUpload(c, maxBodyBytes)
	if stderrors.Is(err, middleware.ErrBodyTooLarge) {
		return services.OversizedCandidate(c.Request.ContentLength), nil
	}
	if err != nil {
		return session.Candidate{}, err
	}
	return services.CandidateFromFile(fh), nil
}
