package routes

import (
	"github.com/gin-gonic/gin"

	"speaker-scribe/internal/api/middleware"
	"speaker-scribe/internal/api/v1/handlers"
	"speaker-scribe/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	sessionHandler := handlers.NewSessionHandler(container.SessionService, container.MaxBodyBytes)
	sessions := router.Group("/sessions")
	{
		sessions.POST("", sessionHandler.Create)
		sessions.GET("/:id", sessionHandler.Get)
		sessions.PUT("/:id/file", sessionHandler.SelectFile)
		sessions.POST("/:id/transcribe", sessionHandler.Transcribe)
		sessions.POST("/:id/clear", sessionHandler.Clear)
		sessions.DELETE("/:id", sessionHandler.Delete)
	}

	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService, container.MaxBodyBytes)
	router.POST("/transcriptions", transcriptionHandler.Create)
	router.GET("/provider", transcriptionHandler.Provider)
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	SessionService       services.SessionService
	TranscriptionService services.TranscriptionService
	MaxBodyBytes         int64
}
