package web

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speaker-scribe/internal/api/v1/services"
	"speaker-scribe/web/handlers"
)

// Register mounts the browser pages and their assets on router
func Register(router *gin.Engine, sessions services.SessionService, maxBodyBytes int64, logger *zap.Logger) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	static, err := StaticFS()
	if err != nil {
		return err
	}

	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", static)

	page := handlers.NewPageHandler(sessions, maxBodyBytes, logger)
	router.GET("/", page.Index)
	router.POST("/upload", page.Upload)
	router.POST("/transcribe", page.Transcribe)
	router.POST("/clear", page.Clear)

	return nil
}
