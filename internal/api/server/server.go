package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "speaker-scribe/docs" // swagger docs
	"speaker-scribe/internal/api/middleware"
	v1routes "speaker-scribe/internal/api/v1/routes"
	"speaker-scribe/internal/api/v1/services"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/web"
)

// Config represents API server configuration
type Config struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
	MaxBodyBytes int64
}

// Server represents the HTTP server for both the pages and the JSON API
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	store      *session.Store
	logger     *zap.Logger

	stopJanitor context.CancelFunc
	janitorDone chan struct{}
}

// NewServer creates a new server
func NewServer(
	config Config,
	store *session.Store,
	transcriptions services.TranscriptionService,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) (*Server, error) {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"sessions":  store.Len(),
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	sessionService := services.NewSessionService(store, logger)

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, &v1routes.ServiceContainer{
			SessionService:       sessionService,
			TranscriptionService: transcriptions,
			MaxBodyBytes:         config.MaxBodyBytes,
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := web.Register(router, sessionService, config.MaxBodyBytes, logger); err != nil {
		return nil, err
	}

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(config.Host, config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		store:      store,
		logger:     logger,
	}, nil
}

// Start starts the listener and the session janitor. Listener failures after
// startup are delivered on the returned channel.
func (s *Server) Start() (<-chan error, error) {
	s.logger.Info("Starting server",
		zap.String("host", s.config.Host),
		zap.String("port", s.config.Port),
		zap.String("environment", s.config.Environment),
	)

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, err
	}

	janitorCtx, cancel := context.WithCancel(context.Background())
	s.stopJanitor = cancel
	s.janitorDone = make(chan struct{})
	go func() {
		defer close(s.janitorDone)
		_ = s.store.Run(janitorCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped unexpectedly", zap.Error(err))
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info("Server started successfully", zap.String("address", listener.Addr().String()))
	return errCh, nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if s.stopJanitor != nil {
		s.stopJanitor()
		<-s.janitorDone
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("Server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
