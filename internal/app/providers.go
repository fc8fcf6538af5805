package app

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"speaker-scribe/internal/api/server"
	"speaker-scribe/internal/api/v1/services"
	_ "speaker-scribe/internal/app/api/gemini"
	_ "speaker-scribe/internal/app/api/openai/whisper"
	"speaker-scribe/internal/app/api/provider"
	"speaker-scribe/internal/app/common"
	"speaker-scribe/internal/app/converter"
	"speaker-scribe/internal/app/metrics"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/internal/app/transcribe"
	"speaker-scribe/internal/config"
)

const (
	readTimeout = 30 * time.Second
	idleTimeout = 120 * time.Second
	// added on top of the provider timeout so a synchronous API call can finish writing
	writeGrace = 30 * time.Second
)

// transcriberSet builds everything needed to talk to the configured backend
var transcriberSet = wire.NewSet(
	provideLogger,
	provideRegistry,
	provideMetrics,
	provideTranscriber,
	provideClient,
	wire.Bind(new(session.Client), new(*transcribe.Client)),
)

// ServerSet builds the HTTP server and its session store
var ServerSet = wire.NewSet(
	transcriberSet,
	provideStore,
	services.NewTranscriptionService,
	provideServer,
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
)

// ConverterSet builds the batch converter used by the CLI
var ConverterSet = wire.NewSet(
	transcriberSet,
	converter.NewProgressManager,
	converter.NewConverter,
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := common.NewLogger(cfg.IsDevelopment(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

func provideTranscriber(cfg *config.Config) (provider.Transcriber, error) {
	return provider.NewTranscriber(cfg.Provider.Name, provider.Settings{
		APIKey:  cfg.Provider.APIKey,
		BaseURL: cfg.Provider.BaseURL,
		Model:   cfg.Provider.Model,
		Timeout: cfg.Provider.Timeout,
	})
}

func provideClient(cfg *config.Config, transcriber provider.Transcriber, m *metrics.Metrics, logger *zap.Logger) *transcribe.Client {
	return transcribe.NewClient(transcriber, cfg.Provider.Model, m, logger)
}

func provideStore(cfg *config.Config, client session.Client, m *metrics.Metrics, logger *zap.Logger) *session.Store {
	return session.NewStore(client, session.Config{TTL: cfg.Session.TTL}, m, logger)
}

func provideServer(
	cfg *config.Config,
	store *session.Store,
	transcriptions services.TranscriptionService,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) (*server.Server, error) {
	return server.NewServer(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  readTimeout,
		WriteTimeout: cfg.Provider.Timeout + writeGrace,
		IdleTimeout:  idleTimeout,
		Environment:  cfg.Environment,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}, store, transcriptions, gatherer, logger)
}
