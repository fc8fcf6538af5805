package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"speaker-scribe/internal/app"
	"speaker-scribe/internal/config"
)

const shutdownTimeout = 15 * time.Second

var (
	host string
	port string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "address to listen on (overrides SCRIBE_HOST)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides SCRIBE_PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription web page and JSON API",
	Long: `Start the transcription web page and JSON API

- GET / serves the upload page
- /api/v1 exposes sessions and one-shot transcriptions
- /health, /metrics and /swagger/index.html are served alongside`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		srv, cleanup, err := app.InitializeServer(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		errCh, err := srv.Start()
		if err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-quit:
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
