package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/go-softwarelab/common/docs/internal/config"
	"github.com/go-softwarelab/common/docs/internal/logger"
	"github.com/go-softwarelab/common/docs/internal/server"
	"github.com/go-softwarelab/common/docs/internal/site"
	"github.com/go-softwarelab/common/docs/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation site over HTTP",
	Long: `Starts the HTTP server. The listen address, timeouts, rate limit and
telemetry are read from the environment (DOCSITE_*, OTEL_*).

The server runs until it receives SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// serveOptions assembles the application graph.
func serveOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		tracing.Module,

		site.Module,
		server.Module,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(serveOptions()...)
	if err := app.Err(); err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	startCtx, cancel := context.WithTimeout(cmd.Context(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	select {
	case <-cmd.Context().Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop application: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
