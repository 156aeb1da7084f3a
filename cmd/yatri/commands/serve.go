// ABOUTME: Serve command runs the HTTP API server
// ABOUTME: Starts even when dependencies are down so /api/health can report
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/internal/api"
)

var serveAddr string

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Exposes POST /api/chat for travel questions and GET /api/health for
dependency status. The server starts even when dependencies are
unavailable; chat requests then return 503 until a restart with
healthy dependencies.`,
		RunE: runServe,
		Example: `  # Serve on the default address
  yatri serve

  # Serve on a custom address
  yatri serve --addr 0.0.0.0:8080`,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from YATRI_HTTP_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	engine := a.engine(ctx)
	if !engine.Ready() {
		logger.Warn("starting degraded: pipeline not initialized", zap.Error(engine.InitErr()))
	}

	addr := serveAddr
	if addr == "" {
		addr = a.cfg.HTTPAddr
	}

	return api.NewServer(engine, logger).Run(ctx, addr)
}
