package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-agrigen/internal/asset"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
	"github.com/pgEdge/pgedge-agrigen/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated table over HTTP",
	Long: `Generate one table and serve it, its aggregations and exports over a
JSON API until interrupted. Every request sees the same table.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"listen address (default: :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	sess := newSession()
	sess.Snapshot()

	fetcher := asset.NewFetcher(cfg.Asset.URL, time.Duration(cfg.Asset.TimeoutSeconds)*time.Second)
	srv := server.New(server.Config{
		Addr:   cfg.Server.Addr,
		Report: reportOptions(),
		Debug:  cfg.LogLevel == "debug",
	}, sess, fetcher, server.NewMetrics())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
