package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/triage/internal/config"
	"github.com/papapumpkin/triage/internal/server"
	"github.com/papapumpkin/triage/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ranking API over HTTP",
	Long: `Serve exposes the ranking engine as a JSON API:

  POST /api/tasks/analyze   rank a batch {tasks, strategy, weights}
  POST /api/tasks/suggest   rank and truncate {tasks, strategy, limit}
  GET  /healthz             liveness check

The server holds no state; every request carries its own batch.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.ListenAddr
	}

	var emitter *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		var err error
		emitter, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}

	srv := server.New(addr, emitter)
	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "triage API listening on http://%s\n", srv.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(cmd.ErrOrStderr(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
