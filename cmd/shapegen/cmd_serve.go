package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shapegen/internal/config"
	"shapegen/internal/generator"
	"shapegen/internal/logging"
	"shapegen/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shape API over HTTP",
	Long: `Starts the HTTP API:

  POST /shape/parse   {"command": "Draw a square with a side length of 200"}
  GET  /health
  GET  /shapes

SIGINT or SIGTERM shut the server down gracefully. When the config file
exists it is watched and log level changes apply without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := currentConfig()
	opts := server.OptionsFromConfig(c)
	if serveAddr != "" {
		opts.Addr = serveAddr
	}

	log := logger
	if log == nil {
		log = zap.NewNop()
	}

	if w := startConfigWatcher(ctx, log); w != nil {
		defer w.Stop()
	}

	srv := server.New(generator.New(generator.WithSource("api")), log, opts)
	uptime := logging.StartTimer(logging.CategoryBoot, "serve")
	defer uptime.StopWithInfo()
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// startConfigWatcher watches the config file when it exists. Failures are
// logged and serving continues without live reload.
func startConfigWatcher(ctx context.Context, log *zap.Logger) *config.Watcher {
	path := resolvedConfigPath()
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	w, err := config.NewWatcher(path, func(c *config.Config) {
		applyLogLevel(c)
		log.Info("config reloaded", zap.String("path", path), zap.String("log_level", c.Logging.Level))
	})
	if err != nil {
		log.Warn("config watcher unavailable", zap.Error(err))
		return nil
	}
	if err := w.Start(ctx); err != nil {
		log.Warn("config watcher unavailable", zap.Error(err))
		w.Stop()
		return nil
	}
	logging.Config("watching %s for changes", w.Path())
	return w
}
