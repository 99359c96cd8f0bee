package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/league-admin/internal/config"
	"github.com/preston-bernstein/league-admin/internal/logging"
	"github.com/preston-bernstein/league-admin/internal/server"
)

const (
	appName    = "league-admin"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := newLogger(cfg.Log, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger(cfg config.LogConfig, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Level,
		Format:  cfg.Format,
		Service: appName,
		Version: appVersion,
		Output:  out,
	})
}
