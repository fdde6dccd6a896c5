package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegorighi/yukam-front/internal/client/cli"
	"github.com/diegorighi/yukam-front/internal/client/config"
	"github.com/diegorighi/yukam-front/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "client stopped with error", "error", err)
		os.Exit(1)
	}
}
