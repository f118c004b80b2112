package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/webue/webue-client/internal/app"
	"github.com/webue/webue-client/internal/config"
	"github.com/webue/webue-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "webuectl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.DebugObj("webuectl starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console, err := app.NewConsole(cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize console", "error", err)
		return err
	}
	defer console.Close()

	return app.NewRootCommand(console).ExecuteContext(ctx)
}
