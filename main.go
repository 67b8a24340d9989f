package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/clay-target-club/claybot/app"
	"github.com/clay-target-club/claybot/config"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_FILE")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := &app.App{}
	if err := application.Initialize(ctx, cfg, version); err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		application.Observability.Logger.Error("application stopped", "error", err)
		return
	}

	application.Observability.Logger.Info("application shut down gracefully")
}
