package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server"
	"github.com/dmitrijs2005/gophchat/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, sync, err := logging.NewProductionZap(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer sync()

	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped with error", "error", err)
	}
}
