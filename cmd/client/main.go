package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophchat/internal/client/cli"
	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
	"github.com/dmitrijs2005/gophchat/internal/client/services"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// stderr keeps diagnostics out of the conversation transcript.
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	apiClient, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	as := services.NewAuthService(apiClient, db, services.LocalMachineKey(), logger)

	app := cli.NewApp(cfg, apiClient, as, os.Stdin, os.Stdout, logger)
	app.Run(ctx)
}
