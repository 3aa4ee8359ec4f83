// Package server wires storage, services and the two network endpoints of
// the chat server (gRPC API and push channel) and runs them until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/auth"
	"github.com/dmitrijs2005/gophchat/internal/server/config"
	"github.com/dmitrijs2005/gophchat/internal/server/push"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophchat/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophchat/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	grpcServer *gs.GRPCServer
	pushServer *push.Server
}

// NewApp connects to PostgreSQL, applies migrations and builds the servers.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return newApp(c, l, db, rm), nil
}

func newApp(c *config.Config, l logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	l = logging.OrNop(l)

	tokens := auth.NewTokenManager(c.SecretKey, c.TokenIssuer, c.TokenAudience, c.AccessTokenValidityDuration)
	registry := push.NewRegistry(l)

	us := services.NewUserService(db, rm, tokens, c.RefreshTokenValidityDuration)
	ms := services.NewMessageService(db, rm, registry, l)

	return &App{
		config:     c,
		logger:     l,
		db:         db,
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, l, us, ms, tokens),
		pushServer: push.NewServer(c.EndpointAddrPush, push.NewHandler(registry, tokens, l), registry, l),
	}
}

// Run serves until ctx is cancelled or a termination signal arrives. A
// failure of either endpoint stops the other.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpcServer.Run(ctx) })
	g.Go(func() error { return app.pushServer.Run(ctx) })

	err := g.Wait()

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Error(context.Background(), "db close", "error", cerr)
		}
	}

	app.logger.Info(context.Background(), "App stopped")
	return err
}
