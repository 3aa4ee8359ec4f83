package cli

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
	"github.com/dmitrijs2005/gophchat/internal/client/chat"
	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
	"github.com/dmitrijs2005/gophchat/internal/client/push"
	"github.com/dmitrijs2005/gophchat/internal/client/services"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const defaultStatusInterval = 30 * time.Second

type App struct {
	config      *config.Config
	client      client.Client
	authService services.AuthService
	reader      *LineReader
	out         io.Writer
	logger      logging.Logger

	account  *services.Account
	signedIn atomic.Bool

	// Written by the status watcher.
	mu     sync.Mutex
	mode   Mode
	unread int
}

func NewApp(c *config.Config, api client.Client, as services.AuthService, in io.Reader, out io.Writer, l logging.Logger) *App {
	return &App{
		config:      c,
		client:      api,
		authService: as,
		reader:      NewLineReader(in),
		out:         out,
		logger:      logging.OrNop(l).With("module", "cli"),
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	defer func() { a.account.Wipe() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) setUnread(n int) {
	a.mu.Lock()
	a.unread = n
	a.mu.Unlock()
}

// refreshStatus updates mode and, once signed in, the unread badge.
func (a *App) refreshStatus(ctx context.Context) {
	if !a.signedIn.Load() {
		if err := a.authService.Ping(ctx); err != nil {
			a.setMode(ctx, ModeOffline)
			return
		}
		a.setMode(ctx, ModeOnline)
		return
	}

	total, _, err := a.client.UnreadCount(ctx)
	if err != nil {
		a.logger.Debug(ctx, "unread count failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setUnread(total)
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher keeps mode and the unread badge current until
// ctx ends. It never writes to the console.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultStatusInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			a.refreshStatus(cctx)
			cancel()

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) accessToken() string {
	access, _ := a.client.Tokens()
	return access
}

func (a *App) pushFactory() chat.PushFactory {
	if a.config == nil || a.config.PushEndpointURL == "" {
		return nil
	}
	return func(onEvent func(chatapi.Event), onDisconnect func(error)) chat.PushChannel {
		return push.New(a.config.PushEndpointURL, a.config.HandshakeTimeout, onEvent, onDisconnect, a.logger)
	}
}
