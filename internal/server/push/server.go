package push

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// Server runs the push HTTP endpoint until its context ends.
type Server struct {
	address  string
	handler  *Handler
	registry *Registry
	logger   logging.Logger
}

func NewServer(address string, h *Handler, reg *Registry, l logging.Logger) *Server {
	return &Server{
		address:  address,
		handler:  h,
		registry: reg,
		logger:   logging.OrNop(l).With("module", "push_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:     s.handler.Routes(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping push server...")
		// Hijacked WebSocket connections are not tracked by Shutdown.
		s.registry.CloseAll()
		_ = srv.Shutdown(context.WithoutCancel(ctx))
	}()

	s.logger.Info(ctx, "Starting push server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
