// Package grpc exposes the user and message services as the ChatService
// gRPC API.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	pb "github.com/dmitrijs2005/gophchat/internal/proto"
	"github.com/dmitrijs2005/gophchat/internal/server/auth"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
	"github.com/dmitrijs2005/gophchat/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username, password, publicKey string) (*services.AuthResult, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.AuthResult, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context, callerID int64) ([]*models.User, error)
}

type messageSvc interface {
	Send(ctx context.Context, senderID int64, receiverUsername, encryptedContent string) (*models.Message, error)
	Received(ctx context.Context, userID int64) ([]*models.Message, error)
	Sent(ctx context.Context, userID int64) ([]*models.Message, error)
	Update(ctx context.Context, userID, messageID int64, encryptedContent string) (*models.Message, error)
	Delete(ctx context.Context, userID, messageID int64) error
	MarkRead(ctx context.Context, userID, messageID int64) error
	UnreadCount(ctx context.Context, userID int64) (int, map[int64]int, error)
}

type tokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

type GRPCServer struct {
	pb.UnimplementedChatServiceServer

	address  string
	users    userSvc
	messages messageSvc
	tokens   tokenValidator
	logger   logging.Logger
	now      func() time.Time
}

var _ pb.ChatServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us userSvc, ms messageSvc, tokens tokenValidator) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   logging.OrNop(l).With("module", "grpc_server"),
		users:    us,
		messages: ms,
		tokens:   tokens,
		now:      time.Now,
	}
}

// NewServer builds a grpc.Server with the auth interceptor and the
// ChatService registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterChatServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
