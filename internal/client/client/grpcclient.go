package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
	"github.com/dmitrijs2005/gophchat/internal/common"
	pb "github.com/dmitrijs2005/gophchat/internal/proto"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ChatServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	onRefresh    func(access, refresh string)

	refreshGroup singleflight.Group
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, refreshes the pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if chatapi.IsPublicMethod(method) {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	used, _ := s.Tokens()
	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	fresh, rerr := s.refresh(ctx, used)
	if rerr != nil {
		return err
	}

	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refresh exchanges the refresh token for a new pair. Concurrent callers
// share one request, and a caller whose token was already replaced just
// picks up the current one.
func (s *GRPCClient) refresh(ctx context.Context, expired string) (string, error) {
	v, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		access, refresh := s.Tokens()
		if access != expired {
			return access, nil
		}
		if refresh == "" {
			return "", ErrUnauthorized
		}

		resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
		if err != nil {
			return "", err
		}

		s.mu.Lock()
		s.accessToken = resp.AccessToken
		s.refreshToken = resp.RefreshToken
		hook := s.onRefresh
		s.mu.Unlock()

		if hook != nil {
			hook(resp.AccessToken, resp.RefreshToken)
		}
		return resp.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// NewGRPCClient connects to the API at endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}
	conn, err := grpc.NewClient(s.endpointURL, append(opts, extra...)...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChatServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

// OnTokensRefreshed registers fn to run after every successful refresh.
func (s *GRPCClient) OnTokensRefreshed(fn func(access, refresh string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) authenticated(resp *pb.AuthResponse) Session {
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return Session{
		UserID:       resp.UserId,
		Username:     resp.Username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
}

func (s *GRPCClient) Register(ctx context.Context, username, password, publicKey string) (Session, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password, PublicKey: publicKey})
	if err != nil {
		return Session{}, s.mapError(err)
	}
	return s.authenticated(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (Session, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return Session{}, s.mapError(err)
	}
	return s.authenticated(resp), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]chatapi.User, error) {
	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	users := make([]chatapi.User, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, fromUser(u))
	}
	return users, nil
}

func (s *GRPCClient) GetUser(ctx context.Context, username string) (chatapi.User, error) {
	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{Username: username})
	if err != nil {
		return chatapi.User{}, s.mapError(err)
	}
	return fromUser(resp.User), nil
}

func (s *GRPCClient) SendMessage(ctx context.Context, receiver, envelope string) (chatapi.Message, error) {
	resp, err := s.client.SendMessage(ctx, &pb.SendMessageRequest{ReceiverUsername: receiver, EncryptedContent: envelope})
	if err != nil {
		return chatapi.Message{}, s.mapError(err)
	}
	return fromMessage(resp.Message), nil
}

func (s *GRPCClient) ReceivedMessages(ctx context.Context) ([]chatapi.Message, error) {
	resp, err := s.client.ReceivedMessages(ctx, &pb.ListMessagesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromMessages(resp.Messages), nil
}

func (s *GRPCClient) SentMessages(ctx context.Context) ([]chatapi.Message, error) {
	resp, err := s.client.SentMessages(ctx, &pb.ListMessagesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromMessages(resp.Messages), nil
}

func (s *GRPCClient) UpdateMessage(ctx context.Context, messageID int64, envelope string) (chatapi.Message, error) {
	resp, err := s.client.UpdateMessage(ctx, &pb.UpdateMessageRequest{MessageId: messageID, EncryptedContent: envelope})
	if err != nil {
		return chatapi.Message{}, s.mapError(err)
	}
	return fromMessage(resp.Message), nil
}

func (s *GRPCClient) DeleteMessage(ctx context.Context, messageID int64) error {
	_, err := s.client.DeleteMessage(ctx, &pb.MessageIDRequest{MessageId: messageID})
	return s.mapError(err)
}

func (s *GRPCClient) MarkRead(ctx context.Context, messageID int64) error {
	_, err := s.client.MarkRead(ctx, &pb.MessageIDRequest{MessageId: messageID})
	return s.mapError(err)
}

func (s *GRPCClient) UnreadCount(ctx context.Context) (int, map[int64]int, error) {
	resp, err := s.client.UnreadCount(ctx, &pb.UnreadCountRequest{})
	if err != nil {
		return 0, nil, s.mapError(err)
	}
	bySender := make(map[int64]int, len(resp.BySender))
	for _, u := range resp.BySender {
		bySender[u.SenderId] += int(u.Count)
	}
	return int(resp.Total), bySender, nil
}

func fromUser(u *pb.User) chatapi.User {
	return chatapi.User{ID: u.GetId(), Username: u.GetUsername(), PublicKey: u.GetPublicKey()}
}

func fromMessage(m *pb.Message) chatapi.Message {
	msg := chatapi.Message{
		ID:               m.GetId(),
		SenderID:         m.GetSenderId(),
		SenderUsername:   m.GetSenderUsername(),
		ReceiverID:       m.GetReceiverId(),
		ReceiverUsername: m.GetReceiverUsername(),
		EncryptedContent: m.GetEncryptedContent(),
		IsRead:           m.GetIsRead(),
		IsEdited:         m.GetIsEdited(),
	}
	if m.GetSentAt() != nil {
		msg.SentAt = m.GetSentAt().AsTime()
	}
	return msg
}

func fromMessages(in []*pb.Message) []chatapi.Message {
	out := make([]chatapi.Message, 0, len(in))
	for _, m := range in {
		out = append(out, fromMessage(m))
	}
	return out
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
