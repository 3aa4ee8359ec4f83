package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gophchat/internal/proto"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
	"github.com/dmitrijs2005/gophchat/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func authResponse(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		UserId:       r.UserID,
		Username:     r.Username,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
}

func toUser(u *models.User) *pb.User {
	return &pb.User{Id: u.ID, Username: u.Username, PublicKey: u.PublicKey}
}

func toMessage(m *models.Message) *pb.Message {
	return &pb.Message{
		Id:               m.ID,
		SenderId:         m.SenderID,
		SenderUsername:   m.SenderUsername,
		ReceiverId:       m.ReceiverID,
		ReceiverUsername: m.ReceiverUsername,
		EncryptedContent: m.EncryptedContent,
		SentAt:           timestamppb.New(m.SentAt),
		IsRead:           m.IsRead,
		IsEdited:         m.IsEdited,
	}
}

func toMessages(in []*models.Message) []*pb.Message {
	out := make([]*pb.Message, 0, len(in))
	for _, m := range in {
		out = append(out, toMessage(m))
	}
	return out
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	s.logger.Info(ctx, "Registration request", "username", req.Username)

	res, err := s.users.Register(ctx, req.Username, req.Password, req.PublicKey)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", res.Username, "user_id", res.UserID)
	return authResponse(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return authResponse(res), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.AuthResponse, error) {
	res, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return authResponse(res), nil
}

func (s *GRPCServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx, id.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListUsersResponse{Users: make([]*pb.User, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toUser(u))
	}
	return resp, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	u, err := s.users.GetUser(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetUserResponse{User: toUser(u)}, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageResponse, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.Send(ctx, id.UserID, req.ReceiverUsername, req.EncryptedContent)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: toMessage(msg)}, nil
}

func (s *GRPCServer) ReceivedMessages(ctx context.Context, _ *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messages.Received(ctx, id.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListMessagesResponse{Messages: toMessages(msgs)}, nil
}

func (s *GRPCServer) SentMessages(ctx context.Context, _ *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messages.Sent(ctx, id.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListMessagesResponse{Messages: toMessages(msgs)}, nil
}

func (s *GRPCServer) UpdateMessage(ctx context.Context, req *pb.UpdateMessageRequest) (*pb.MessageResponse, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.Update(ctx, id.UserID, req.MessageId, req.EncryptedContent)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: toMessage(msg)}, nil
}

func (s *GRPCServer) DeleteMessage(ctx context.Context, req *pb.MessageIDRequest) (*pb.Empty, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.messages.Delete(ctx, id.UserID, req.MessageId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) MarkRead(ctx context.Context, req *pb.MessageIDRequest) (*pb.Empty, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.messages.MarkRead(ctx, id.UserID, req.MessageId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) UnreadCount(ctx context.Context, _ *pb.UnreadCountRequest) (*pb.UnreadCountResponse, error) {
	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	total, bySender, err := s.messages.UnreadCount(ctx, id.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.UnreadCountResponse{Total: int32(total)}
	for sender, n := range bySender {
		resp.BySender = append(resp.BySender, &pb.SenderUnread{SenderId: sender, Count: int32(n)})
	}
	return resp, nil
}
