package client

import (
	"context"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
)

// Session is the identity and token pair returned by Register and Login.
type Session struct {
	UserID       int64
	Username     string
	AccessToken  string
	RefreshToken string
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username, password, publicKey string) (Session, error)
	Login(ctx context.Context, username, password string) (Session, error)
	SetTokens(access, refresh string)
	Tokens() (access, refresh string)
	OnTokensRefreshed(fn func(access, refresh string))

	ListUsers(ctx context.Context) ([]chatapi.User, error)
	GetUser(ctx context.Context, username string) (chatapi.User, error)
	SendMessage(ctx context.Context, receiver, envelope string) (chatapi.Message, error)
	ReceivedMessages(ctx context.Context) ([]chatapi.Message, error)
	SentMessages(ctx context.Context) ([]chatapi.Message, error)
	UpdateMessage(ctx context.Context, messageID int64, envelope string) (chatapi.Message, error)
	DeleteMessage(ctx context.Context, messageID int64) error
	MarkRead(ctx context.Context, messageID int64) error
	UnreadCount(ctx context.Context) (int, map[int64]int, error)
}
