package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
	"github.com/dmitrijs2005/gophchat/internal/client/services"
	"github.com/dmitrijs2005/gophchat/internal/cryptox"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	account *services.Account

	restoreErr error

	logoutCalled bool
	logoutErr    error

	pingErr     error
	closeCalled bool
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) (*services.Account, error) {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	if f.regErr != nil {
		return nil, f.regErr
	}
	return f.account, nil
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*services.Account, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.account, nil
}

func (f *fakeAuth) Restore(context.Context) (*services.Account, error) {
	if f.restoreErr != nil {
		return nil, f.restoreErr
	}
	return f.account, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }

func (f *fakeAuth) Close(context.Context) error {
	f.closeCalled = true
	return nil
}

// fakeClient serves a fixed user list and history.
type fakeClient struct {
	client.Client

	mu       sync.Mutex
	users    []chatapi.User
	listErr  error
	unread   int
	bySender map[int64]int
	countErr error
	received []chatapi.Message
	marked   []int64
}

func (f *fakeClient) Tokens() (string, string) { return "access", "refresh" }

func (f *fakeClient) ListUsers(context.Context) ([]chatapi.User, error) {
	return append([]chatapi.User(nil), f.users...), f.listErr
}

func (f *fakeClient) GetUser(_ context.Context, username string) (chatapi.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return chatapi.User{}, client.ErrNotFound
}

func (f *fakeClient) UnreadCount(context.Context) (int, map[int64]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread, f.bySender, f.countErr
}

func (f *fakeClient) setUnread(n int) {
	f.mu.Lock()
	f.unread = n
	f.mu.Unlock()
}

func (f *fakeClient) ReceivedMessages(context.Context) ([]chatapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]chatapi.Message(nil), f.received...), nil
}

func (f *fakeClient) SentMessages(context.Context) ([]chatapi.Message, error) {
	return nil, nil
}

func (f *fakeClient) MarkRead(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, id)
	return nil
}

func account(name string, id int64) *services.Account {
	return &services.Account{UserID: id, Username: name, Keys: cryptox.DeriveKeyPair(name, []byte("pw-"+name))}
}

func newTestApp(input string, auth *fakeAuth, api *fakeClient) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PushEndpointURL = ""
	return NewApp(cfg, api, auth, strings.NewReader(input), &out, logging.Nop{}), &out
}
