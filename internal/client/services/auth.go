// Package services contains application services for the GophChat client.
// This file defines the authentication service: register, login, session
// resumption and logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/cryptox"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

const (
	sessionKey      = "session"
	sessionNonceKey = "session_nonce"
)

// Account is the signed-in user together with the key pair derived from
// their credentials.
type Account struct {
	UserID   int64
	Username string
	Keys     *cryptox.KeyPair
}

// Wipe erases the private key.
func (a *Account) Wipe() {
	if a != nil && a.Keys != nil {
		a.Keys.Wipe()
	}
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register / Login: derive the key pair, authenticate and persist the
//     sealed session.
//   - Restore: reopen the persisted session; any failure clears it.
//   - Logout: forget tokens and the persisted session.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) (*Account, error)
	Login(ctx context.Context, username string, password []byte) (*Account, error)
	Restore(ctx context.Context) (*Account, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// storedSession is sealed with the machine key before it touches disk.
type storedSession struct {
	UserID       int64
	Username     string
	AccessToken  string
	RefreshToken string
	PrivateKey   []byte
	PublicKey    string
}

type authService struct {
	client     client.Client
	db         *sql.DB
	machineKey []byte
	keys       cryptox.KeyAgreement
	logger     logging.Logger

	mu      sync.Mutex
	current *storedSession
}

// NewAuthService constructs an AuthService bound to the given API client and
// local database. machineKey seals the persisted session.
func NewAuthService(c client.Client, db *sql.DB, machineKey []byte, l logging.Logger) AuthService {
	a := &authService{
		client:     c,
		db:         db,
		machineKey: machineKey,
		keys:       cryptox.HashChain{},
		logger:     logging.OrNop(l).With("module", "auth_service"),
	}
	c.OnTokensRefreshed(a.tokensRefreshed)
	return a
}

func (a *authService) Register(ctx context.Context, username string, password []byte) (*Account, error) {
	username = strings.TrimSpace(username)
	keys := a.keys.DeriveKeyPair(username, password)

	sess, err := a.client.Register(ctx, username, string(password), keys.PublicKey)
	if err != nil {
		keys.Wipe()
		return nil, err
	}
	return a.begin(ctx, sess, keys)
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*Account, error) {
	username = strings.TrimSpace(username)

	sess, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.begin(ctx, sess, a.keys.DeriveKeyPair(sess.Username, password))
}

func (a *authService) begin(ctx context.Context, sess client.Session, keys *cryptox.KeyPair) (*Account, error) {
	stored := &storedSession{
		UserID:       sess.UserID,
		Username:     sess.Username,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		PrivateKey:   append([]byte(nil), keys.PrivateKey...),
		PublicKey:    keys.PublicKey,
	}

	a.mu.Lock()
	a.current = stored
	a.mu.Unlock()

	// A session that cannot be saved only costs resumption.
	if err := a.saveSession(ctx, stored); err != nil {
		a.logger.Warn(ctx, "session not persisted", "error", err)
	}

	return &Account{UserID: sess.UserID, Username: sess.Username, Keys: keys}, nil
}

// saveSession seals s and writes ciphertext and nonce in one transaction.
func (a *authService) saveSession(ctx context.Context, s *storedSession) error {
	ct, nonce, err := cryptox.SealJSON(s, a.machineKey)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionKey, ct); err != nil {
			return err
		}
		return repo.Set(ctx, sessionNonceKey, nonce)
	})
}

func (a *authService) tokensRefreshed(access, refresh string) {
	a.mu.Lock()
	if a.current == nil {
		a.mu.Unlock()
		return
	}
	a.current.AccessToken = access
	a.current.RefreshToken = refresh
	snapshot := *a.current
	a.mu.Unlock()

	if err := a.saveSession(context.Background(), &snapshot); err != nil {
		a.logger.Warn(context.Background(), "refreshed tokens not persisted", "error", err)
	}
}

// Restore reopens the persisted session and proves it with an authenticated
// call. Returns client.ErrLocalDataNotAvailable when nothing is stored.
func (a *authService) Restore(ctx context.Context) (*Account, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	ct, err := repo.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, client.ErrLocalDataNotAvailable
		}
		return nil, err
	}
	nonce, err := repo.Get(ctx, sessionNonceKey)
	if err != nil {
		return nil, a.discard(ctx, err)
	}

	var stored storedSession
	if err := cryptox.OpenJSON(ct, nonce, a.machineKey, &stored); err != nil {
		return nil, a.discard(ctx, err)
	}

	a.client.SetTokens(stored.AccessToken, stored.RefreshToken)
	if _, _, err := a.client.UnreadCount(ctx); err != nil {
		a.client.SetTokens("", "")
		common.WipeByteArray(stored.PrivateKey)
		return nil, a.discard(ctx, err)
	}

	a.mu.Lock()
	a.current = &stored
	a.mu.Unlock()

	keys := &cryptox.KeyPair{PrivateKey: append([]byte(nil), stored.PrivateKey...), PublicKey: stored.PublicKey}
	return &Account{UserID: stored.UserID, Username: stored.Username, Keys: keys}, nil
}

func (a *authService) discard(ctx context.Context, cause error) error {
	if err := a.clearSession(ctx); err != nil {
		a.logger.Warn(ctx, "stale session not cleared", "error", err)
	}
	return fmt.Errorf("%w: %v", client.ErrLocalDataNotAvailable, cause)
}

func (a *authService) clearSession(ctx context.Context) error {
	return metadata.NewSQLiteRepository(a.db).Delete(ctx, sessionKey, sessionNonceKey)
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetTokens("", "")

	a.mu.Lock()
	if a.current != nil {
		common.WipeByteArray(a.current.PrivateKey)
		a.current = nil
	}
	a.mu.Unlock()

	return a.clearSession(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
