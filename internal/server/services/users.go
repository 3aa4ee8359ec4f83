// Package services holds the server's business logic: accounts and tokens
// (UserService) and message storage with live notifications (MessageService).
package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/dmitrijs2005/gophchat/internal/server/auth"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/repomanager"
)

const (
	minPasswordLength = 6
	maxUsernameLength = 50
	publicKeyLength   = 32
	refreshTokenBytes = 32
)

// AuthResult is the outcome of Register, Login and RefreshToken.
type AuthResult struct {
	UserID       int64
	Username     string
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	db         *sql.DB
	rm         repomanager.RepositoryManager
	tokens     *auth.TokenManager
	argon      auth.ArgonParams
	refreshTTL time.Duration
	now        func() time.Time
}

func NewUserService(db *sql.DB, rm repomanager.RepositoryManager, tokens *auth.TokenManager, refreshTTL time.Duration) *UserService {
	return &UserService{
		db:         db,
		rm:         rm,
		tokens:     tokens,
		argon:      auth.DefaultArgon,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func validateRegistration(username, password, publicKey string) error {
	if username == "" || utf8.RuneCountInString(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be 1-%d characters", common.ErrorValidation, maxUsernameLength)
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return fmt.Errorf("%w: username must not contain whitespace", common.ErrorValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}
	key, err := base64.StdEncoding.DecodeString(publicKey)
	if err != nil || len(key) != publicKeyLength {
		return fmt.Errorf("%w: public key must be base64 of %d bytes", common.ErrorValidation, publicKeyLength)
	}
	return nil
}

// Register creates the account and logs it in.
func (s *UserService) Register(ctx context.Context, username, password, publicKey string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if err := validateRegistration(username, password, publicKey); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(s.argon, password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.rm.Users(s.db).Create(ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
		PublicKey:    publicKey,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(ctx, s.db, user)
}

// Login verifies the password. Unknown users and wrong passwords are both
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.rm.Users(s.db).GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	return s.issue(ctx, s.db, user)
}

// RefreshToken rotates a refresh token: the old one is deleted and a new
// pair is issued in the same transaction.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	var result *AuthResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tokens := s.rm.RefreshTokens(tx)

		stored, err := tokens.Find(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return err
		}
		if stored.ExpiresAt.Before(s.now()) {
			return common.ErrRefreshTokenExpired
		}

		if err := tokens.Delete(ctx, refreshToken); err != nil {
			return err
		}

		user, err := s.rm.Users(tx).GetByID(ctx, stored.UserID)
		if err != nil {
			return err
		}

		result, err = s.issue(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *UserService) issue(ctx context.Context, db dbx.DBTX, user *models.User) (*AuthResult, error) {
	access, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refresh, err := common.MakeRandHexString(refreshTokenBytes)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.rm.RefreshTokens(db).Create(ctx, user.ID, refresh, s.now().Add(s.refreshTTL)); err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{
		UserID:       user.ID,
		Username:     user.Username,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.rm.Users(s.db).GetByUsername(ctx, strings.TrimSpace(username))
}

// ListUsers returns every account except the caller, ordered by username.
func (s *UserService) ListUsers(ctx context.Context, callerID int64) ([]*models.User, error) {
	all, err := s.rm.Users(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.User, 0, len(all))
	for _, u := range all {
		if u.ID != callerID {
			result = append(result, u)
		}
	}
	return result, nil
}
