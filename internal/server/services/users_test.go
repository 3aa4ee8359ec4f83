package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	rm := repomanager.NewInMemoryRepositoryManager()
	s := newUserService(t, nil, rm)

	res, err := s.Register(ctx, "  alice ", "secret1", pubKey(1))
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.NotZero(t, res.UserID)
	assert.NotEmpty(t, res.AccessToken)
	assert.Len(t, res.RefreshToken, 64)

	id, err := s.tokens.Validate(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, id.UserID)

	_, err = s.Register(ctx, "alice", "secret2", pubKey(2))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	stored, err := s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.Equal(t, pubKey(1), stored.PublicKey)
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(t, nil, repomanager.NewInMemoryRepositoryManager())

	tests := []struct {
		name, username, password, key string
	}{
		{"empty username", "", "secret1", pubKey(1)},
		{"whitespace in username", "al ice", "secret1", pubKey(1)},
		{"short password", "alice", "12345", pubKey(1)},
		{"missing key", "alice", "secret1", ""},
		{"short key", "alice", "secret1", "AAAA"},
		{"bad base64", "alice", "secret1", "***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.username, tt.password, tt.key)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t, nil, repomanager.NewInMemoryRepositoryManager())
	_, err := s.Register(ctx, "alice", "secret1", pubKey(1))
	require.NoError(t, err)

	res, err := s.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)

	_, err = s.Login(ctx, "alice", "wrong!!")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_Rotates(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMock(t)
	rm := repomanager.NewInMemoryRepositoryManager()
	s := newUserService(t, db, rm)

	reg, err := s.Register(ctx, "alice", "secret1", pubKey(1))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	res, err := s.RefreshToken(ctx, reg.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, res.RefreshToken)
	assert.Equal(t, reg.UserID, res.UserID)

	_, err = rm.RefreshTokens(nil).Find(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorNotFound, "old token must be gone")

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = s.RefreshToken(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMock(t)
	rm := repomanager.NewInMemoryRepositoryManager()
	s := newUserService(t, db, rm)
	require.NoError(t, rm.RefreshTokens(nil).Create(ctx, 1, "old", time.Now().Add(-time.Minute)))

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.RefreshToken(ctx, "old")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

type failingTokens struct {
	refreshtokens.Repository
}

func (failingTokens) Find(context.Context, string) (*models.RefreshToken, error) {
	return nil, errors.New("db down")
}

type failingTokensManager struct {
	*repomanager.InMemoryRepositoryManager
}

func (failingTokensManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return failingTokens{} }

func TestRefreshToken_StoreError(t *testing.T) {
	db, mock := newSQLMock(t)
	s := newUserService(t, db, failingTokensManager{repomanager.NewInMemoryRepositoryManager()})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.RefreshToken(context.Background(), "any")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestListUsers_ExcludesCaller(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t, nil, repomanager.NewInMemoryRepositoryManager())
	alice, err := s.Register(ctx, "alice", "secret1", pubKey(1))
	require.NoError(t, err)
	_, err = s.Register(ctx, "bob", "secret2", pubKey(2))
	require.NoError(t, err)

	list, err := s.ListUsers(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].Username)
}
