package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophchat/internal/server/auth"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

var fastArgon = auth.ArgonParams{Memory: 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

func pubKey(b byte) string {
	k := make([]byte, 32)
	k[0] = b
	return base64.StdEncoding.EncodeToString(k)
}

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	s := NewUserService(db, rm, auth.NewTokenManager("k", "GophChat", "GophChatUsers", time.Hour), 2*time.Hour)
	s.argon = fastArgon
	return s
}

type notification struct {
	kind      string
	userID    int64
	messageID int64
	sender    string
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []notification
}

func (n *recordingNotifier) add(x notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, x)
}

func (n *recordingNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.got...)
}

func (n *recordingNotifier) NotifyNewMessage(_ context.Context, receiverID, messageID int64, sender string, _ time.Time) {
	n.add(notification{"new_message", receiverID, messageID, sender})
}

func (n *recordingNotifier) NotifyMessageRead(_ context.Context, senderID, messageID int64) {
	n.add(notification{"message_read", senderID, messageID, ""})
}

func (n *recordingNotifier) NotifyMessageDeleted(_ context.Context, receiverID, messageID int64) {
	n.add(notification{"message_deleted", receiverID, messageID, ""})
}

func (n *recordingNotifier) NotifyMessageEdited(_ context.Context, receiverID, messageID int64) {
	n.add(notification{"message_edited", receiverID, messageID, ""})
}
