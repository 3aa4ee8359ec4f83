package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users    *UserService
	messages *MessageService
	notifier *recordingNotifier
	alice    *AuthResult
	bob      *AuthResult
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rm := repomanager.NewInMemoryRepositoryManager()
	n := &recordingNotifier{}
	f := &fixture{
		users:    newUserService(t, nil, rm),
		messages: NewMessageService(nil, rm, n, logging.Nop{}),
		notifier: n,
	}
	var err error
	f.alice, err = f.users.Register(context.Background(), "alice", "secret1", pubKey(1))
	require.NoError(t, err)
	f.bob, err = f.users.Register(context.Background(), "bob", "secret2", pubKey(2))
	require.NoError(t, err)
	return f
}

func TestSend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.messages.Send(ctx, f.alice.UserID, "bob", "envelope")
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.SenderUsername)
	assert.Equal(t, "bob", msg.ReceiverUsername)
	assert.False(t, msg.IsRead)

	assert.Equal(t, []notification{{"new_message", f.bob.UserID, msg.ID, "alice"}}, f.notifier.all())

	received, err := f.messages.Received(ctx, f.bob.UserID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "envelope", received[0].EncryptedContent)

	sent, err := f.messages.Sent(ctx, f.alice.UserID)
	require.NoError(t, err)
	assert.Len(t, sent, 1)
}

func TestSend_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.messages.Send(ctx, f.alice.UserID, "carol", "envelope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.messages.Send(ctx, f.alice.UserID, "bob", "  ")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.messages.Send(ctx, 999, "bob", "envelope")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	assert.Empty(t, f.notifier.all())
}

func TestMarkRead_NotifiesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	msg, err := f.messages.Send(ctx, f.alice.UserID, "bob", "envelope")
	require.NoError(t, err)

	require.NoError(t, f.messages.MarkRead(ctx, f.bob.UserID, msg.ID))
	require.NoError(t, f.messages.MarkRead(ctx, f.bob.UserID, msg.ID))

	var reads []notification
	for _, n := range f.notifier.all() {
		if n.kind == "message_read" {
			reads = append(reads, n)
		}
	}
	assert.Equal(t, []notification{{"message_read", f.alice.UserID, msg.ID, ""}}, reads)

	assert.ErrorIs(t, f.messages.MarkRead(ctx, f.alice.UserID, msg.ID), common.ErrorForbidden)
	assert.ErrorIs(t, f.messages.MarkRead(ctx, f.bob.UserID, 12345), common.ErrorNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	msg, err := f.messages.Send(ctx, f.alice.UserID, "bob", "v1")
	require.NoError(t, err)

	_, err = f.messages.Update(ctx, f.bob.UserID, msg.ID, "hijack")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	updated, err := f.messages.Update(ctx, f.alice.UserID, msg.ID, "v2")
	require.NoError(t, err)
	assert.True(t, updated.IsEdited)
	assert.Equal(t, "v2", updated.EncryptedContent)

	assert.ErrorIs(t, f.messages.Delete(ctx, f.bob.UserID, msg.ID), common.ErrorForbidden)
	require.NoError(t, f.messages.Delete(ctx, f.alice.UserID, msg.ID))
	assert.ErrorIs(t, f.messages.Delete(ctx, f.alice.UserID, msg.ID), common.ErrorNotFound)

	all := f.notifier.all()
	require.Len(t, all, 3)
	assert.Equal(t, notification{"message_edited", f.bob.UserID, msg.ID, ""}, all[1])
	assert.Equal(t, notification{"message_deleted", f.bob.UserID, msg.ID, ""}, all[2])
}

func TestUnreadCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for range 3 {
		_, err := f.messages.Send(ctx, f.alice.UserID, "bob", "x")
		require.NoError(t, err)
	}

	total, bySender, err := f.messages.UnreadCount(ctx, f.bob.UserID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, map[int64]int{f.alice.UserID: 3}, bySender)

	total, _, err = f.messages.UnreadCount(ctx, f.alice.UserID)
	require.NoError(t, err)
	assert.Zero(t, total)
}
