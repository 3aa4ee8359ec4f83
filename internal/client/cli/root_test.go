package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/gophchat/internal/client/chat"
	"github.com/dmitrijs2005/gophchat/internal/client/client"
)

// blockingInput never yields a line.
type blockingInput struct{}

func (blockingInput) Next() <-chan chat.Line { return nil }

func TestGetStatus(t *testing.T) {
	a := &App{}
	assert.Equal(t, "", a.getStatus())

	a.account = account("alice", 1)
	assert.Equal(t, "(alice ) ", a.getStatus())

	a.mode = ModeOnline
	a.unread = 3
	assert.Equal(t, "(alice [3 unread] online) ", a.getStatus())

	a.account = nil
	a.unread = 0
	a.mode = ModeOffline
	assert.Equal(t, "(offline) ", a.getStatus())
}

func TestRun_RestoresSessionAndExits(t *testing.T) {
	captureOutput(t)

	auth := &fakeAuth{account: account("alice", 1)}
	a, out := newTestApp("help\nexit\n", auth, &fakeClient{unread: 2})

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to GophChat")
	assert.Contains(t, out.String(), "Welcome back, alice")
	assert.True(t, auth.closeCalled)
	assert.Equal(t, 2, a.unread)
	assert.Equal(t, make([]byte, 32), a.account.Keys.PrivateKey, "keys wiped on exit")
}

func TestRun_NoStoredSession(t *testing.T) {
	captureOutput(t)

	auth := &fakeAuth{restoreErr: client.ErrLocalDataNotAvailable}
	a, _ := newTestApp("exit\n", auth, &fakeClient{})

	a.Run(context.Background())

	assert.False(t, a.isLoggedIn())
	assert.Equal(t, ModeOnline, a.mode)
	assert.True(t, auth.closeCalled)
}
