package push

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/dmitrijs2005/gophchat/internal/chatapi"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens map[string]auth.Identity

func (s staticTokens) Validate(token string) (auth.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return auth.Identity{}, common.ErrInvalidToken
}

func newTestServer(t *testing.T) (*httptest.Server, *Registry) {
	t.Helper()
	reg := NewRegistry(nil)
	h := NewHandler(reg, staticTokens{
		"tok-alice": {UserID: 1, Username: "alice"},
		"tok-bob":   {UserID: 2, Username: "bob"},
	}, nil)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv, reg
}

func wsURL(srv *httptest.Server, token string) string {
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + common.PushPath
	if token != "" {
		u += "?" + common.AccessTokenQueryParam + "=" + token
	}
	return u
}

func dial(t *testing.T, srv *httptest.Server, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return websocket.Dial(ctx, wsURL(srv, token), nil)
}

func TestHandler_RejectsMissingToken(t *testing.T) {
	srv, reg := newTestServer(t)

	_, resp, err := dial(t, srv, "")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, reg.Len())
}

func TestHandler_RejectsInvalidToken(t *testing.T) {
	srv, reg := newTestServer(t)

	_, resp, err := dial(t, srv, "forged")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, reg.Len())
}

func TestHandler_RejectsPlainHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + common.PushPath + "?access_token=tok-alice")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_RegistersAndDelivers(t *testing.T) {
	srv, reg := newTestServer(t)

	conn, _, err := dial(t, srv, "tok-alice")
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return reg.Connected(1) }, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	reg.NotifyMessageRead(ctx, 1, 99)

	typ, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)

	ev, err := chatapi.DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, chatapi.TypeMessageRead, ev.Type)
	assert.Equal(t, int64(99), ev.MessageID)
}

func TestHandler_NewerConnectionEvictsOlder(t *testing.T) {
	srv, reg := newTestServer(t)

	first, _, err := dial(t, srv, "tok-bob")
	require.NoError(t, err)
	defer first.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool { return reg.Connected(2) }, 2*time.Second, 10*time.Millisecond)

	second, _, err := dial(t, srv, "tok-bob")
	require.NoError(t, err)
	defer second.Close(websocket.StatusNormalClosure, "")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, _, err = first.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))

	assert.True(t, reg.Connected(2))
	assert.Equal(t, 1, reg.Len())

	reg.NotifyMessageDeleted(ctx, 2, 5)
	_, data, err := second.Read(ctx)
	require.NoError(t, err)
	ev, err := chatapi.DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, chatapi.TypeMessageDeleted, ev.Type)
}

func TestHandler_ClientCloseUnregisters(t *testing.T) {
	srv, reg := newTestServer(t)

	conn, _, err := dial(t, srv, "tok-alice")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return reg.Connected(1) }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))
	assert.Eventually(t, func() bool { return !reg.Connected(1) }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Healthy", body.Status)
	assert.False(t, body.Timestamp.IsZero())
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	reg := NewRegistry(nil)
	s := NewServer("127.0.0.1:0", NewHandler(reg, staticTokens{}, nil), reg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.False(t, err != nil && !errors.Is(err, context.Canceled), "unexpected error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("push server did not stop")
	}
}
