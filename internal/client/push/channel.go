// Package push is the client end of the live notification channel: one
// WebSocket per open conversation, read by a background loop that decodes
// frames and hands events to a callback.
package push

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/dmitrijs2005/gophchat/internal/chatapi"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

type State int

const (
	Disconnected State = iota
	Connecting
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MaxFrameSize bounds one buffered push frame. Larger frames are read to
// the end and dropped; the channel stays open.
const MaxFrameSize = 64 << 10

var (
	ErrNotIdle       = errors.New("push channel already used")
	errFrameTooLarge = errors.New("push frame too large")
)

// Channel is single use: Disconnected -> Connecting -> Open -> Closed. A
// failed Connect returns to Disconnected and may be retried.
type Channel struct {
	endpoint         string
	handshakeTimeout time.Duration
	onEvent          func(chatapi.Event)
	onDisconnect     func(error)
	logger           logging.Logger

	mu     sync.Mutex
	state  State
	conn   *websocket.Conn
	cancel context.CancelFunc
	done   chan struct{}

	closing        atomic.Bool
	disconnectOnce sync.Once
}

// New prepares a channel to endpoint (ws:// or wss:// URL of /ws). onEvent
// runs on the receive goroutine for every decoded frame; onDisconnect runs
// at most once, when the peer or the network ends an open channel.
func New(endpoint string, handshakeTimeout time.Duration, onEvent func(chatapi.Event), onDisconnect func(error), l logging.Logger) *Channel {
	if onEvent == nil {
		onEvent = func(chatapi.Event) {}
	}
	if onDisconnect == nil {
		onDisconnect = func(error) {}
	}
	return &Channel{
		endpoint:         endpoint,
		handshakeTimeout: handshakeTimeout,
		onEvent:          onEvent,
		onDisconnect:     onDisconnect,
		logger:           logging.OrNop(l).With("module", "push_channel"),
	}
}

func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Channel) dialURL(token string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(common.AccessTokenQueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Connect performs the handshake, bounded by the handshake timeout, and
// starts the receive loop. The loop does not inherit ctx; it runs until
// Disconnect or until the channel breaks.
func (c *Channel) Connect(ctx context.Context, token string) error {
	c.mu.Lock()
	if c.state != Disconnected {
		c.mu.Unlock()
		return ErrNotIdle
	}
	c.state = Connecting
	c.mu.Unlock()

	conn, err := c.dial(ctx, token)
	if err != nil {
		c.mu.Lock()
		c.state = Disconnected
		c.mu.Unlock()
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.mu.Lock()
	c.state = Open
	c.conn = conn
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go c.receive(loopCtx, conn, done)
	return nil
}

func (c *Channel) dial(ctx context.Context, token string) (*websocket.Conn, error) {
	target, err := c.dialURL(token)
	if err != nil {
		return nil, err
	}

	if c.handshakeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.handshakeTimeout)
		defer cancel()
	}

	conn, resp, err := websocket.Dial(ctx, target, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("push handshake rejected (%d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("push handshake: %w", err)
	}
	// The library limit closes the socket on an oversized message.
	// readFrame enforces MaxFrameSize instead.
	conn.SetReadLimit(-1)
	return conn, nil
}

func (c *Channel) receive(ctx context.Context, conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		_, r, err := conn.Reader(ctx)
		if err != nil {
			c.mu.Lock()
			c.state = Closed
			c.mu.Unlock()

			if !c.closing.Load() && ctx.Err() == nil {
				c.logger.Info(ctx, "push channel lost", "error", err)
				c.disconnectOnce.Do(func() { c.onDisconnect(err) })
			}
			return
		}

		data, err := readFrame(r, MaxFrameSize)
		if err != nil {
			c.logger.Debug(ctx, "push frame dropped", "error", err)
			continue
		}

		ev, err := chatapi.DecodeFrame(data)
		if err != nil {
			c.logger.Debug(ctx, "push frame dropped", "error", err)
			continue
		}
		c.onEvent(ev)
	}
}

// readFrame buffers at most limit bytes of one message and always consumes
// the message to its end.
func readFrame(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		if _, err := io.Copy(io.Discard, r); err != nil {
			return nil, err
		}
		return nil, errFrameTooLarge
	}
	return data, nil
}

// Disconnect stops the receive loop, closes the socket and waits for the
// loop to exit. Safe to call any number of times.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	conn, cancel, done := c.conn, c.cancel, c.done
	if conn == nil {
		c.mu.Unlock()
		return
	}
	c.closing.Store(true)
	c.conn, c.cancel, c.done = nil, nil, nil
	c.state = Closed
	c.mu.Unlock()

	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	cancel()
	<-done
}
