// Package chat runs one interactive conversation. It keeps the timeline
// current from history and live hints, and turns console lines into
// commands or encrypted messages.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
	"github.com/dmitrijs2005/gophchat/internal/client/conversation"
	"github.com/dmitrijs2005/gophchat/internal/cryptox"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

const (
	DefaultPollInterval = 3 * time.Second

	timeLayout = "2006-01-02 15:04"
)

type State int32

const (
	Idle State = iota
	Active
	Closing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Closing:
		return "closing"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

var ErrBusy = errors.New("a conversation is already open")

// API is the part of the chat API a session calls.
type API interface {
	GetUser(ctx context.Context, username string) (chatapi.User, error)
	ReceivedMessages(ctx context.Context) ([]chatapi.Message, error)
	SentMessages(ctx context.Context) ([]chatapi.Message, error)
	SendMessage(ctx context.Context, receiver, envelope string) (chatapi.Message, error)
	MarkRead(ctx context.Context, messageID int64) error
}

// PushChannel is the live hint source of a session.
type PushChannel interface {
	Connect(ctx context.Context, token string) error
	Disconnect()
}

// PushFactory builds a channel reporting to the given callbacks.
type PushFactory func(onEvent func(chatapi.Event), onDisconnect func(error)) PushChannel

// Line is one line of console input, or the error that ended input.
type Line struct {
	Text string
	Err  error
}

// Input yields console lines on demand. Next returns the channel the next
// line arrives on; until that line is received, repeated calls return the
// same channel.
type Input interface {
	Next() <-chan Line
}

type Options struct {
	// Push is optional. Without it the session polls history.
	Push         PushFactory
	Token        func() string
	PollInterval time.Duration
	Logger       logging.Logger
}

// Session is Idle until Run opens a conversation, and Idle again once Run
// returns. Everything derived for the conversation, the shared secret and
// decrypted bodies included, is released before Run returns.
type Session struct {
	api        API
	privateKey []byte
	out        io.Writer
	push       PushFactory
	token      func() string
	pollEvery  time.Duration
	logger     logging.Logger

	state atomic.Int32

	// Owned by the Run goroutine.
	partner string
	secret  *cryptox.SharedSecret
	view    *conversation.View
	printed map[int64]struct{}
	queue   *PendingQueue
	lost    chan error

	// Read by the receive activity.
	mu    sync.Mutex
	known map[int64]struct{}
}

func NewSession(api API, privateKey []byte, out io.Writer, opts Options) *Session {
	s := &Session{
		api:        api,
		privateKey: privateKey,
		out:        out,
		push:       opts.Push,
		token:      opts.Token,
		pollEvery:  opts.PollInterval,
		logger:     logging.OrNop(opts.Logger).With("module", "chat_session"),
	}
	if s.token == nil {
		s.token = func() string { return "" }
	}
	if s.pollEvery <= 0 {
		s.pollEvery = DefaultPollInterval
	}
	return s
}

func (s *Session) State() State {
	return State(s.state.Load())
}

// Run opens the conversation with partner and serves it until /back, the
// end of input or ctx cancellation. A missing partner is returned as the
// API reported it.
func (s *Session) Run(ctx context.Context, partner string, in Input) error {
	if !s.state.CompareAndSwap(int32(Idle), int32(Active)) {
		return ErrBusy
	}
	defer s.state.Store(int32(Idle))

	if err := s.open(ctx, partner); err != nil {
		s.release()
		return err
	}

	// Subscribe before the first history load so that a message stored in
	// between still produces a hint.
	ch, live := s.connect(ctx)
	defer func() {
		s.state.Store(int32(Closing))
		if ch != nil {
			ch.Disconnect()
		}
		s.release()
	}()

	if err := s.refresh(ctx); err != nil {
		return err
	}
	s.view.Latest()

	s.renderHeader(live)
	s.renderWindow(ctx)
	return s.loop(ctx, in, live)
}

func (s *Session) open(ctx context.Context, partner string) error {
	user, err := s.api.GetUser(ctx, partner)
	if err != nil {
		return fmt.Errorf("open conversation with %s: %w", partner, err)
	}

	secret, err := cryptox.DeriveSharedSecret(s.privateKey, user.PublicKey)
	if err != nil {
		return fmt.Errorf("open conversation with %s: %w", partner, err)
	}

	s.partner = user.Username
	s.secret = secret
	s.view = conversation.NewView(nil)
	s.printed = make(map[int64]struct{})
	s.queue = NewPendingQueue()
	s.lost = make(chan error, 1)
	return nil
}

func (s *Session) connect(ctx context.Context) (PushChannel, bool) {
	if s.push == nil {
		return nil, false
	}
	ch := s.push(s.onEvent, s.onDisconnect)
	if err := ch.Connect(ctx, s.token()); err != nil {
		s.logger.Warn(ctx, "push unavailable, polling history", "error", err)
		return nil, false
	}
	return ch, true
}

func (s *Session) release() {
	s.secret.Wipe()
	s.secret = nil
	if s.view != nil {
		s.view.Clear()
		s.view = nil
	}
	if s.queue != nil {
		s.queue.Drain()
		s.queue = nil
	}
	s.printed = nil
	s.lost = nil

	s.mu.Lock()
	s.known = nil
	s.mu.Unlock()

	s.partner = ""
}

func (s *Session) loop(ctx context.Context, in Input, live bool) error {
	var (
		ticker *time.Ticker
		poll   <-chan time.Time
	)
	startPolling := func() {
		if ticker == nil {
			ticker = time.NewTicker(s.pollEvery)
			poll = ticker.C
		}
	}
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()
	if !live {
		startPolling()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line := <-in.Next():
			if line.Err != nil {
				if errors.Is(line.Err, io.EOF) {
					return nil
				}
				return line.Err
			}
			if s.handle(ctx, in, line.Text) {
				return ctx.Err()
			}

		case <-s.queue.Ready():
			s.drain(ctx)

		case <-poll:
			s.poll(ctx)

		case err := <-s.lost:
			s.logger.Warn(ctx, "push channel lost", "error", err)
			s.printf("Live updates lost, checking history every %s.\n", s.pollEvery)
			startPolling()
		}
	}
}

// handle runs one line and reports whether the session should close.
func (s *Session) handle(ctx context.Context, in Input, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	cmd, rest, _ := strings.Cut(text, " ")
	switch strings.ToLower(cmd) {
	case "/back":
		return true

	case "/up":
		before := s.view.Offset()
		s.view.PageBack()
		if s.view.Offset() == before {
			s.printf("No earlier messages.\n")
			return false
		}
		s.renderWindow(ctx)

	case "/latest", "/down":
		s.view.Latest()
		s.renderWindow(ctx)

	case "/search":
		return s.search(ctx, in, strings.TrimSpace(rest))

	default:
		s.send(ctx, text)
	}
	return false
}

func (s *Session) search(ctx context.Context, in Input, term string) bool {
	if term == "" {
		s.printf("Search for: ")
		var ok bool
		if term, ok = s.readLine(ctx, in); !ok {
			return true
		}
	}

	results := s.view.Search(term)
	if len(results) == 0 {
		s.printf("No messages match %q.\n", term)
		return false
	}

	for i, r := range results {
		e, _ := s.view.Entry(r.ID)
		s.printf("%3d) [%s] %s: %s\n", i+1, e.SentAt.Local().Format(timeLayout), author(e), r.Preview)
	}
	s.printf("Jump to result # (empty to cancel): ")

	choice, ok := s.readLine(ctx, in)
	if !ok {
		return true
	}
	if choice == "" {
		return false
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(results) {
		s.printf("No such result.\n")
		return false
	}

	s.view.JumpTo(results[n-1].Index)
	s.renderWindow(ctx)
	return false
}

func (s *Session) readLine(ctx context.Context, in Input) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line := <-in.Next():
		if line.Err != nil {
			return "", false
		}
		return strings.TrimSpace(line.Text), true
	}
}

func (s *Session) send(ctx context.Context, text string) {
	envelope, err := s.secret.Encrypt(text)
	if err != nil {
		s.logger.Error(ctx, "encrypt failed", "error", err)
		s.printf("Message not sent: %v\n", err)
		return
	}

	m, err := s.api.SendMessage(ctx, s.partner, envelope)
	if err != nil {
		s.logger.Warn(ctx, "send failed", "error", err)
		s.printf("Message not sent: %v\n", err)
		return
	}

	if err := s.refresh(ctx); err != nil {
		s.logger.Warn(ctx, "refresh after send failed", "error", err)
	}
	e, ok := s.view.Entry(m.ID)
	if !ok {
		e = conversation.Entry{ID: m.ID, Mine: true, Body: text, SentAt: m.SentAt}
	}
	s.printEntry(e)
}

// refresh refetches both histories and reassembles the timeline.
func (s *Session) refresh(ctx context.Context) error {
	var received, sent []chatapi.Message

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		received, err = s.api.ReceivedMessages(gctx)
		return err
	})
	g.Go(func() (err error) {
		sent, err = s.api.SentMessages(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	entries := conversation.Assemble(received, sent, s.partner, s.secret.Decrypt)

	known := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		known[e.ID] = struct{}{}
	}
	s.mu.Lock()
	s.known = known
	s.mu.Unlock()

	s.view.Replace(entries)
	return nil
}

func (s *Session) isKnown(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.known[id]
	return ok
}

// onEvent runs on the receive activity. New messages are kept only when the
// partner sent them; other hints only when they refer to this conversation.
func (s *Session) onEvent(ev chatapi.Event) {
	switch ev.Type {
	case chatapi.TypeNewMessage:
		if !strings.EqualFold(ev.SenderUsername, s.partner) {
			return
		}
	default:
		if !s.isKnown(ev.MessageID) {
			return
		}
	}
	s.queue.Push(ev)
}

func (s *Session) onDisconnect(err error) {
	select {
	case s.lost <- err:
	default:
	}
}

// poll turns partner messages the timeline has not seen into new_message
// hints.
func (s *Session) poll(ctx context.Context) {
	received, err := s.api.ReceivedMessages(ctx)
	if err != nil {
		s.logger.Warn(ctx, "history poll failed", "error", err)
		return
	}
	for _, m := range received {
		if strings.EqualFold(m.SenderUsername, s.partner) && !s.isKnown(m.ID) {
			s.queue.Push(chatapi.Event{
				Type:           chatapi.TypeNewMessage,
				MessageID:      m.ID,
				SenderUsername: m.SenderUsername,
				SentAt:         m.SentAt,
			})
		}
	}
}

// drain renders queued hints against a freshly fetched timeline. Every
// window entry not printed yet is shown, whichever hint led to it.
func (s *Session) drain(ctx context.Context) {
	events := s.queue.Drain()
	if len(events) == 0 {
		return
	}

	if err := s.refresh(ctx); err != nil {
		s.logger.Warn(ctx, "refresh failed", "error", err)
		s.printf("Could not load new messages: %v\n", err)
		return
	}

	for _, e := range s.view.Window() {
		if _, seen := s.printed[e.ID]; !seen {
			s.printEntry(e)
		}
	}

	for _, ev := range events {
		e, ok := s.view.Entry(ev.MessageID)

		switch ev.Type {
		case chatapi.TypeMessageEdited:
			if ok {
				s.printf("* %s edited a message: %s\n", author(e), e.Body)
			}

		case chatapi.TypeMessageDeleted:
			if !ok {
				delete(s.printed, ev.MessageID)
				s.printf("* A message was deleted.\n")
			}

		case chatapi.TypeMessageRead:
			if ok && e.Mine {
				s.printf("* %s read your message from %s.\n", s.partner, e.SentAt.Local().Format(timeLayout))
			}
		}
	}

	s.markRead(ctx, s.view.Unread())
}

func (s *Session) renderHeader(live bool) {
	s.printf("--- Conversation with %s ---\n", s.partner)
	if live {
		s.printf("Live updates on.\n")
	} else {
		s.printf("Live updates unavailable, history polled every %s.\n", s.pollEvery)
	}
	s.printf("Commands: /up /latest /down /search [term] /back. Anything else is sent.\n")
}

// renderWindow prints the current window, then marks everything the partner
// sent that is still unread as read, on screen or not.
func (s *Session) renderWindow(ctx context.Context) {
	window := s.view.Window()
	if hidden := s.view.Total() - len(window); hidden > 0 {
		s.printf("(%d earlier messages, /up to show more)\n", hidden)
	}
	if len(window) == 0 {
		s.printf("No messages yet.\n")
	}
	for _, e := range window {
		s.printEntry(e)
	}

	s.markRead(ctx, s.view.Unread())
}

// markRead never fails the render; errors are only logged.
func (s *Session) markRead(ctx context.Context, ids []int64) {
	for _, id := range ids {
		if err := s.api.MarkRead(ctx, id); err != nil {
			s.logger.Warn(ctx, "mark read failed", "message_id", id, "error", err)
			continue
		}
		s.view.MarkRead(id)
	}
}

func (s *Session) printEntry(e conversation.Entry) {
	s.printed[e.ID] = struct{}{}
	suffix := ""
	if e.IsEdited {
		suffix = " (edited)"
	}
	s.printf("[%s] %s: %s%s\n", e.SentAt.Local().Format(timeLayout), author(e), e.Body, suffix)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func author(e conversation.Entry) string {
	if e.Mine {
		return "you"
	}
	return e.SenderUsername
}
