// Package push keeps one live WebSocket per signed-in user and delivers
// best-effort change hints over it.
package push

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// Channel is an open push connection to one client.
type Channel interface {
	Write(ctx context.Context, data []byte) error
	Close() error
}

// Registry maps user ids to their single authoritative channel. A newer
// channel for the same user evicts the older one; channels are never merged.
type Registry struct {
	mu     sync.RWMutex
	conns  map[int64]Channel
	logger logging.Logger
}

func NewRegistry(l logging.Logger) *Registry {
	return &Registry{
		conns:  make(map[int64]Channel),
		logger: logging.OrNop(l).With("module", "push_registry"),
	}
}

// AddConnection registers ch for userID, closing any channel it replaces.
func (r *Registry) AddConnection(userID int64, ch Channel) {
	r.mu.Lock()
	old := r.conns[userID]
	r.conns[userID] = ch
	r.mu.Unlock()

	if old != nil && old != ch {
		_ = old.Close()
		r.logger.Info(context.Background(), "push channel replaced", "user_id", userID)
	}
}

// RemoveConnection drops the mapping only if it still points at ch, so a
// handler that lost its slot to a newer connection cannot unregister it.
func (r *Registry) RemoveConnection(userID int64, ch Channel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.conns[userID]; ok && cur == ch {
		delete(r.conns, userID)
		return true
	}
	return false
}

// Connected reports whether userID has a registered channel.
func (r *Registry) Connected(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[userID]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// SendToUser writes data to the user's channel. Unknown users are a no-op
// and write errors are only logged.
func (r *Registry) SendToUser(ctx context.Context, userID int64, data []byte) {
	r.mu.RLock()
	ch := r.conns[userID]
	r.mu.RUnlock()

	if ch == nil {
		return
	}
	if err := ch.Write(ctx, data); err != nil {
		r.logger.Warn(ctx, "push write failed", "user_id", userID, "error", err)
	}
}

// CloseAll closes and forgets every channel.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	conns := r.conns
	r.conns = make(map[int64]Channel)
	r.mu.Unlock()

	for _, ch := range conns {
		_ = ch.Close()
	}
}

func (r *Registry) notify(ctx context.Context, userID int64, typ string, payload any) {
	data, err := chatapi.EncodeFrame(typ, payload)
	if err != nil {
		r.logger.Error(ctx, "encode push frame", "type", typ, "error", err)
		return
	}
	r.SendToUser(ctx, userID, data)
}

func (r *Registry) NotifyNewMessage(ctx context.Context, receiverID, messageID int64, senderUsername string, sentAt time.Time) {
	r.notify(ctx, receiverID, chatapi.TypeNewMessage, chatapi.NewMessagePayload{
		MessageID:      messageID,
		SenderUsername: senderUsername,
		SentAt:         sentAt,
	})
}

func (r *Registry) NotifyMessageRead(ctx context.Context, senderID, messageID int64) {
	r.notify(ctx, senderID, chatapi.TypeMessageRead, chatapi.MessageRefPayload{MessageID: messageID})
}

func (r *Registry) NotifyMessageDeleted(ctx context.Context, receiverID, messageID int64) {
	r.notify(ctx, receiverID, chatapi.TypeMessageDeleted, chatapi.MessageRefPayload{MessageID: messageID})
}

func (r *Registry) NotifyMessageEdited(ctx context.Context, receiverID, messageID int64) {
	r.notify(ctx, receiverID, chatapi.TypeMessageEdited, chatapi.MessageRefPayload{MessageID: messageID})
}
