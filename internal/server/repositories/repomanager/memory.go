package repomanager

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps everything in process memory. The DBTX
// arguments are ignored, so transactions are not isolated. It backs tests
// and local experiments that run without Postgres.
type InMemoryRepositoryManager struct {
	mu       sync.Mutex
	now      func() time.Time
	nextUser int64
	nextMsg  int64
	users    map[int64]*models.User
	messages map[int64]*models.Message
	tokens   map[string]*models.RefreshToken
}

var _ RepositoryManager = (*InMemoryRepositoryManager)(nil)

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		now:      time.Now,
		users:    make(map[int64]*models.User),
		messages: make(map[int64]*models.Message),
		tokens:   make(map[string]*models.RefreshToken),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return memUsers{m} }

func (m *InMemoryRepositoryManager) Messages(dbx.DBTX) messages.Repository { return memMessages{m} }

func (m *InMemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return memTokens{m}
}

type memUsers struct{ m *InMemoryRepositoryManager }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, existing := range r.m.users {
		if existing.Username == u.Username {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.m.nextUser++
	u.ID = r.m.nextUser
	u.CreatedAt = r.m.now()
	stored := *u
	r.m.users[u.ID] = &stored
	return u, nil
}

func (r memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (r memUsers) List(context.Context) ([]*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	result := make([]*models.User, 0, len(r.m.users))
	for _, u := range r.m.users {
		c := *u
		result = append(result, &c)
	}
	slices.SortFunc(result, func(a, b *models.User) int { return cmp.Compare(a.Username, b.Username) })
	return result, nil
}

type memMessages struct{ m *InMemoryRepositoryManager }

func (r memMessages) withNames(msg *models.Message) *models.Message {
	c := *msg
	if u, ok := r.m.users[c.SenderID]; ok {
		c.SenderUsername = u.Username
	}
	if u, ok := r.m.users[c.ReceiverID]; ok {
		c.ReceiverUsername = u.Username
	}
	return &c
}

func (r memMessages) Create(_ context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	r.m.nextMsg++
	msg := &models.Message{
		ID:               r.m.nextMsg,
		SenderID:         senderID,
		ReceiverID:       receiverID,
		EncryptedContent: content,
		SentAt:           r.m.now(),
	}
	r.m.messages[msg.ID] = msg
	c := *msg
	return &c, nil
}

func (r memMessages) GetByID(_ context.Context, id int64) (*models.Message, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	msg, ok := r.m.messages[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.withNames(msg), nil
}

func (r memMessages) list(match func(*models.Message) bool) []*models.Message {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	result := make([]*models.Message, 0)
	for _, msg := range r.m.messages {
		if match(msg) {
			result = append(result, r.withNames(msg))
		}
	}
	slices.SortFunc(result, func(a, b *models.Message) int {
		if c := b.SentAt.Compare(a.SentAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return result
}

func (r memMessages) ListReceived(_ context.Context, userID int64) ([]*models.Message, error) {
	return r.list(func(m *models.Message) bool { return m.ReceiverID == userID }), nil
}

func (r memMessages) ListSent(_ context.Context, userID int64) ([]*models.Message, error) {
	return r.list(func(m *models.Message) bool { return m.SenderID == userID }), nil
}

func (r memMessages) UpdateContent(_ context.Context, id, senderID int64, content string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	msg, ok := r.m.messages[id]
	if !ok || msg.SenderID != senderID {
		return false, nil
	}
	msg.EncryptedContent = content
	msg.IsEdited = true
	return true, nil
}

func (r memMessages) Delete(_ context.Context, id, senderID int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	msg, ok := r.m.messages[id]
	if !ok || msg.SenderID != senderID {
		return false, nil
	}
	delete(r.m.messages, id)
	return true, nil
}

func (r memMessages) MarkRead(_ context.Context, id, receiverID int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	msg, ok := r.m.messages[id]
	if !ok || msg.ReceiverID != receiverID || msg.IsRead {
		return false, nil
	}
	msg.IsRead = true
	return true, nil
}

func (r memMessages) UnreadCounts(_ context.Context, receiverID int64) (map[int64]int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	counts := make(map[int64]int)
	for _, msg := range r.m.messages {
		if msg.ReceiverID == receiverID && !msg.IsRead {
			counts[msg.SenderID]++
		}
	}
	return counts, nil
}

type memTokens struct{ m *InMemoryRepositoryManager }

func (r memTokens) Create(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	r.m.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (r memTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	rt, ok := r.m.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *rt
	return &c, nil
}

func (r memTokens) Delete(_ context.Context, token string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	delete(r.m.tokens, token)
	return nil
}
