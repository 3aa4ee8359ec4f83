package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/repomanager"
)

// Notifier delivers best-effort live hints. Implementations must not block
// on users that have no open push channel and must not return errors.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, receiverID, messageID int64, senderUsername string, sentAt time.Time)
	NotifyMessageRead(ctx context.Context, senderID, messageID int64)
	NotifyMessageDeleted(ctx context.Context, receiverID, messageID int64)
	NotifyMessageEdited(ctx context.Context, receiverID, messageID int64)
}

type MessageService struct {
	db       *sql.DB
	rm       repomanager.RepositoryManager
	notifier Notifier
	logger   logging.Logger
}

func NewMessageService(db *sql.DB, rm repomanager.RepositoryManager, n Notifier, l logging.Logger) *MessageService {
	return &MessageService{
		db:       db,
		rm:       rm,
		notifier: n,
		logger:   logging.OrNop(l).With("module", "message_service"),
	}
}

// Send stores the envelope and notifies the receiver.
func (s *MessageService) Send(ctx context.Context, senderID int64, receiverUsername, encryptedContent string) (*models.Message, error) {
	if strings.TrimSpace(encryptedContent) == "" {
		return nil, fmt.Errorf("%w: empty message", common.ErrorValidation)
	}

	users := s.rm.Users(s.db)

	receiver, err := users.GetByUsername(ctx, strings.TrimSpace(receiverUsername))
	if err != nil {
		return nil, err
	}
	sender, err := users.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	msg, err := s.rm.Messages(s.db).Create(ctx, sender.ID, receiver.ID, encryptedContent)
	if err != nil {
		return nil, err
	}
	msg.SenderUsername = sender.Username
	msg.ReceiverUsername = receiver.Username

	s.logger.Debug(ctx, "message stored", "message_id", msg.ID, "sender_id", sender.ID, "receiver_id", receiver.ID)
	s.notifier.NotifyNewMessage(ctx, receiver.ID, msg.ID, sender.Username, msg.SentAt)

	return msg, nil
}

func (s *MessageService) Received(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.rm.Messages(s.db).ListReceived(ctx, userID)
}

func (s *MessageService) Sent(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.rm.Messages(s.db).ListSent(ctx, userID)
}

// owned loads a message and checks that userID is its sender (asSender) or
// its receiver.
func (s *MessageService) owned(ctx context.Context, messageID, userID int64, asSender bool) (*models.Message, error) {
	msg, err := s.rm.Messages(s.db).GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	owner := msg.ReceiverID
	if asSender {
		owner = msg.SenderID
	}
	if owner != userID {
		return nil, common.ErrorForbidden
	}
	return msg, nil
}

// Update replaces the envelope of a message the caller sent.
func (s *MessageService) Update(ctx context.Context, userID, messageID int64, encryptedContent string) (*models.Message, error) {
	if strings.TrimSpace(encryptedContent) == "" {
		return nil, fmt.Errorf("%w: empty message", common.ErrorValidation)
	}

	msg, err := s.owned(ctx, messageID, userID, true)
	if err != nil {
		return nil, err
	}

	changed, err := s.rm.Messages(s.db).UpdateContent(ctx, messageID, userID, encryptedContent)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, common.ErrorNotFound
	}

	msg.EncryptedContent = encryptedContent
	msg.IsEdited = true
	s.notifier.NotifyMessageEdited(ctx, msg.ReceiverID, msg.ID)

	return msg, nil
}

// Delete removes a message the caller sent.
func (s *MessageService) Delete(ctx context.Context, userID, messageID int64) error {
	msg, err := s.owned(ctx, messageID, userID, true)
	if err != nil {
		return err
	}

	deleted, err := s.rm.Messages(s.db).Delete(ctx, messageID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return common.ErrorNotFound
	}

	s.notifier.NotifyMessageDeleted(ctx, msg.ReceiverID, msg.ID)
	return nil
}

// MarkRead marks a message the caller received as read. Marking an already
// read message succeeds without notifying the sender again.
func (s *MessageService) MarkRead(ctx context.Context, userID, messageID int64) error {
	msg, err := s.owned(ctx, messageID, userID, false)
	if err != nil {
		return err
	}

	changed, err := s.rm.Messages(s.db).MarkRead(ctx, messageID, userID)
	if err != nil {
		return err
	}
	if changed {
		s.notifier.NotifyMessageRead(ctx, msg.SenderID, msg.ID)
	}
	return nil
}

// UnreadCount returns the caller's unread total and the per-sender split.
func (s *MessageService) UnreadCount(ctx context.Context, userID int64) (int, map[int64]int, error) {
	bySender, err := s.rm.Messages(s.db).UnreadCounts(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	total := 0
	for _, n := range bySender {
		total += n
	}
	return total, bySender, nil
}
