// Package messages stores encrypted message envelopes.
package messages

import (
	"context"

	"github.com/dmitrijs2005/gophchat/internal/server/models"
)

type Repository interface {
	// Create stores a new unread, unedited message and returns it with ID and
	// SentAt filled in.
	Create(ctx context.Context, senderID, receiverID int64, encryptedContent string) (*models.Message, error)
	GetByID(ctx context.Context, id int64) (*models.Message, error)

	// ListReceived and ListSent return newest first.
	ListReceived(ctx context.Context, userID int64) ([]*models.Message, error)
	ListSent(ctx context.Context, userID int64) ([]*models.Message, error)

	// UpdateContent, Delete and MarkRead report whether a row changed.
	// MarkRead does not touch a message that is already read.
	UpdateContent(ctx context.Context, id, senderID int64, encryptedContent string) (bool, error)
	Delete(ctx context.Context, id, senderID int64) (bool, error)
	MarkRead(ctx context.Context, id, receiverID int64) (bool, error)

	// UnreadCounts maps sender id to the number of unread messages the user
	// received from them.
	UnreadCounts(ctx context.Context, receiverID int64) (map[int64]int, error)
}
