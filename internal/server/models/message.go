package models

import "time"

// Message is a stored envelope. The usernames are filled in by queries that
// join the users table.
type Message struct {
	ID               int64
	SenderID         int64
	SenderUsername   string
	ReceiverID       int64
	ReceiverUsername string
	EncryptedContent string
	SentAt           time.Time
	IsRead           bool
	IsEdited         bool
}
