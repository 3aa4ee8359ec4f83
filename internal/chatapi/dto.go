// Package chatapi holds the parts of the chat wire contract that are not
// protobuf: the decoded views of users and messages the client works with,
// the push frame format, and the set of ChatService methods callable
// without an access token.
package chatapi

import "time"

// User is the public view of an account.
type User struct {
	ID        int64
	Username  string
	PublicKey string
}

// Message carries an encrypted envelope together with delivery metadata.
// The server never sees plaintext.
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
