package chatapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Push frame types.
const (
	TypeNewMessage     = "new_message"
	TypeMessageRead    = "message_read"
	TypeMessageDeleted = "message_deleted"
	TypeMessageEdited  = "message_edited"
)

var (
	ErrMalformedFrame = errors.New("malformed push frame")
	ErrUnknownFrame   = errors.New("unknown push frame type")
)

// Frame is one text message on the push channel. Push frames are hints: the
// receiver learns that something changed and fetches the authoritative state
// through the API. Key matching is case-insensitive.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessagePayload announces a message addressed to the recipient.
type NewMessagePayload struct {
	MessageID      int64     `json:"messageId"`
	SenderUsername string    `json:"senderUsername"`
	SentAt         time.Time `json:"sentAt"`
}

// MessageRefPayload is the payload of read, deleted and edited frames.
type MessageRefPayload struct {
	MessageID int64 `json:"messageId"`
}

// Event is a decoded frame of a known type. SenderUsername and SentAt are set
// only for new_message.
type Event struct {
	Type           string
	MessageID      int64
	SenderUsername string
	SentAt         time.Time
}

// EncodeFrame wraps payload under typ.
func EncodeFrame(typ string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Type: typ, Payload: raw})
}

// DecodeFrame parses a text frame. It returns ErrMalformedFrame for anything
// that is not a well-formed frame and ErrUnknownFrame for types this client
// does not understand; callers drop both.
func DecodeFrame(data []byte) (Event, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	typ := strings.ToLower(f.Type)
	switch typ {
	case TypeNewMessage:
		var p NewMessagePayload
		if err := decodePayload(f.Payload, &p); err != nil {
			return Event{}, err
		}
		return Event{Type: typ, MessageID: p.MessageID, SenderUsername: p.SenderUsername, SentAt: p.SentAt}, nil
	case TypeMessageRead, TypeMessageDeleted, TypeMessageEdited:
		var p MessageRefPayload
		if err := decodePayload(f.Payload, &p); err != nil {
			return Event{}, err
		}
		return Event{Type: typ, MessageID: p.MessageID}, nil
	case "":
		return Event{}, fmt.Errorf("%w: missing type", ErrMalformedFrame)
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownFrame, f.Type)
	}
}

func decodePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return fmt.Errorf("%w: missing payload", ErrMalformedFrame)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return nil
}
