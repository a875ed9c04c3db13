package domain

import "time"

// Message is a chat message owned by the room identified by Room.
type Message struct {
	ID       int64
	Room     Pair
	SenderID UserID
	Content  string
	SentAt   time.Time
}

// ChatFrame is the payload broadcast to every session of a room, and returned by the history endpoint.
type ChatFrame struct {
	Message        string `json:"message"`
	SenderID       UserID `json:"senderID"`
	SenderUsername string `json:"senderUsername"`
	Timestamp      string `json:"timestamp"`
}

// NewChatFrame renders a persisted message with its sender's display name.
func NewChatFrame(msg Message, senderUsername string) ChatFrame {
	return ChatFrame{
		Message:        msg.Content,
		SenderID:       msg.SenderID,
		SenderUsername: senderUsername,
		Timestamp:      msg.SentAt.UTC().Format(time.RFC3339Nano),
	}
}
