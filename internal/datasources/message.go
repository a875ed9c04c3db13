package datasources

import (
	"context"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

// MessageCreator persists msg and returns it with its ID and SentAt assigned.
type MessageCreator interface {
	CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
}

// RoomMessageLister lists a room's messages ordered by time ascending.
type RoomMessageLister interface {
	ListRoomMessages(ctx context.Context, room domain.Pair, page, pageSize int) ([]domain.Message, error)
}

type MessageRepository interface {
	MessageCreator
	RoomMessageLister
}
