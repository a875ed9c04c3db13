package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mutualmatch/mutual-backend/internal/broadcast"
	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type SendChatMessageRequest struct {
	Room    domain.Pair
	Sender  domain.UserSummary
	Content string
}

// SendChatMessage persists a message and then broadcasts it to the room's group.
// A message is never published before it is durable.
type SendChatMessage struct {
	MessageCreator datasources.MessageCreator
	Publisher      broadcast.Publisher
}

func NewSendChatMessage(messageCreator datasources.MessageCreator, publisher broadcast.Publisher) *SendChatMessage {
	return &SendChatMessage{MessageCreator: messageCreator, Publisher: publisher}
}

func (c *SendChatMessage) Execute(ctx context.Context, req SendChatMessageRequest) (domain.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	msg, err := c.MessageCreator.CreateMessage(ctx, domain.Message{
		Room:     req.Room,
		SenderID: req.Sender.ID,
		Content:  req.Content,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("persisting message: %w", err)
	}

	payload, err := json.Marshal(domain.NewChatFrame(msg, req.Sender.Username))
	if err != nil {
		return domain.Message{}, fmt.Errorf("encoding chat frame: %w", err)
	}

	if err := c.Publisher.Publish(ctx, req.Room.GroupName(), payload); err != nil {
		return domain.Message{}, fmt.Errorf("publishing message: %w", err)
	}
	return msg, nil
}
