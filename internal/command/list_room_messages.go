package command

import (
	"context"
	"fmt"

	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type ListRoomMessagesRequest struct {
	UserID   domain.UserID
	PeerID   domain.UserID
	Page     int
	PageSize int
}

// ListRoomMessages returns a room's history, oldest first, behind the same gate as the live channel.
type ListRoomMessages struct {
	AuthorizeCmd Command[AuthorizeChatRequest, ChatRoom]
	Users        datasources.UserResolver
	Messages     datasources.RoomMessageLister
}

func (c *ListRoomMessages) Execute(ctx context.Context, req ListRoomMessagesRequest) ([]domain.ChatFrame, error) {
	room, err := c.AuthorizeCmd.Execute(ctx, AuthorizeChatRequest{UserID: req.UserID, PeerID: req.PeerID})
	if err != nil {
		return nil, fmt.Errorf("authorizing chat: %w", err)
	}

	self, err := c.Users.ResolveUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}
	usernames := map[domain.UserID]string{
		self.ID:      self.Username,
		room.Peer.ID: room.Peer.Username,
	}

	messages, err := c.Messages.ListRoomMessages(ctx, room.Pair, req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	frames := make([]domain.ChatFrame, 0, len(messages))
	for _, msg := range messages {
		frames = append(frames, domain.NewChatFrame(msg, usernames[msg.SenderID]))
	}
	return frames, nil
}
