package command

import (
	"context"
	"fmt"

	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type AuthorizeChatRequest struct {
	UserID domain.UserID
	PeerID domain.UserID
}

// ChatRoom is an authorized room as seen from the requesting user.
type ChatRoom struct {
	Pair domain.Pair
	Peer domain.UserSummary
}

// ID is the room identifier, identical for both participants.
func (r ChatRoom) ID() string {
	return r.Pair.Key()
}

// AuthorizeChat admits a pair of users to their chat room. A match is the only admission rule.
type AuthorizeChat struct {
	Users        datasources.UserResolver
	MatchChecker datasources.MatchChecker
}

func NewAuthorizeChat(users datasources.UserResolver, matchChecker datasources.MatchChecker) *AuthorizeChat {
	return &AuthorizeChat{Users: users, MatchChecker: matchChecker}
}

func (c *AuthorizeChat) Execute(ctx context.Context, req AuthorizeChatRequest) (ChatRoom, error) {
	if req.UserID == req.PeerID {
		return ChatRoom{}, domain.ErrSelfInteraction
	}

	peer, err := c.Users.ResolveUser(ctx, req.PeerID)
	if err != nil {
		return ChatRoom{}, fmt.Errorf("resolving peer: %w", err)
	}

	pair := domain.NewPair(req.UserID, req.PeerID)
	exists, err := c.MatchChecker.MatchExists(ctx, pair)
	if err != nil {
		return ChatRoom{}, fmt.Errorf("checking match: %w", err)
	}
	if !exists {
		return ChatRoom{}, domain.ErrNoMatch
	}

	return ChatRoom{Pair: pair, Peer: peer}, nil
}
