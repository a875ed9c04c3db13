package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type ListMatchesRequest struct {
	UserID   domain.UserID
	Page     int
	PageSize int
}

// ListMatches lists a user's matches with the other participant resolved.
type ListMatches struct {
	Matches datasources.UserMatchLister
	Users   datasources.UserResolver
}

func (c *ListMatches) Execute(ctx context.Context, req ListMatchesRequest) ([]domain.MatchView, error) {
	logger := domain.LoggerFromContext(ctx)

	matches, err := c.Matches.ListUserMatches(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}

	views := make([]domain.MatchView, 0, len(matches))
	for _, m := range matches {
		other, err := c.Users.ResolveUser(ctx, m.Pair.Other(req.UserID))
		if errors.Is(err, domain.ErrUnknownUser) {
			logger.WarnContext(ctx, "matched user no longer exists", "room", m.Pair.Key())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolving matched user: %w", err)
		}

		views = append(views, domain.MatchView{
			User:      other,
			RoomID:    m.Pair.Key(),
			MatchedAt: m.MatchedAt,
		})
	}
	return views, nil
}
