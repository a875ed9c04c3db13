package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type ListVotesRequest struct {
	VoterID  domain.UserID
	Value    domain.VoteValue
	Page     int
	PageSize int
}

// ListVotes lists the users a voter liked, or disliked, newest first.
type ListVotes struct {
	Votes datasources.VoterVoteLister
	Users datasources.UserResolver
}

func (c *ListVotes) Execute(ctx context.Context, req ListVotesRequest) ([]domain.VoteView, error) {
	if !req.Value.IsValid() {
		return nil, domain.ErrInvalidVote
	}

	votes, err := c.Votes.ListVotesByVoter(ctx, req.VoterID, req.Value, req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing votes: %w", err)
	}

	views := make([]domain.VoteView, 0, len(votes))
	for _, v := range votes {
		target, err := c.Users.ResolveUser(ctx, v.TargetID)
		if errors.Is(err, domain.ErrUnknownUser) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolving voted user: %w", err)
		}
		views = append(views, domain.VoteView{User: target, Value: v.Value, VotedAt: v.VotedAt})
	}
	return views, nil
}
