package command

import (
	"context"
	"fmt"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

// RecordVoteRequest is the request for the RecordVote command.
type RecordVoteRequest struct {
	VoterID  domain.UserID
	TargetID domain.UserID
	Value    domain.VoteValue
}

type RecordVoteResult struct {
	Changed      bool
	MatchCreated bool
	// Match is set only when this call created it.
	Match *domain.Match
}

// RecordVote stores a like or dislike and creates the match when the like is reciprocated.
type RecordVote struct {
	Users datasources.UserResolver
	Votes datasources.VoteRecorder

	now func() time.Time
}

// NewRecordVote creates a properly initialized RecordVote command.
func NewRecordVote(users datasources.UserResolver, votes datasources.VoteRecorder) *RecordVote {
	return &RecordVote{
		Users: users,
		Votes: votes,
		now:   time.Now,
	}
}

func (c *RecordVote) Execute(ctx context.Context, req RecordVoteRequest) (RecordVoteResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.VoterID == req.TargetID {
		return RecordVoteResult{}, domain.ErrSelfInteraction
	}
	if !req.Value.IsValid() {
		return RecordVoteResult{}, domain.ErrInvalidVote
	}
	if _, err := c.Users.ResolveUser(ctx, req.TargetID); err != nil {
		return RecordVoteResult{}, fmt.Errorf("resolving target user: %w", err)
	}

	outcome, err := c.Votes.RecordVote(ctx, domain.Vote{
		VoterID:  req.VoterID,
		TargetID: req.TargetID,
		Value:    req.Value,
		VotedAt:  c.now().UTC(),
	})
	if err != nil {
		return RecordVoteResult{}, fmt.Errorf("recording vote: %w", err)
	}
	if !outcome.Changed {
		logger.DebugContext(ctx, "vote unchanged", "vote", req.Value)
		return RecordVoteResult{}, nil
	}

	result := RecordVoteResult{Changed: true}
	if outcome.Match != nil {
		logger.InfoContext(ctx, "match created", "room", outcome.Match.Pair.Key())
		result.MatchCreated = true
		result.Match = outcome.Match
	}
	return result, nil
}
