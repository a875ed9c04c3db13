package datasources

import (
	"context"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

// VoteOutcome reports what RecordVote wrote.
type VoteOutcome struct {
	// Changed is false if the stored value already equalled the vote; nothing is written then.
	Changed bool
	// Match is set only when this vote completed a mutual like and created the pair's match.
	Match *domain.Match
}

// VoteRecorder stores the vote for (vote.VoterID, vote.TargetID), replacing any previous value.
// When the vote is a like answering a stored reverse like, the pair's match is created in the same
// transaction. Either everything is written or nothing is, and of two concurrent reciprocal likes
// exactly one creates the match.
type VoteRecorder interface {
	RecordVote(ctx context.Context, vote domain.Vote) (VoteOutcome, error)
}

// VoterVoteLister lists the votes a user cast with the given value, newest first.
type VoterVoteLister interface {
	ListVotesByVoter(
		ctx context.Context, voterID domain.UserID, value domain.VoteValue, page, pageSize int,
	) ([]domain.Vote, error)
}

type VoteRepository interface {
	VoteRecorder
	VoterVoteLister
}
