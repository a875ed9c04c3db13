package domain

import "time"

// VoteValue is the decision a voter made about a target.
type VoteValue int

const (
	VoteLike    VoteValue = 1
	VoteDislike VoteValue = -1
)

func (v VoteValue) IsValid() bool {
	return v == VoteLike || v == VoteDislike
}

// Vote is the single stored decision of VoterID about TargetID.
type Vote struct {
	VoterID  UserID    `json:"voter_id"`
	TargetID UserID    `json:"target_id"`
	Value    VoteValue `json:"vote"`
	VotedAt  time.Time `json:"timestamp"`
}

// VoteView is a vote as listed to its voter, with the target resolved.
type VoteView struct {
	User    UserSummary `json:"user"`
	Value   VoteValue   `json:"vote"`
	VotedAt time.Time   `json:"timestamp"`
}
