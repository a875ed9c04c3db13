package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

const maxVoteBodyBytes = 1 << 10

type InteractionVote struct {
	RecordVoteCmd command.Command[command.RecordVoteRequest, command.RecordVoteResult]
}

type InteractionVoteRequest struct {
	Vote *int `json:"vote"`
}

type InteractionVoteResponse struct {
	Message      string `json:"message"`
	Changed      bool   `json:"changed"`
	MatchCreated bool   `json:"matchCreated"`
}

func (c InteractionVote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathUserID(r, "target_user_id")
	if err != nil {
		writeError(r.Context(), w, err, "invalid target user id")
		return
	}

	logger := domain.LoggerFromContext(r.Context()).With("target_user_id", targetID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body InteractionVoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxVoteBodyBytes)).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decoding body: %w", domain.ErrInvalidVote, err), "unable to parse vote")
		return
	}
	if body.Vote == nil {
		writeError(ctx, w, domain.ErrInvalidVote, "vote missing from body")
		return
	}

	res, err := c.RecordVoteCmd.Execute(ctx, command.RecordVoteRequest{
		VoterID:  domain.UserIDFromContext(r.Context()),
		TargetID: targetID,
		Value:    domain.VoteValue(*body.Vote),
	})
	if err != nil {
		writeError(ctx, w, err, "unable to record vote")
		return
	}

	resp := InteractionVoteResponse{
		Message:      "Vote recorded.",
		Changed:      res.Changed,
		MatchCreated: res.MatchCreated,
	}
	switch {
	case !res.Changed:
		resp.Message = "Vote unchanged."
	case res.MatchCreated:
		resp.Message = "It's a match! You can now chat with each other."
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
