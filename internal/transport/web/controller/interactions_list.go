package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type InteractionsList struct {
	ListVotesCmd command.Command[command.ListVotesRequest, []domain.VoteView]
}

type InteractionsListResponse struct {
	Data []domain.VoteView `json:"data"`
}

func (c InteractionsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pages, err := parsePagination(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err, "unable to parse pagination parameters")
		return
	}

	value := domain.VoteLike
	if q := r.URL.Query(); q.Has("vote") {
		v, err := strconv.Atoi(q.Get("vote"))
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %w", domain.ErrInvalidVote, err), "unable to parse vote filter")
			return
		}
		value = domain.VoteValue(v)
	}

	views, err := c.ListVotesCmd.Execute(ctx, command.ListVotesRequest{
		VoterID:  domain.UserIDFromContext(ctx),
		Value:    value,
		Page:     pages.Page,
		PageSize: pages.PageSize,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to list votes")
		return
	}

	writeJSON(ctx, w, http.StatusOK, InteractionsListResponse{Data: views})
}
