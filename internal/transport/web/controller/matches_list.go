package controller

import (
	"net/http"

	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type MatchesList struct {
	ListMatchesCmd command.Command[command.ListMatchesRequest, []domain.MatchView]
}

type MatchesListResponse struct {
	Data []domain.MatchView `json:"data"`
}

func (c MatchesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pages, err := parsePagination(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err, "unable to parse pagination parameters")
		return
	}

	views, err := c.ListMatchesCmd.Execute(ctx, command.ListMatchesRequest{
		UserID:   domain.UserIDFromContext(ctx),
		Page:     pages.Page,
		PageSize: pages.PageSize,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to list matches")
		return
	}

	writeJSON(ctx, w, http.StatusOK, MatchesListResponse{Data: views})
}
