package controller

import (
	"net/http"

	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type ChatMessagesList struct {
	ListRoomMessagesCmd command.Command[command.ListRoomMessagesRequest, []domain.ChatFrame]
}

type ChatMessagesListResponse struct {
	Data []domain.ChatFrame `json:"data"`
}

func (c ChatMessagesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	peerID, err := pathUserID(r, "peer_user_id")
	if err != nil {
		writeError(r.Context(), w, err, "invalid peer user id")
		return
	}

	logger := domain.LoggerFromContext(r.Context()).With("peer_user_id", peerID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	pages, err := parsePagination(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err, "unable to parse pagination parameters")
		return
	}

	frames, err := c.ListRoomMessagesCmd.Execute(ctx, command.ListRoomMessagesRequest{
		UserID:   domain.UserIDFromContext(ctx),
		PeerID:   peerID,
		Page:     pages.Page,
		PageSize: pages.PageSize,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to list chat messages")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ChatMessagesListResponse{Data: frames})
}
