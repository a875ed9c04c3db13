package router

import (
	"context"
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/realtime"
	"github.com/mutualmatch/mutual-backend/internal/transport/web/controller"
	"github.com/rs/cors"
)

// Commands are the operations the REST routes execute. Chat connections go through the session manager.
type Commands struct {
	RecordVote       *command.RecordVote
	ListMatches      *command.ListMatches
	ListVotes        *command.ListVotes
	ListRoomMessages *command.ListRoomMessages
}

func MakeRouter(
	cmds Commands,
	sessions *realtime.Manager,
	allowedOrigins []string,
	healthCheck func(ctx context.Context) error,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(authMiddleware)

	r.Handle("/healthz", controller.Health{
		Check: healthCheck,
	}).Methods(http.MethodGet)

	r.Handle("/v1/interactions", requireAuthMiddleware(controller.InteractionsList{
		ListVotesCmd: cmds.ListVotes,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/interactions/{target_user_id}", requireAuthMiddleware(controller.InteractionVote{
		RecordVoteCmd: cmds.RecordVote,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/matches", requireAuthMiddleware(controller.MatchesList{
		ListMatchesCmd: cmds.ListMatches,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/chat/{peer_user_id}/messages", requireAuthMiddleware(controller.ChatMessagesList{
		ListRoomMessagesCmd: cmds.ListRoomMessages,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/chat/{peer_user_id}", requireAuthMiddleware(controller.ChatConnect{
		Sessions: sessions,
		Upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	})).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r), nil
}

// originChecker applies the CORS origin list to websocket handshakes.
// Requests without an Origin header come from non-browser clients and are allowed.
func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	if slices.Contains(allowedOrigins, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowedOrigins, origin)
	}
}
