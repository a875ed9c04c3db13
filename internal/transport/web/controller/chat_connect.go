package controller

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/mutualmatch/mutual-backend/internal/realtime"
)

// ChatConnect upgrades to a websocket chat session with the peer named in the route.
// Refused connections are answered with a plain HTTP status and never upgraded.
type ChatConnect struct {
	Sessions *realtime.Manager
	Upgrader *websocket.Upgrader
}

func (c ChatConnect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := c.Sessions.NewSession(ctx)

	if err := sess.Authenticate(ctx, domain.UserIDFromContext(ctx)); err != nil {
		writeError(ctx, w, err, "chat connection refused")
		return
	}

	peerID, err := pathUserID(r, "peer_user_id")
	if err != nil {
		sess.Close()
		writeError(ctx, w, err, "invalid peer user id")
		return
	}
	if err := sess.Join(ctx, peerID); err != nil {
		writeError(ctx, w, err, "chat connection refused")
		return
	}

	logger := domain.LoggerFromContext(ctx).With("session_id", sess.ID, "room", sess.Room().ID())
	ctx = domain.ContextWithLogger(ctx, logger)

	err = sess.Activate(ctx, func() (realtime.Conn, error) {
		conn, err := c.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return nil, err
		}
		return conn, nil
	})
	if err != nil {
		// The upgrader has already answered the request.
		logger.WarnContext(ctx, "unable to activate chat session", "error", err)
		return
	}

	if err := sess.Run(ctx); err != nil {
		logger.WarnContext(ctx, "chat session closed with error", "error", err)
	}
}
