// Package realtime runs match-gated chat sessions over a persistent connection.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mutualmatch/mutual-backend/internal/broadcast"
	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

type State int

const (
	StateConnecting State = iota
	StateAuthenticated
	StateRoomJoined
	StateActive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticated:
		return "authenticated"
	case StateRoomJoined:
		return "room_joined"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrInvalidTransition = errors.New("invalid session state transition")
	ErrSessionClosed     = errors.New("session closed")
	// ErrSubscriberDropped means the broadcast group dropped this session for falling behind.
	ErrSubscriberDropped = errors.New("session could not keep up with its room")

	errSessionEnded = errors.New("session ended")
)

const (
	DefaultPongWait      = 60 * time.Second
	DefaultMaxFrameBytes = 4096

	writeWait = 10 * time.Second
)

// Conn is the transport of an active session. *websocket.Conn implements it.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Acceptor completes the transport handshake. It is called only once the session is authorized
// and subscribed.
type Acceptor func() (Conn, error)

type inboundFrame struct {
	Message string `json:"message"`
}

// Manager holds what every session needs.
type Manager struct {
	Users        datasources.UserResolver
	AuthorizeCmd command.Command[command.AuthorizeChatRequest, command.ChatRoom]
	SendCmd      command.Command[command.SendChatMessageRequest, domain.Message]
	Subscriber   broadcast.Subscriber

	// PongWait is how long a connection may stay silent before it is dropped. Pings go out
	// at nine tenths of it. Zero means DefaultPongWait.
	PongWait time.Duration
	// MaxFrameBytes caps inbound frames; a larger frame ends the session. Zero means DefaultMaxFrameBytes.
	MaxFrameBytes int64
}

func (m *Manager) pongWait() time.Duration {
	if m.PongWait > 0 {
		return m.PongWait
	}
	return DefaultPongWait
}

func (m *Manager) maxFrameBytes() int64 {
	if m.MaxFrameBytes > 0 {
		return m.MaxFrameBytes
	}
	return DefaultMaxFrameBytes
}

func (m *Manager) NewSession(ctx context.Context) *Session {
	id := uuid.NewString()
	return &Session{
		ID:      id,
		manager: m,
		logger:  domain.LoggerFromContext(ctx).With("session_id", id),
		state:   StateConnecting,
	}
}

// Session is one connection's walk through
// Connecting -> Authenticated -> RoomJoined -> Active -> Closed.
// Any failure moves it straight to Closed. No lock is held across I/O.
type Session struct {
	ID string

	manager *Manager
	logger  *slog.Logger

	mu    sync.Mutex
	state State
	self  domain.UserSummary
	room  command.ChatRoom
	sub   *broadcast.Subscription
	conn  Conn
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Room is valid from StateRoomJoined on.
func (s *Session) Room() command.ChatRoom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room
}

func (s *Session) expect(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case state:
		return nil
	case StateClosed:
		return ErrSessionClosed
	default:
		return fmt.Errorf("%w: %s, want %s", ErrInvalidTransition, s.state, state)
	}
}

// advance moves from -> to, failing if the session was closed meanwhile.
func (s *Session) advance(from, to State, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != from {
		return ErrSessionClosed
	}
	apply()
	s.state = to
	return nil
}

// fail closes the session and returns err.
func (s *Session) fail(err error) error {
	s.Close()
	return err
}

// Authenticate resolves the identity the auth layer attached to the connection.
func (s *Session) Authenticate(ctx context.Context, userID domain.UserID) error {
	if err := s.expect(StateConnecting); err != nil {
		return err
	}
	if userID.IsAnonymous() {
		return s.fail(domain.ErrUnauthenticated)
	}

	self, err := s.manager.Users.ResolveUser(ctx, userID)
	if err != nil {
		return s.fail(fmt.Errorf("resolving user: %w", err))
	}

	return s.advance(StateConnecting, StateAuthenticated, func() {
		s.self = self
		s.logger = s.logger.With("user_id", self.ID)
	})
}

// Join authorizes the session for the room it shares with peerID.
func (s *Session) Join(ctx context.Context, peerID domain.UserID) error {
	if err := s.expect(StateAuthenticated); err != nil {
		return err
	}

	s.mu.Lock()
	selfID := s.self.ID
	s.mu.Unlock()

	room, err := s.manager.AuthorizeCmd.Execute(ctx, command.AuthorizeChatRequest{UserID: selfID, PeerID: peerID})
	if err != nil {
		return s.fail(fmt.Errorf("authorizing chat: %w", err))
	}

	return s.advance(StateAuthenticated, StateRoomJoined, func() {
		s.room = room
		s.logger = s.logger.With("room", room.ID())
	})
}

// Activate subscribes to the room's group and then accepts the connection.
func (s *Session) Activate(ctx context.Context, accept Acceptor) error {
	if err := s.expect(StateRoomJoined); err != nil {
		return err
	}

	room := s.Room()
	sub, err := s.manager.Subscriber.Subscribe(ctx, room.Pair.GroupName())
	if err != nil {
		return s.fail(fmt.Errorf("subscribing to room: %w", err))
	}
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		sub.Close()
		return ErrSessionClosed
	}
	s.sub = sub
	s.mu.Unlock()

	conn, err := accept()
	if err != nil {
		return s.fail(fmt.Errorf("accepting connection: %w", err))
	}

	if err := s.advance(StateRoomJoined, StateActive, func() { s.conn = conn }); err != nil {
		_ = conn.Close()
		return err
	}
	s.logger.DebugContext(ctx, "chat session active")
	return nil
}

// Send persists content as a message from this session's user and broadcasts it to the room.
func (s *Session) Send(ctx context.Context, content string) (domain.Message, error) {
	if err := s.expect(StateActive); err != nil {
		return domain.Message{}, err
	}

	s.mu.Lock()
	req := command.SendChatMessageRequest{Room: s.room.Pair, Sender: s.self, Content: content}
	s.mu.Unlock()

	return s.manager.SendCmd.Execute(ctx, req)
}

// Run relays frames in both directions until the connection ends, ctx is cancelled
// or an unrecoverable error occurs. The session is Closed when Run returns.
func (s *Session) Run(ctx context.Context) error {
	if err := s.expect(StateActive); err != nil {
		return err
	}
	defer s.Close()

	s.mu.Lock()
	conn, sub := s.conn, s.sub
	s.mu.Unlock()

	pongWait := s.manager.pongWait()
	conn.SetReadLimit(s.manager.maxFrameBytes())
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return fmt.Errorf("setting read deadline: %w", err)
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.readPump(ctx, conn)
	})
	eg.Go(func() error {
		return s.writePump(ctx, conn, sub, pongWait*9/10)
	})
	eg.Go(func() error {
		<-ctx.Done()
		s.Close()
		return nil
	})

	err := eg.Wait()
	if errors.Is(err, errSessionEnded) {
		s.logger.DebugContext(ctx, "chat session ended")
		return nil
	}
	return err
}

func (s *Session) readPump(ctx context.Context, conn Conn) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			switch {
			case s.State() == StateClosed:
			case errors.Is(err, websocket.ErrReadLimit):
				s.logger.WarnContext(ctx, "closing connection after oversized frame", "limit", s.manager.maxFrameBytes())
			default:
				s.logger.DebugContext(ctx, "connection read ended", "error", err)
			}
			return errSessionEnded
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.logger.WarnContext(ctx, "skipping malformed chat frame", "error", err)
			continue
		}
		if strings.TrimSpace(frame.Message) == "" {
			s.logger.DebugContext(ctx, "skipping empty chat frame")
			continue
		}

		if _, err := s.Send(ctx, frame.Message); err != nil {
			if errors.Is(err, ErrSessionClosed) {
				return errSessionEnded
			}
			return fmt.Errorf("sending message: %w", err)
		}
	}
}

func (s *Session) writePump(
	ctx context.Context, conn Conn, sub *broadcast.Subscription, pingPeriod time.Duration,
) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return errSessionEnded
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.logger.DebugContext(ctx, "connection ping failed", "error", err)
				return errSessionEnded
			}
		case payload, ok := <-sub.Messages():
			if !ok {
				if s.State() == StateClosed {
					return errSessionEnded
				}
				return ErrSubscriberDropped
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("setting write deadline: %w", err)
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				s.logger.DebugContext(ctx, "connection write ended", "error", err)
				return errSessionEnded
			}
		}
	}
}

// Close moves the session to Closed, leaving the broadcast group and closing the connection.
// Safe to call from any state and more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	sub, conn, logger := s.sub, s.conn, s.logger
	s.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Debug("closing connection", "error", err)
		}
	}
}
