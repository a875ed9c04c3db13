package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mutualmatch/mutual-backend/internal/broadcast"
	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/datasources/memory"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var errFakeConnClosed = errors.New("fake connection closed")

type fakeConn struct {
	in     chan []byte
	out    chan []byte
	pings  chan struct{}
	closed chan struct{}
	once   sync.Once

	mu           sync.Mutex
	readLimit    int64
	readDeadline time.Time
	pongHandler  func(string) error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:     make(chan []byte, 8),
		out:    make(chan []byte, 8),
		pings:  make(chan struct{}, 8),
		closed: make(chan struct{}),
	}
}

func (c *fakeConn) WriteControl(messageType int, _ []byte, _ time.Time) error {
	if messageType == websocket.PingMessage {
		select {
		case c.pings <- struct{}{}:
		default:
		}
	}
	return nil
}

func (c *fakeConn) SetReadLimit(limit int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readLimit = limit
}

func (c *fakeConn) SetReadDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readDeadline = t
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) SetPongHandler(h func(string) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pongHandler = h
}

func (c *fakeConn) limits() (int64, time.Time, func(string) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLimit, c.readDeadline, c.pongHandler
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case p := <-c.in:
		return websocket.TextMessage, p, nil
	case <-c.closed:
		return 0, nil, errFakeConnClosed
	}
}

func (c *fakeConn) WriteMessage(_ int, p []byte) error {
	select {
	case c.out <- p:
		return nil
	case <-c.closed:
		return errFakeConnClosed
	}
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) receive(t *testing.T) domain.ChatFrame {
	t.Helper()
	select {
	case p := <-c.out:
		var frame domain.ChatFrame
		require.NoError(t, json.Unmarshal(p, &frame))
		return frame
	case <-time.After(2 * time.Second):
		t.Fatal("expected an outbound frame")
		return domain.ChatFrame{}
	}
}

type fixture struct {
	store   *memory.Store
	hub     *broadcast.Hub
	manager *Manager
}

func newFixture(t *testing.T, bufferSize int) *fixture {
	store := memory.New()
	store.AddUser(domain.UserSummary{ID: 1, Username: "ivan"})
	store.AddUser(domain.UserSummary{ID: 2, Username: "maria"})
	store.AddUser(domain.UserSummary{ID: 3, Username: "olga"})
	store.AddMatch(domain.NewPair(1, 2))

	hub := broadcast.NewHub(bufferSize)
	return &fixture{
		store: store,
		hub:   hub,
		manager: &Manager{
			Users:        store,
			AuthorizeCmd: command.NewAuthorizeChat(store, store),
			SendCmd:      command.NewSendChatMessage(store, hub),
			Subscriber:   hub,
		},
	}
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

// open drives a session to Active over conn and runs it in the background.
func (f *fixture) open(t *testing.T, ctx context.Context, self, peer domain.UserID, conn *fakeConn) (*Session, <-chan error) {
	t.Helper()
	sess := f.manager.NewSession(ctx)
	require.NoError(t, sess.Authenticate(ctx, self))
	require.NoError(t, sess.Join(ctx, peer))
	require.NoError(t, sess.Activate(ctx, func() (Conn, error) { return conn, nil }))
	require.Equal(t, StateActive, sess.State())

	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()
	return sess, done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
		return nil
	}
}

func TestSession_RefusedBeforeAccept(t *testing.T) {
	cases := []struct {
		name    string
		self    domain.UserID
		peer    domain.UserID
		wantErr error
		state   State
	}{
		{name: "anonymous", self: domain.AnonymousUserID, peer: 2, wantErr: domain.ErrUnauthenticated},
		{name: "unknown_self", self: 99, peer: 2, wantErr: domain.ErrUnknownUser},
		{name: "unknown_peer", self: 1, peer: 99, wantErr: domain.ErrUnknownUser},
		{name: "no_match", self: 1, peer: 3, wantErr: domain.ErrNoMatch},
		{name: "self_chat", self: 1, peer: 1, wantErr: domain.ErrSelfInteraction},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, 4)
			ctx := testContext()
			sess := f.manager.NewSession(ctx)

			err := sess.Authenticate(ctx, tc.self)
			if err == nil {
				err = sess.Join(ctx, tc.peer)
			}
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, StateClosed, sess.State())

			accepted := false
			err = sess.Activate(ctx, func() (Conn, error) {
				accepted = true
				return newFakeConn(), nil
			})
			assert.ErrorIs(t, err, ErrSessionClosed)
			assert.False(t, accepted, "connection accepted without authorization")
			assert.Equal(t, 0, f.hub.Subscribers(domain.NewPair(tc.self, tc.peer).GroupName()))
		})
	}
}

func TestSession_InvalidTransition(t *testing.T) {
	f := newFixture(t, 4)
	ctx := testContext()
	sess := f.manager.NewSession(ctx)

	err := sess.Join(ctx, 2)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateConnecting, sess.State())

	_, err = sess.Send(ctx, "hi")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_AcceptFailureLeavesGroup(t *testing.T) {
	f := newFixture(t, 4)
	ctx := testContext()
	sess := f.manager.NewSession(ctx)
	require.NoError(t, sess.Authenticate(ctx, 1))
	require.NoError(t, sess.Join(ctx, 2))

	err := sess.Activate(ctx, func() (Conn, error) {
		assert.Equal(t, 1, f.hub.Subscribers("chat_1_2"), "subscribed before accepting")
		return nil, errors.New("bad handshake")
	})
	require.Error(t, err)
	assert.Equal(t, StateClosed, sess.State())
	assert.Equal(t, 0, f.hub.Subscribers("chat_1_2"))
}

func TestSession_MessagesReachEverySessionOfRoom(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(t, 8)
	ctx := testContext()

	ivanConn, ivanOtherConn, mariaConn := newFakeConn(), newFakeConn(), newFakeConn()
	ivan, ivanDone := f.open(t, ctx, 1, 2, ivanConn)
	_, ivanOtherDone := f.open(t, ctx, 1, 2, ivanOtherConn)
	maria, mariaDone := f.open(t, ctx, 2, 1, mariaConn)

	assert.Equal(t, ivan.Room().ID(), maria.Room().ID())
	assert.Equal(t, 3, f.hub.Subscribers("chat_1_2"))

	ivanConn.in <- []byte(`{"message":"hi maria"}`)

	for _, conn := range []*fakeConn{mariaConn, ivanConn, ivanOtherConn} {
		frame := conn.receive(t)
		assert.Equal(t, "hi maria", frame.Message)
		assert.Equal(t, domain.UserID(1), frame.SenderID)
		assert.Equal(t, "ivan", frame.SenderUsername)
		assert.NotEmpty(t, frame.Timestamp)
	}

	// The frame is only broadcast after the message is durable.
	stored, err := f.store.ListRoomMessages(ctx, domain.NewPair(1, 2), 1, 50)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "hi maria", stored[0].Content)

	// Closing one connection does not affect the others.
	require.NoError(t, ivanOtherConn.Close())
	require.NoError(t, waitDone(t, ivanOtherDone))
	assert.Equal(t, 2, f.hub.Subscribers("chat_1_2"))

	mariaConn.in <- []byte(`{"message":"hello"}`)
	assert.Equal(t, "hello", ivanConn.receive(t).Message)
	assert.Equal(t, "maria", mariaConn.receive(t).SenderUsername)

	require.NoError(t, ivanConn.Close())
	require.NoError(t, mariaConn.Close())
	require.NoError(t, waitDone(t, ivanDone))
	require.NoError(t, waitDone(t, mariaDone))

	assert.Equal(t, StateClosed, ivan.State())
	assert.Equal(t, StateClosed, maria.State())
	assert.Equal(t, 0, f.hub.Subscribers("chat_1_2"))
}

func TestSession_SkipsMalformedFrames(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(t, 8)
	ctx := testContext()
	conn := newFakeConn()
	_, done := f.open(t, ctx, 1, 2, conn)

	conn.in <- []byte(`not json`)
	conn.in <- []byte(`{"message":"   "}`)
	conn.in <- []byte(`{"message":"valid"}`)

	assert.Equal(t, "valid", conn.receive(t).Message)

	stored, err := f.store.ListRoomMessages(ctx, domain.NewPair(1, 2), 1, 50)
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	require.NoError(t, conn.Close())
	require.NoError(t, waitDone(t, done))
}

func TestSession_CancelClosesConnection(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(t, 8)
	ctx, cancel := context.WithCancel(testContext())
	conn := newFakeConn()
	sess, done := f.open(t, ctx, 2, 1, conn)

	cancel()
	require.NoError(t, waitDone(t, done))
	assert.Equal(t, StateClosed, sess.State())
	assert.Equal(t, 0, f.hub.Subscribers("chat_1_2"))

	select {
	case <-conn.closed:
	default:
		t.Fatal("connection left open")
	}
}

func TestSession_SlowSubscriberIsDropped(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(t, 1)
	ctx := testContext()

	// Writes block until the test reads them.
	stuck := newFakeConn()
	stuck.in, stuck.out = make(chan []byte), make(chan []byte)
	_, done := f.open(t, ctx, 2, 1, stuck)

	// One frame blocks the write pump, the next fills the buffer, the third overflows it.
	for range 3 {
		require.NoError(t, f.hub.Publish(ctx, "chat_1_2", []byte(`{"message":"x"}`)))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return f.hub.Subscribers("chat_1_2") == 0
	}, time.Second, 10*time.Millisecond)

	// Unblock the writer; once it drains what was buffered it finds the group gone.
	for {
		select {
		case <-stuck.out:
		case err := <-done:
			require.ErrorIs(t, err, ErrSubscriberDropped)
			return
		case <-time.After(2 * time.Second):
			t.Fatal("session did not stop")
		}
	}
}

func TestSession_KeepaliveAndReadLimit(t *testing.T) {
	defer goleak.VerifyNone(t)

	cases := []struct {
		name          string
		pongWait      time.Duration
		maxFrameBytes int64
		wantWait      time.Duration
		wantLimit     int64
	}{
		{name: "defaults", wantWait: DefaultPongWait, wantLimit: DefaultMaxFrameBytes},
		{name: "configured", pongWait: 50 * time.Millisecond, maxFrameBytes: 512, wantWait: 50 * time.Millisecond, wantLimit: 512},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, 8)
			f.manager.PongWait = tc.pongWait
			f.manager.MaxFrameBytes = tc.maxFrameBytes
			ctx := testContext()
			conn := newFakeConn()

			start := time.Now()
			_, done := f.open(t, ctx, 1, 2, conn)

			var (
				limit    int64
				deadline time.Time
				onPong   func(string) error
			)
			require.Eventually(t, func() bool {
				limit, deadline, onPong = conn.limits()
				return onPong != nil
			}, time.Second, 5*time.Millisecond)
			assert.Equal(t, tc.wantLimit, limit)
			assert.False(t, deadline.Before(start.Add(tc.wantWait)))

			// A pong pushes the read deadline out again.
			time.Sleep(5 * time.Millisecond)
			require.NoError(t, onPong(""))
			_, extended, _ := conn.limits()
			assert.True(t, extended.After(deadline))

			require.NoError(t, conn.Close())
			require.NoError(t, waitDone(t, done))
		})
	}
}

func TestSession_SendsPings(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(t, 8)
	f.manager.PongWait = 20 * time.Millisecond
	ctx := testContext()
	conn := newFakeConn()
	_, done := f.open(t, ctx, 1, 2, conn)

	for range 2 {
		select {
		case <-conn.pings:
		case <-time.After(time.Second):
			t.Fatal("expected a ping")
		}
	}

	require.NoError(t, conn.Close())
	require.NoError(t, waitDone(t, done))
}

func TestSession_PreservesPerSenderOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(t, 16)
	ctx := testContext()
	ivanConn, mariaConn := newFakeConn(), newFakeConn()
	_, ivanDone := f.open(t, ctx, 1, 2, ivanConn)
	_, mariaDone := f.open(t, ctx, 2, 1, mariaConn)

	want := []string{"one", "two", "three", "four", "five"}
	for _, msg := range want {
		ivanConn.in <- []byte(`{"message":"` + msg + `"}`)
	}

	for _, msg := range want {
		assert.Equal(t, msg, mariaConn.receive(t).Message)
	}

	stored, err := f.store.ListRoomMessages(ctx, domain.NewPair(1, 2), 1, 50)
	require.NoError(t, err)
	require.Len(t, stored, len(want))
	for i, msg := range want {
		assert.Equal(t, msg, stored[i].Content)
	}

	require.NoError(t, ivanConn.Close())
	require.NoError(t, mariaConn.Close())
	require.NoError(t, waitDone(t, ivanDone))
	require.NoError(t, waitDone(t, mariaDone))
}
