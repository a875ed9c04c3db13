package broadcast

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

const DefaultBufferSize = 64

var _ Broker = (*Hub)(nil)

// Hub holds the broadcast groups of this process.
// Delivery never blocks: a subscriber whose buffer is full is removed from its group
// and its Messages channel is closed.
type Hub struct {
	mu         sync.Mutex
	groups     map[string]map[string]*Subscription
	bufferSize int
}

func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		groups:     map[string]map[string]*Subscription{},
		bufferSize: bufferSize,
	}
}

// Subscription is one membership of one group.
type Subscription struct {
	ID    string
	Group string

	hub      *Hub
	messages chan []byte
}

// Messages is closed when the subscription is closed or dropped for falling behind.
func (s *Subscription) Messages() <-chan []byte {
	return s.messages
}

// Close leaves the group. Safe to call more than once.
func (s *Subscription) Close() {
	s.hub.remove(s)
}

func (h *Hub) Subscribe(_ context.Context, group string) (*Subscription, error) {
	sub := &Subscription{
		ID:       uuid.NewString(),
		Group:    group,
		hub:      h,
		messages: make(chan []byte, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[group]
	if !ok {
		members = map[string]*Subscription{}
		h.groups[group] = members
	}
	members[sub.ID] = sub

	return sub, nil
}

func (h *Hub) Publish(_ context.Context, group string, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.groups[group] {
		select {
		case sub.messages <- payload:
		default:
			h.removeLocked(sub)
		}
	}
	return nil
}

// Subscribers returns the number of members of group.
func (h *Hub) Subscribers(group string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.groups[group])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(sub)
}

// removeLocked closes the channel only when the subscription is still registered,
// so each channel is closed exactly once.
func (h *Hub) removeLocked(sub *Subscription) {
	members, ok := h.groups[sub.Group]
	if !ok {
		return
	}
	if _, ok := members[sub.ID]; !ok {
		return
	}

	delete(members, sub.ID)
	close(sub.messages)
	if len(members) == 0 {
		delete(h.groups, sub.Group)
	}
}
