// Package broadcast fans chat frames out to every session subscribed to a room's group.
package broadcast

import "context"

// Publisher delivers payload to every current subscriber of group.
type Publisher interface {
	Publish(ctx context.Context, group string, payload []byte) error
}

// Subscriber joins a group. The returned Subscription must be closed to leave it.
type Subscriber interface {
	Subscribe(ctx context.Context, group string) (*Subscription, error)
}

type Broker interface {
	Publisher
	Subscriber
}
