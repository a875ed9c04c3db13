package broadcast

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const redisChannelPrefix = "chat:room:"

var _ Broker = (*RedisRelay)(nil)

// RedisRelay publishes through Redis so that sessions of the same room served by different
// processes share one group. Every process relays the pattern subscription into its local Hub.
type RedisRelay struct {
	client *redis.Client
	hub    *Hub
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewRedisRelay(client *redis.Client, hub *Hub) *RedisRelay {
	return &RedisRelay{client: client, hub: hub}
}

func (r *RedisRelay) Subscribe(ctx context.Context, group string) (*Subscription, error) {
	return r.hub.Subscribe(ctx, group)
}

func (r *RedisRelay) Publish(ctx context.Context, group string, payload []byte) error {
	if err := r.client.Publish(ctx, redisChannelPrefix+group, payload).Err(); err != nil {
		return fmt.Errorf("publishing to redis channel: %w", err)
	}
	return nil
}

// Run relays messages from Redis into the local hub until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	pubsub := r.client.PSubscribe(ctx, redisChannelPrefix+"*")
	defer func() {
		if err := pubsub.Close(); err != nil {
			logger.WarnContext(ctx, "closing redis subscription", "error", err)
		}
	}()

	if _, err := pubsub.Receive(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("subscribing to redis channels: %w", err)
	}
	logger.InfoContext(ctx, "relaying chat rooms from redis", "pattern", redisChannelPrefix+"*")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errors.New("redis subscription channel closed")
			}
			group := strings.TrimPrefix(msg.Channel, redisChannelPrefix)
			if err := r.hub.Publish(ctx, group, []byte(msg.Payload)); err != nil {
				logger.WarnContext(ctx, "relaying redis message", "error", err, "group", group)
			}
		}
	}
}

func (r *RedisRelay) Close() error {
	return r.client.Close()
}
