// Package events moves motorcycle registration notifications over a
// Redis channel: the API publishes on registration, the consumer binary
// subscribes and records tracked registrations.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type redisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) service.EventPublisher {
	return &redisPublisher{client: client, channel: channel}
}

func (p *redisPublisher) PublishMotorcycleRegistered(ctx context.Context, msg domain.MotorcycleRegisteredMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling registration event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", p.channel, err)
	}
	return nil
}

// NewRedisClient builds a client for the configured address.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
