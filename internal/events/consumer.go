package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
)

// Consumer subscribes to motorcycle registration messages and persists
// a RegistrationEvent for motorcycles of the tracked model year.
type Consumer struct {
	client      *redis.Client
	channel     string
	trackedYear int
	eventRepo   repository.RegistrationEventRepository
}

func NewConsumer(client *redis.Client, channel string, trackedYear int, eventRepo repository.RegistrationEventRepository) *Consumer {
	return &Consumer{
		client:      client,
		channel:     channel,
		trackedYear: trackedYear,
		eventRepo:   eventRepo,
	}
}

// Run blocks consuming messages until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	sub := c.client.Subscribe(ctx, c.channel)
	defer sub.Close()

	// Force the subscription before reading the channel.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", c.channel, err)
	}

	logger.Info("Consuming motorcycle registration events", "channel", c.channel, "tracked_year", c.trackedYear)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := c.handle(ctx, []byte(msg.Payload)); err != nil {
				logger.Error("Failed to handle registration event", "error", err)
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, payload []byte) error {
	var msg domain.MotorcycleRegisteredMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("decoding registration message: %w", err)
	}

	if msg.Year != c.trackedYear {
		logger.Debug("Ignoring registration outside tracked year", "motorcycle_id", msg.MotorcycleID, "year", msg.Year)
		return nil
	}

	event := &domain.RegistrationEvent{
		MotorcycleID:     msg.MotorcycleID,
		RegistrationDate: msg.RegisteredOn,
		Message:          fmt.Sprintf("Motorcycle %s (%d %s) registered", msg.LicensePlate, msg.Year, msg.Model),
	}
	if err := c.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("storing registration event: %w", err)
	}

	logger.Info("Recorded registration event", "motorcycle_id", msg.MotorcycleID, "license_plate", msg.LicensePlate)
	return nil
}
