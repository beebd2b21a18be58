package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/logger"
)

// DefaultComplaintChannel carries complaint.filed and complaint.status_changed
// events as JSON.
const DefaultComplaintChannel = "civicpulse:complaint:events"

// RedisComplaintEventBus publishes complaint lifecycle events over Redis
// Pub/Sub and lets other processes follow them.
type RedisComplaintEventBus struct {
	client  *redis.Client
	channel string
	logger  logger.Interface
}

func NewRedisComplaintEventBus(client *redis.Client, channel string, logger logger.Interface) *RedisComplaintEventBus {
	if channel == "" {
		channel = DefaultComplaintChannel
	}
	return &RedisComplaintEventBus{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (b *RedisComplaintEventBus) Publish(ctx context.Context, event complaint.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal complaint event: %w", err)
	}

	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish complaint event",
			"event_type", event.Type,
			"complaint_id", event.ComplaintID,
			"error", err,
		)
		return fmt.Errorf("failed to publish complaint event: %w", err)
	}

	b.logger.Debugw("complaint event published",
		"event_type", event.Type,
		"complaint_id", event.ComplaintID,
	)
	return nil
}

// Subscribe delivers events to handler until ctx is cancelled, reconnecting
// with exponential backoff when the subscription drops.
func (b *RedisComplaintEventBus) Subscribe(ctx context.Context, handler func(complaint.Event)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("complaint event subscription disconnected, reconnecting",
			"channel", b.channel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisComplaintEventBus) subscribe(ctx context.Context, handler func(complaint.Event)) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", b.channel, err)
	}

	b.logger.Infow("subscribed to complaint events", "channel", b.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("channel %s closed", b.channel)
			}
			var event complaint.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal complaint event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}
			handler(event)
		}
	}
}

// NopPublisher drops events. Used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, complaint.Event) error { return nil }
