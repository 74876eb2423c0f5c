package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	ticketusecases "lumistream/internal/application/ticket/usecases"
	"lumistream/internal/shared/logger"
)

// MessageEventHandler is a callback for handling committed ticket messages.
type MessageEventHandler func(ctx context.Context, event ticketusecases.MessageEvent)

// MessageEventSubscriber receives ticket message events from all instances.
type MessageEventSubscriber interface {
	Subscribe(ctx context.Context, handler MessageEventHandler) error
}

const ticketMessageChannel = "lumistream:ticket:message"

// RedisMessageEventBus distributes ticket message events across instances
// over Redis Pub/Sub, so websocket subscribers connected to any node see
// every message.
type RedisMessageEventBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisMessageEventBus(client *redis.Client, logger logger.Interface) *RedisMessageEventBus {
	return &RedisMessageEventBus{
		client: client,
		logger: logger,
	}
}

// PublishMessagePosted implements the ticket event bus port.
func (b *RedisMessageEventBus) PublishMessagePosted(ctx context.Context, event ticketusecases.MessageEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, ticketMessageChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish ticket message event",
			"ticket_id", event.TicketID,
			"message_id", event.MessageID,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("ticket message event published",
		"ticket_id", event.TicketID,
		"message_id", event.MessageID,
	)
	return nil
}

// Subscribe blocks delivering events to the handler until ctx is done.
func (b *RedisMessageEventBus) Subscribe(ctx context.Context, handler MessageEventHandler) error {
	pubsub := b.client.Subscribe(ctx, ticketMessageChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to ticket message events", "channel", ticketMessageChannel)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("ticket message event subscriber stopped", "reason", ctx.Err())
			return nil
		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("ticket message event channel closed")
				return nil
			}

			var event ticketusecases.MessageEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Errorw("failed to unmarshal ticket message event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			handler(ctx, event)
		}
	}
}
