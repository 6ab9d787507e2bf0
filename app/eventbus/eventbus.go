package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ErrNoTopic is returned when a message is published without a topic.
var ErrNoTopic = errors.New("message has no topic")

// EventBus publishes and subscribes to watermill messages.
type EventBus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

// NewEventBus creates an in-process EventBus. Messages published before any
// subscriber exists are dropped unless persistent is set.
func NewEventBus(logger *slog.Logger, persistent bool) *EventBus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 64,
			Persistent:          persistent,
		},
		watermill.NewSlogLogger(logger),
	)

	return &EventBus{
		pubsub: pubsub,
		logger: logger,
	}
}

// Publisher exposes the bus as a watermill publisher.
func (eb *EventBus) Publisher() message.Publisher {
	return eb
}

// Publish sends msg to topic.
func (eb *EventBus) Publish(topic string, msgs ...*message.Message) error {
	if topic == "" {
		return ErrNoTopic
	}

	for _, msg := range msgs {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}
		eb.logger.Debug("Publishing message",
			slog.String("topic", topic),
			slog.String("message_id", msg.UUID),
			slog.Int("payload_bytes", len(msg.Payload)),
		)
	}

	if err := eb.pubsub.Publish(topic, msgs...); err != nil {
		eb.logger.Error("Failed to publish message",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe runs handler for each message on topic until ctx is done.
// Messages whose handler fails are nacked.
func (eb *EventBus) Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, msg *message.Message) error) error {
	messages, err := eb.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}

	eb.logger.Info("Subscription started", slog.String("topic", topic))

	go func() {
		for msg := range messages {
			if err := handler(ctx, msg); err != nil {
				eb.logger.Error("Handler error", slog.String("topic", topic), slog.Any("error", err))
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	return nil
}

// Close stops delivery to all subscribers.
func (eb *EventBus) Close() error {
	if err := eb.pubsub.Close(); err != nil {
		eb.logger.Error("Error closing pubsub", slog.Any("error", err))
		return err
	}
	return nil
}
