package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// LikeEventHandler processes one like event. Returning an error leaves the
// message for redelivery.
type LikeEventHandler func(ctx context.Context, event *LikeEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &Consumer{conn: conn, channel: ch}, nil
}

// Start consumes the like event queue until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context, handler LikeEventHandler) error {
	deliveries, err := c.channel.Consume(
		LikeEventQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume like event queue: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				var event LikeEvent
				if err := json.Unmarshal(delivery.Body, &event); err != nil {
					logrus.Errorf("dropping malformed like event: %v", err)
					_ = delivery.Nack(false, false)
					continue
				}
				if err := handler(ctx, &event); err != nil {
					logrus.Errorf("like event %s failed: %v", event.EventId, err)
					_ = delivery.Nack(false, true)
					continue
				}
				_ = delivery.Ack(false)
			}
		}
	}()
	return nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
