package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/takerapp/taker-go/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject on an existing client. When
// queueGroup is non-empty the subscription is load balanced across the
// group.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.GetConn().QueueSubscribe(subject, queueGroup, cb)
	} else {
		subscription, err = client.GetConn().Subscribe(subject, cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	return &Consumer{subscription: subscription}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
