package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/models"
	natspkg "github.com/takerapp/taker-go/internal/pkg/nats"
	"github.com/takerapp/taker-go/services/dispatch"
)

// NatsHandler consumes the shoemaker response events published by the
// trips service.
type NatsHandler struct {
	client    *natspkg.Client
	uc        dispatch.DispatchUC
	consumers []*natspkg.Consumer
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(client *natspkg.Client, uc dispatch.DispatchUC) *NatsHandler {
	return &NatsHandler{client: client, uc: uc}
}

// Start subscribes to all dispatch subjects on the service queue group
func (h *NatsHandler) Start(ctx context.Context) error {
	subscriptions := []struct {
		subject string
		handler natspkg.MessageHandler
	}{
		{constants.SubjectShoemakerAccept, h.handleAccept(ctx)},
		{constants.SubjectShoemakerDecline, h.handleDecline(ctx)},
		{constants.SubjectShoemakerReconnect, h.handleReconnect(ctx)},
	}

	for _, sub := range subscriptions {
		consumer, err := natspkg.NewConsumer(h.client, sub.subject, constants.QueueGroupDispatch, sub.handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", sub.subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}
	return nil
}

// Stop unsubscribes every consumer
func (h *NatsHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

func (h *NatsHandler) handleAccept(ctx context.Context) natspkg.MessageHandler {
	return func(message []byte) error {
		var ev models.ShoemakerResponseEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			return fmt.Errorf("failed to decode accept event: %w", err)
		}
		return h.uc.HandleAccept(ctx, ev.TripID, ev.ShoemakerID)
	}
}

func (h *NatsHandler) handleDecline(ctx context.Context) natspkg.MessageHandler {
	return func(message []byte) error {
		var ev models.ShoemakerResponseEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			return fmt.Errorf("failed to decode decline event: %w", err)
		}
		return h.uc.HandleDecline(ctx, ev.TripID, ev.ShoemakerID)
	}
}

func (h *NatsHandler) handleReconnect(ctx context.Context) natspkg.MessageHandler {
	return func(message []byte) error {
		var ev models.ShoemakerReconnectEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			return fmt.Errorf("failed to decode reconnect event: %w", err)
		}
		return h.uc.HandleReconnect(ctx, ev.ShoemakerID)
	}
}
