package handler

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	natspkg "github.com/takerapp/taker-go/internal/pkg/nats"
	wspkg "github.com/takerapp/taker-go/internal/pkg/websocket"
)

// WSRelayHandler forwards realtime events published by the dispatch
// service to the websocket clients this service owns.
type WSRelayHandler struct {
	client    *natspkg.Client
	ws        *wspkg.Manager
	subs      []*nats.Subscription
	consumers []*natspkg.Consumer
}

// NewWSRelayHandler creates a new relay handler
func NewWSRelayHandler(client *natspkg.Client, ws *wspkg.Manager) *WSRelayHandler {
	return &WSRelayHandler{client: client, ws: ws}
}

// Start subscribes to the relay subjects. No queue group: every
// instance must see the event, only the one holding the connection
// delivers it.
func (h *WSRelayHandler) Start() error {
	offerSub, err := h.client.GetConn().Subscribe(constants.SubjectWSOffer, h.handleOffer)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, offerSub)

	relays := []struct {
		subject string
		handler natspkg.MessageHandler
	}{
		{constants.SubjectWSNotifyUser, h.handleNotifyUser},
		{constants.SubjectWSNotifyRoom, h.handleNotifyRoom},
		{constants.SubjectWSJoinRoom, h.handleJoinRoom},
	}
	for _, relay := range relays {
		consumer, err := natspkg.NewConsumer(h.client, relay.subject, "", relay.handler)
		if err != nil {
			return err
		}
		h.consumers = append(h.consumers, consumer)
	}
	return nil
}

// Stop unsubscribes all relay subscriptions
func (h *WSRelayHandler) Stop() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

// handleOffer delivers an offer and replies whether the shoemaker had
// a live connection.
func (h *WSRelayHandler) handleOffer(msg *nats.Msg) {
	var ev models.OfferDeliveryEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		logger.Error("Failed to decode offer delivery event", logger.Err(err))
		_ = msg.Respond([]byte("0"))
		return
	}

	delivered := h.ws.NotifyClient(ev.ShoemakerID, constants.EventShoemakerOffer, ev.Payload)
	reply := "0"
	if delivered {
		reply = "1"
	}
	if err := msg.Respond([]byte(reply)); err != nil {
		logger.Warn("Failed to reply to offer delivery",
			logger.String("shoemaker_id", ev.ShoemakerID),
			logger.Err(err))
	}
}

func (h *WSRelayHandler) handleNotifyUser(message []byte) error {
	var ev models.UserNotifyEvent
	if err := json.Unmarshal(message, &ev); err != nil {
		return err
	}
	h.ws.NotifyClient(ev.UserID, ev.Event, ev.Data)
	return nil
}

func (h *WSRelayHandler) handleNotifyRoom(message []byte) error {
	var ev models.RoomNotifyEvent
	if err := json.Unmarshal(message, &ev); err != nil {
		return err
	}
	h.ws.NotifyRoom(ev.Room, ev.Event, ev.Data)
	return nil
}

func (h *WSRelayHandler) handleJoinRoom(message []byte) error {
	var ev models.RoomJoinEvent
	if err := json.Unmarshal(message, &ev); err != nil {
		return err
	}
	h.ws.JoinRoom(ev.UserID, ev.Room)
	return nil
}
