package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	natspkg "github.com/takerapp/taker-go/internal/pkg/nats"
	"github.com/takerapp/taker-go/internal/pkg/push"
)

// offerReplyTimeout bounds the wait for the websocket owner to confirm
// offer delivery before falling back to push.
const offerReplyTimeout = 2 * time.Second

// DispatchGW implements the outbound side effects of the dispatcher.
// Realtime traffic is relayed through NATS to the service owning the
// websocket connections; push notifications go out directly.
type DispatchGW struct {
	client   *natspkg.Client
	producer *natspkg.Producer
	push     *push.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(client *natspkg.Client, producer *natspkg.Producer, pushClient *push.Client) *DispatchGW {
	return &DispatchGW{
		client:   client,
		producer: producer,
		push:     pushClient,
	}
}

// OfferShoemaker delivers an offer over the realtime relay and reports
// whether the shoemaker was connected.
func (g *DispatchGW) OfferShoemaker(shoemakerID string, payload *models.TripOfferPayload) bool {
	data, err := json.Marshal(models.OfferDeliveryEvent{
		ShoemakerID: shoemakerID,
		Payload:     payload,
	})
	if err != nil {
		logger.Error("Failed to marshal offer delivery", logger.Err(err))
		return false
	}

	reply, err := g.client.Request(constants.SubjectWSOffer, data, offerReplyTimeout)
	if err != nil {
		logger.Warn("Offer delivery request failed",
			logger.String("shoemaker_id", shoemakerID),
			logger.Err(err))
		return false
	}
	return string(reply) == "1"
}

// PushOffer delivers the offer as a push notification for shoemakers
// without a live connection.
func (g *DispatchGW) PushOffer(ctx context.Context, token string, payload *models.TripOfferPayload) {
	g.push.Send(ctx, token, "New trip nearby",
		fmt.Sprintf("A trip at %s is waiting for you", payload.Address),
		map[string]string{"trip_id": payload.TripID, "type": "trip-offer"})
}

// NotifyUser relays a realtime event to a connected user
func (g *DispatchGW) NotifyUser(userID, event string, data interface{}) {
	if err := g.producer.Publish(constants.SubjectWSNotifyUser, models.UserNotifyEvent{
		UserID: userID,
		Event:  event,
		Data:   data,
	}); err != nil {
		logger.Warn("Failed to relay user notification",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// NotifyAdmins relays a realtime event to the admin room
func (g *DispatchGW) NotifyAdmins(event string, data interface{}) {
	if err := g.producer.Publish(constants.SubjectWSNotifyRoom, models.RoomNotifyEvent{
		Room:  constants.RoomAdmins,
		Event: event,
		Data:  data,
	}); err != nil {
		logger.Warn("Failed to relay admin notification",
			logger.String("event", event),
			logger.Err(err))
	}
}

// JoinTripRoom asks the websocket owner to add a user to a trip room
func (g *DispatchGW) JoinTripRoom(userID, tripID string) {
	if err := g.producer.Publish(constants.SubjectWSJoinRoom, models.RoomJoinEvent{
		UserID: userID,
		Room:   fmt.Sprintf(constants.RoomTrip, tripID),
	}); err != nil {
		logger.Warn("Failed to relay room join",
			logger.String("user_id", userID),
			logger.String("trip_id", tripID),
			logger.Err(err))
	}
}

// PublishTripStatus publishes a trip status transition event
func (g *DispatchGW) PublishTripStatus(_ context.Context, ev models.TripStatusEvent) error {
	return g.producer.Publish(constants.SubjectTripStatusChanged, ev)
}

// PushTo delivers a best-effort push notification
func (g *DispatchGW) PushTo(ctx context.Context, token, title, body string, data map[string]string) {
	g.push.Send(ctx, token, title, body, data)
}
