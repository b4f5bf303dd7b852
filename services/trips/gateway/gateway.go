package gateway

import (
	"context"
	"fmt"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	natspkg "github.com/takerapp/taker-go/internal/pkg/nats"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/pkg/push"
	wspkg "github.com/takerapp/taker-go/internal/pkg/websocket"
)

// TripGW implements the outbound side effects of the trips service
type TripGW struct {
	producer *natspkg.Producer
	ws       *wspkg.Manager
	push     *push.Client
}

// NewTripGW creates a new trips gateway
func NewTripGW(producer *natspkg.Producer, ws *wspkg.Manager, pushClient *push.Client) *TripGW {
	return &TripGW{
		producer: producer,
		ws:       ws,
		push:     pushClient,
	}
}

// PublishTripCreated publishes a trip created event
func (g *TripGW) PublishTripCreated(_ context.Context, ev models.TripCreatedEvent) error {
	return g.producer.Publish(constants.SubjectTripCreated, ev)
}

// PublishTripStatus publishes a trip status transition event
func (g *TripGW) PublishTripStatus(_ context.Context, ev models.TripStatusEvent) error {
	return g.producer.Publish(constants.SubjectTripStatusChanged, ev)
}

// NotifyUser sends a realtime event to a connected user
func (g *TripGW) NotifyUser(userID, event string, data interface{}) {
	g.ws.NotifyClient(userID, event, data)
}

// NotifyTripRoom sends a realtime event to both parties of a trip
func (g *TripGW) NotifyTripRoom(tripID, event string, data interface{}) {
	g.ws.NotifyRoom(fmt.Sprintf(constants.RoomTrip, tripID), event, data)
}

// NotifyAdmins sends a realtime event to the admin room
func (g *TripGW) NotifyAdmins(event string, data interface{}) {
	g.ws.NotifyRoom(constants.RoomAdmins, event, data)
}

// LeaveTripRoom removes a user from a trip room
func (g *TripGW) LeaveTripRoom(userID, tripID string) {
	g.ws.LeaveRoom(userID, fmt.Sprintf(constants.RoomTrip, tripID))
}

// PushToToken delivers a best-effort push notification
func (g *TripGW) PushToToken(ctx context.Context, token, title, body string, data map[string]string) {
	g.push.Send(ctx, token, title, body, data)
}
