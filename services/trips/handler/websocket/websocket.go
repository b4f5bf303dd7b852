package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/jwt"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	natspkg "github.com/takerapp/taker-go/internal/pkg/nats"
	wspkg "github.com/takerapp/taker-go/internal/pkg/websocket"
	"github.com/takerapp/taker-go/services/trips"
)

// WSHandler serves the realtime channel for customers, shoemakers and
// admins.
type WSHandler struct {
	manager  *wspkg.Manager
	producer *natspkg.Producer
	tripUC   trips.TripUC
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(manager *wspkg.Manager, producer *natspkg.Producer, tripUC trips.TripUC) *WSHandler {
	return &WSHandler{
		manager:  manager,
		producer: producer,
		tripUC:   tripUC,
	}
}

// HandleWebSocket upgrades the connection and runs the client loop
func (h *WSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

func (h *WSHandler) serveClient(client *wspkg.Client) error {
	logger.Info("Websocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	switch client.Role {
	case jwt.RoleAdmin:
		h.manager.JoinRoom(client.UserID, constants.RoomAdmins)
	case jwt.RoleShoemaker:
		// a reconnect may have a pending offer waiting for re-delivery
		if err := h.producer.Publish(constants.SubjectShoemakerReconnect,
			models.ShoemakerReconnectEvent{ShoemakerID: client.UserID}); err != nil {
			logger.Warn("Failed to publish shoemaker reconnect",
				logger.String("shoemaker_id", client.UserID),
				logger.Err(err))
		}
	}

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			logger.Info("Websocket client disconnected",
				logger.String("user_id", client.UserID))
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = h.manager.SendErrorMessage(client, "bad_message", "Invalid message format")
			continue
		}

		if err := h.handleMessage(client, msg); err != nil {
			_ = h.manager.SendErrorMessage(client, "operation_failed", err.Error())
		}
	}
}

func (h *WSHandler) handleMessage(client *wspkg.Client, msg models.WSMessage) error {
	switch msg.Event {
	case "subscribe-trip":
		return h.handleSubscribeTrip(client, msg.Data)
	case "accept-trip":
		return h.handleResponse(client, msg.Data, constants.SubjectShoemakerAccept)
	case "decline-trip":
		return h.handleResponse(client, msg.Data, constants.SubjectShoemakerDecline)
	default:
		return fmt.Errorf("unknown event: %s", msg.Event)
	}
}

// handleSubscribeTrip joins a customer to their trip room after an
// ownership check.
func (h *WSHandler) handleSubscribeTrip(client *wspkg.Client, data json.RawMessage) error {
	var req struct {
		TripID string `json:"trip_id"`
	}
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == "" {
		return fmt.Errorf("trip_id is required")
	}

	if client.Role == jwt.RoleCustomer {
		if _, err := h.tripUC.GetTripDetail(context.Background(), req.TripID, client.UserID); err != nil {
			return fmt.Errorf("trip not accessible")
		}
	}

	h.manager.JoinRoom(client.UserID, fmt.Sprintf(constants.RoomTrip, req.TripID))
	return nil
}

// handleResponse forwards a shoemaker's accept or decline to the
// dispatch service over NATS.
func (h *WSHandler) handleResponse(client *wspkg.Client, data json.RawMessage, subject string) error {
	if client.Role != jwt.RoleShoemaker {
		return fmt.Errorf("only shoemakers can respond to offers")
	}

	var req struct {
		TripID string `json:"trip_id"`
	}
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == "" {
		return fmt.Errorf("trip_id is required")
	}

	return h.producer.Publish(subject, models.ShoemakerResponseEvent{
		TripID:      req.TripID,
		ShoemakerID: client.UserID,
	})
}
