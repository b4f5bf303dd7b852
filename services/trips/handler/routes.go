package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/takerapp/taker-go/internal/pkg/jwt"
	"github.com/takerapp/taker-go/internal/pkg/middleware"
	"github.com/takerapp/taker-go/internal/pkg/models"
	natspkg "github.com/takerapp/taker-go/internal/pkg/nats"
	wspkg "github.com/takerapp/taker-go/internal/pkg/websocket"
	"github.com/takerapp/taker-go/services/trips"
	httpHandler "github.com/takerapp/taker-go/services/trips/handler/http"
	wsHandler "github.com/takerapp/taker-go/services/trips/handler/websocket"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	tripsWS   *wsHandler.WSHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	tripUC trips.TripUC,
	wsManager *wspkg.Manager,
	producer *natspkg.Producer,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		tripsWS:   wsHandler.NewWSHandler(wsManager, producer, tripUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	tripsGroup := e.Group("/trips", auth)
	tripsGroup.POST("", h.tripsHTTP.CreateTrip, middleware.RequireRole(jwt.RoleCustomer))
	tripsGroup.POST("/:tripID/cancel", h.tripsHTTP.CancelTrip, middleware.RequireRole(jwt.RoleCustomer))
	tripsGroup.POST("/:tripID/rate", h.tripsHTTP.RateTrip, middleware.RequireRole(jwt.RoleCustomer))
	tripsGroup.POST("/:tripID/status", h.tripsHTTP.UpdateTripStatus, middleware.RequireRole(jwt.RoleShoemaker))
	tripsGroup.GET("/:tripID", h.tripsHTTP.GetTripDetail)
	tripsGroup.GET("/:tripID/payment", h.tripsHTTP.GetPaymentStatus)

	// the websocket endpoint authenticates inside the upgrade handshake
	e.GET("/ws", h.tripsWS.HandleWebSocket)
}
