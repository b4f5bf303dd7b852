package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/utils"
	"github.com/takerapp/taker-go/services/trips"
)

// TripsHandler handles HTTP requests for trip operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{tripUC: tripUC}
}

// CreateTrip handles trip creation requests
func (h *TripsHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.CustomerID = userID(c)

	resp, err := h.tripUC.CreateTrip(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrActiveTripExists):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, trips.ErrInsufficientBalance):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to create trip",
				logger.String("customer_id", req.CustomerID),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to create trip")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", resp)
}

// CancelTrip handles customer trip cancellations
func (h *TripsHandler) CancelTrip(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var req models.CancelTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.TripID = tripID
	req.CustomerID = userID(c)

	if err := h.tripUC.CancelTrip(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, trips.ErrInvalidTransition), errors.Is(err, trips.ErrTripStatusChanged):
			return utils.ConflictResponse(c, "Trip can no longer be canceled")
		default:
			logger.Error("Failed to cancel trip",
				logger.String("trip_id", tripID),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to cancel trip")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip canceled successfully", nil)
}

// RateTrip handles trip rating submissions
func (h *TripsHandler) RateTrip(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var req models.RateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.TripID = tripID
	req.CustomerID = userID(c)

	if err := h.tripUC.RateTrip(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, trips.ErrTripNotCompleted), errors.Is(err, trips.ErrAlreadyRated):
			return utils.ConflictResponse(c, err.Error())
		default:
			logger.Error("Failed to rate trip",
				logger.String("trip_id", tripID),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to rate trip")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip rated successfully", nil)
}

// UpdateTripStatus advances a trip's lifecycle on behalf of the
// assigned shoemaker.
func (h *TripsHandler) UpdateTripStatus(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var req struct {
		Status models.TripStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	err := h.tripUC.UpdateTripStatus(c.Request().Context(), tripID, userID(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, trips.ErrNotTripOwner):
			return utils.ForbiddenResponse(c, err.Error())
		case errors.Is(err, trips.ErrInvalidTransition), errors.Is(err, trips.ErrTripStatusChanged):
			return utils.ConflictResponse(c, err.Error())
		default:
			logger.Error("Failed to update trip status",
				logger.String("trip_id", tripID),
				logger.String("status", string(req.Status)),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to update trip status")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated", nil)
}

// GetTripDetail returns a trip with its assigned shoemaker
func (h *TripsHandler) GetTripDetail(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	detail, err := h.tripUC.GetTripDetail(c.Request().Context(), tripID, userID(c))
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get trip detail",
			logger.String("trip_id", tripID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", detail)
}

// GetPaymentStatus returns the settlement state of a trip payment
func (h *TripsHandler) GetPaymentStatus(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	status, err := h.tripUC.GetPaymentStatus(c.Request().Context(), tripID, userID(c))
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get payment status",
			logger.String("trip_id", tripID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"trip_id":        tripID,
		"payment_status": status,
	})
}

func userID(c echo.Context) string {
	return fmt.Sprintf("%v", c.Get("user_id"))
}
