package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/utils"
	"github.com/takerapp/taker-go/services/dispatch"
)

// HandleAccept processes a shoemaker accepting an offer. Exactly one
// accept wins the round; everyone else learns the trip is taken.
func (u *DispatchUC) HandleAccept(ctx context.Context, tripID, shoemakerID string) error {
	offered, err := u.offers.WasOffered(ctx, tripID, shoemakerID)
	if err != nil {
		return err
	}
	if !offered {
		// round already closed or the offer expired
		u.gw.NotifyUser(shoemakerID, constants.EventShoemakerTripTaken, map[string]interface{}{
			"trip_id": tripID,
		})
		return nil
	}

	if err := u.offers.MarkInteracted(ctx, tripID, shoemakerID); err != nil {
		logger.Warn("Failed to mark interaction",
			logger.String("trip_id", tripID),
			logger.String("shoemaker_id", shoemakerID),
			logger.Err(err))
	}
	if err := u.offers.ClearPendingOffer(ctx, shoemakerID); err != nil {
		logger.Warn("Failed to clear pending offer",
			logger.String("shoemaker_id", shoemakerID),
			logger.Err(err))
	}

	trip, err := u.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status != models.TripStatusSearching {
		u.gw.NotifyUser(shoemakerID, constants.EventShoemakerTripTaken, map[string]interface{}{
			"trip_id": tripID,
		})
		return nil
	}

	won, err := u.offers.TryClaimWinner(ctx, tripID, shoemakerID)
	if err != nil {
		return err
	}
	if !won {
		u.gw.NotifyUser(shoemakerID, constants.EventShoemakerTripTaken, map[string]interface{}{
			"trip_id": tripID,
		})
		return nil
	}

	if err := u.tripRepo.AcceptTrip(ctx, trip, shoemakerID); err != nil {
		if errors.Is(err, dispatch.ErrTripUnavailable) {
			// the customer canceled between the claim and the write
			u.gw.NotifyUser(shoemakerID, constants.EventShoemakerCanceled, map[string]interface{}{
				"trip_id": tripID,
			})
			return nil
		}
		return err
	}

	if err := u.offers.SetRoundStatus(ctx, tripID, constants.RoundStatusAccepted); err != nil {
		logger.Warn("Failed to mark round accepted",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}
	offeredIDs, _ := u.offers.OfferedShoemakers(ctx, tripID)
	if err := u.offers.CloseRound(ctx, tripID, offeredIDs); err != nil {
		logger.Warn("Failed to close accepted round",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	u.notifyMatched(ctx, trip, shoemakerID)

	if trip.IsScheduled() {
		u.scheduleReminder(ctx, trip)
	} else {
		u.gw.JoinTripRoom(trip.CustomerID, trip.ID)
		u.gw.JoinTripRoom(shoemakerID, trip.ID)
	}

	if err := u.gw.PublishTripStatus(ctx, models.TripStatusEvent{
		TripID:      trip.ID,
		CustomerID:  trip.CustomerID,
		ShoemakerID: shoemakerID,
		Status:      models.TripStatusAccepted,
	}); err != nil {
		logger.Warn("Failed to publish trip status",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
	u.gw.NotifyAdmins(constants.EventAdminTripStatus, map[string]interface{}{
		"trip_id":      trip.ID,
		"shoemaker_id": shoemakerID,
		"status":       models.TripStatusAccepted,
	})

	if err := u.tripRepo.UpdateJobID(ctx, trip.ID, nil); err != nil {
		logger.Warn("Failed to clear trip job id",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	if u.metrics != nil {
		u.metrics.OffersAccepted.Inc()
	}

	logger.Info("Trip accepted",
		logger.String("trip_id", trip.ID),
		logger.String("shoemaker_id", shoemakerID))
	return nil
}

// notifyMatched tells the customer who is coming
func (u *DispatchUC) notifyMatched(ctx context.Context, trip *models.Trip, shoemakerID string) {
	shoemaker, err := u.shoemakerRepo.GetShoemaker(ctx, shoemakerID)
	if err != nil {
		logger.Error("Failed to load winning shoemaker",
			logger.String("trip_id", trip.ID),
			logger.String("shoemaker_id", shoemakerID),
			logger.Err(err))
		return
	}

	from := models.Location{Latitude: shoemaker.Latitude, Longitude: shoemaker.Longitude}
	to := models.Location{Latitude: trip.Latitude, Longitude: trip.Longitude}
	_, timeMinutes := utils.TravelEstimate(from, to, u.cfg.Dispatch.AverageSpeedKmh)

	u.gw.NotifyUser(trip.CustomerID, constants.EventCustomerMatched, &models.TripMatchedPayload{
		TripID:      trip.ID,
		ShoemakerID: shoemaker.ID,
		FullName:    shoemaker.FullName,
		Phone:       shoemaker.Phone,
		Avatar:      shoemaker.Avatar,
		Latitude:    shoemaker.Latitude,
		Longitude:   shoemaker.Longitude,
		TimeMinutes: timeMinutes,
	})

	customer, err := u.tripRepo.GetCustomer(ctx, trip.CustomerID)
	if err == nil {
		u.gw.PushTo(ctx, customer.FCMToken, "Shoemaker found",
			fmt.Sprintf("%s accepted your order %s", shoemaker.FullName, trip.OrderID),
			map[string]string{"trip_id": trip.ID})
	}

	if err := u.tripRepo.SaveNotification(ctx, &models.Notification{
		CustomerID: &trip.CustomerID,
		Title:      "Shoemaker found",
		Content:    fmt.Sprintf("%s accepted your order %s", shoemaker.FullName, trip.OrderID),
		Data:       fmt.Sprintf(`{"trip_id":%q,"shoemaker_id":%q}`, trip.ID, shoemaker.ID),
	}); err != nil {
		logger.Warn("Failed to save match notification",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
}

// HandleDecline processes a shoemaker declining an offer. The
// cancellation row keeps them out of later rounds for this trip.
func (u *DispatchUC) HandleDecline(ctx context.Context, tripID, shoemakerID string) error {
	if err := u.offers.MarkInteracted(ctx, tripID, shoemakerID); err != nil {
		return err
	}
	if err := u.offers.ClearPendingOffer(ctx, shoemakerID); err != nil {
		logger.Warn("Failed to clear pending offer",
			logger.String("shoemaker_id", shoemakerID),
			logger.Err(err))
	}

	if err := u.tripRepo.AppendCancellation(ctx, &models.TripCancellation{
		TripID:      tripID,
		ShoemakerID: &shoemakerID,
		Reason:      "declined offer",
	}); err != nil {
		return err
	}

	if u.metrics != nil {
		u.metrics.OffersDeclined.Inc()
	}

	logger.Info("Offer declined",
		logger.String("trip_id", tripID),
		logger.String("shoemaker_id", shoemakerID))
	return nil
}

// HandleReconnect re-delivers a still-live offer to a shoemaker whose
// connection came back mid round.
func (u *DispatchUC) HandleReconnect(ctx context.Context, shoemakerID string) error {
	payload, ttl, err := u.offers.PendingOffer(ctx, shoemakerID)
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}
	// not worth re-delivering an offer about to expire
	if ttl < 2*time.Second {
		return nil
	}

	payload.RemainingSec = int(ttl / time.Second)
	u.gw.OfferShoemaker(shoemakerID, payload)

	logger.Info("Pending offer re-delivered",
		logger.String("trip_id", payload.TripID),
		logger.String("shoemaker_id", shoemakerID),
		logger.Int("remaining_sec", payload.RemainingSec))
	return nil
}
