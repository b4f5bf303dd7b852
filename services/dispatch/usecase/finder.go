package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/utils"
	"github.com/takerapp/taker-go/services/dispatch"
)

// findCandidates looks up available shoemakers around the trip origin,
// drops schedule conflicts and ranks the rest by travel time.
func (u *DispatchUC) findCandidates(ctx context.Context, trip *models.Trip, exclude []string) ([]*models.Candidate, error) {
	origin := models.Location{Latitude: trip.Latitude, Longitude: trip.Longitude}
	cells := utils.Ring(utils.CellOf(origin, u.cfg.Dispatch.CellPrecision), u.cfg.Dispatch.RingK)

	query := dispatch.CandidateQuery{
		TripID:    trip.ID,
		Scheduled: trip.IsScheduled(),
		Exclude:   exclude,
		Limit:     u.cfg.Dispatch.CandidateLimit,
	}
	// cash trips guarantee the platform fee out of the shoemaker's wallet
	if trip.PaymentMethod == models.PaymentMethodOffline {
		query.RequireBalance = true
		query.MinBalance = u.cfg.Dispatch.BalanceFloor + trip.Fee
	}

	shoemakers, err := u.shoemakerRepo.FindAvailableInCells(ctx, cells, query)
	if err != nil {
		return nil, err
	}

	reference := time.Now().UnixMilli()
	if trip.IsScheduled() {
		reference = trip.ScheduleTime
	}
	window := int64(u.cfg.Dispatch.ConflictWindowMin) * int64(time.Minute/time.Millisecond)

	candidates := make([]*models.Candidate, 0, len(shoemakers))
	for _, shoemaker := range shoemakers {
		conflicted, err := u.shoemakerRepo.HasScheduledTripBetween(ctx, shoemaker.ID, reference-window, reference+window)
		if err != nil {
			logger.Warn("Failed to check schedule conflict, skipping candidate",
				logger.String("trip_id", trip.ID),
				logger.String("shoemaker_id", shoemaker.ID),
				logger.Err(err))
			continue
		}
		if conflicted {
			continue
		}

		from := models.Location{Latitude: shoemaker.Latitude, Longitude: shoemaker.Longitude}
		distanceKm, timeMinutes := utils.TravelEstimate(from, origin, u.cfg.Dispatch.AverageSpeedKmh)
		candidates = append(candidates, &models.Candidate{
			Shoemaker:   shoemaker,
			DistanceKm:  distanceKm,
			TimeMinutes: timeMinutes,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TimeMinutes != candidates[j].TimeMinutes {
			return candidates[i].TimeMinutes < candidates[j].TimeMinutes
		}
		return candidates[i].Shoemaker.ID < candidates[j].Shoemaker.ID
	})

	return candidates, nil
}

func buildOfferPayload(trip *models.Trip, customer *models.Customer, candidate *models.Candidate) *models.TripOfferPayload {
	return &models.TripOfferPayload{
		TripID:       trip.ID,
		OrderID:      trip.OrderID,
		CustomerName: customer.FullName,
		Avatar:       customer.Avatar,
		Address:      trip.Address,
		AddressNote:  trip.AddressNote,
		Latitude:     trip.Latitude,
		Longitude:    trip.Longitude,
		TotalPrice:   trip.TotalPrice,
		Income:       trip.Income,
		Payment:      string(trip.PaymentMethod),
		ScheduleTime: trip.ScheduleTime,
		DistanceKm:   candidate.DistanceKm,
		TimeMinutes:  candidate.TimeMinutes,
	}
}
