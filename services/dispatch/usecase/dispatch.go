package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/pkg/observability"
	"github.com/takerapp/taker-go/internal/pkg/scheduler"
	"github.com/takerapp/taker-go/services/dispatch"
)

type roundOutcome int

const (
	outcomeLost roundOutcome = iota
	outcomeAccepted
	outcomeCanceled
	outcomeInterrupted
)

// DispatchUC implements the dispatch round use cases
type DispatchUC struct {
	cfg           *models.Config
	tripRepo      dispatch.TripRepo
	shoemakerRepo dispatch.ShoemakerRepo
	offers        dispatch.OfferStore
	gw            dispatch.DispatchGW
	jobs          dispatch.Jobs
	metrics       *observability.Metrics

	pollEvery time.Duration
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(
	cfg *models.Config,
	tripRepo dispatch.TripRepo,
	shoemakerRepo dispatch.ShoemakerRepo,
	offers dispatch.OfferStore,
	gw dispatch.DispatchGW,
	jobs dispatch.Jobs,
	metrics *observability.Metrics,
) *DispatchUC {
	return &DispatchUC{
		cfg:           cfg,
		tripRepo:      tripRepo,
		shoemakerRepo: shoemakerRepo,
		offers:        offers,
		gw:            gw,
		jobs:          jobs,
		metrics:       metrics,
		pollEvery:     500 * time.Millisecond,
	}
}

// Dispatch runs one dispatch round for a trip: finds ranked
// candidates, fans offers out to them and waits for a winner until the
// round window closes.
func (u *DispatchUC) Dispatch(ctx context.Context, req models.TripRequestJob) error {
	trip, err := u.tripRepo.GetTrip(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, dispatch.ErrTripNotFound) {
			logger.Warn("Dispatch job for unknown trip", logger.String("trip_id", req.TripID))
			return nil
		}
		return err
	}
	if trip.Status != models.TripStatusSearching {
		logger.Info("Trip already resolved, skipping dispatch",
			logger.String("trip_id", trip.ID),
			logger.String("status", string(trip.Status)))
		return nil
	}
	if requiresPrepayment(trip.PaymentMethod) && trip.PaymentStatus != models.PaymentStatusPaid {
		logger.Warn("Trip payment not confirmed, skipping dispatch",
			logger.String("trip_id", trip.ID),
			logger.String("payment_status", string(trip.PaymentStatus)))
		u.gw.NotifyUser(trip.CustomerID, constants.EventCustomerNotFound, map[string]interface{}{
			"trip_id": trip.ID,
			"error":   "payment not confirmed",
		})
		return nil
	}

	start := time.Now()
	window := time.Duration(u.cfg.Dispatch.WaitWindowSeconds) * time.Second
	offerTTL := time.Duration(u.cfg.Dispatch.OfferTTLSeconds) * time.Second

	if err := u.offers.OpenRound(ctx, trip.ID, window+offerTTL); err != nil {
		return err
	}

	customer, err := u.tripRepo.GetCustomer(ctx, trip.CustomerID)
	if err != nil {
		return err
	}

	// offers from a previous retry round may still be live
	alreadyOffered, err := u.offers.OfferedShoemakers(ctx, trip.ID)
	if err != nil {
		return err
	}

	candidates, err := u.findCandidates(ctx, trip, alreadyOffered)
	if err != nil {
		return err
	}
	if len(candidates) == 0 && len(alreadyOffered) == 0 {
		logger.Info("No candidates available",
			logger.String("trip_id", trip.ID),
			logger.Bool("scheduled", trip.IsScheduled()))
		return u.resolveLostRound(ctx, trip, customer, false)
	}

	timers := make([]*time.Timer, 0, len(candidates))
	defer func() {
		for _, timer := range timers {
			timer.Stop()
		}
	}()
	for _, candidate := range candidates {
		if u.offerCandidate(ctx, trip, customer, candidate, offerTTL) {
			timers = append(timers, u.armOfferTimeout(trip.ID, candidate.Shoemaker.ID, offerTTL))
		}
	}

	logger.Info("Dispatch round opened",
		logger.String("trip_id", trip.ID),
		logger.Int("candidates", len(candidates)),
		logger.Int("carried_over", len(alreadyOffered)))

	switch u.waitForOutcome(ctx, trip, window) {
	case outcomeAccepted:
		u.countRound("accepted", start)
		return nil
	case outcomeCanceled:
		offered, _ := u.offers.OfferedShoemakers(ctx, trip.ID)
		if err := u.offers.CloseRound(ctx, trip.ID, offered); err != nil {
			logger.Warn("Failed to close canceled round",
				logger.String("trip_id", trip.ID),
				logger.Err(err))
		}
		u.countRound("canceled", start)
		return nil
	case outcomeInterrupted:
		// fail the job so it is retried after restart; the round state
		// stays in place and the next run carries the offers over
		logger.Info("Dispatch round interrupted by shutdown",
			logger.String("trip_id", trip.ID))
		u.countRound("interrupted", start)
		return ctx.Err()
	default:
		u.countRound("lost", start)
		return u.resolveLostRound(ctx, trip, customer, true)
	}
}

// offerCandidate records the offer and delivers it, falling back to a
// push notification when the shoemaker has no live connection. Returns
// whether the offer was recorded.
func (u *DispatchUC) offerCandidate(ctx context.Context, trip *models.Trip, customer *models.Customer, candidate *models.Candidate, offerTTL time.Duration) bool {
	shoemaker := candidate.Shoemaker
	payload := buildOfferPayload(trip, customer, candidate)

	if err := u.offers.AddOffered(ctx, trip.ID, shoemaker.ID); err != nil {
		logger.Error("Failed to record offer",
			logger.String("trip_id", trip.ID),
			logger.String("shoemaker_id", shoemaker.ID),
			logger.Err(err))
		return false
	}
	if err := u.offers.SavePendingOffer(ctx, shoemaker.ID, payload, offerTTL); err != nil {
		logger.Error("Failed to save pending offer",
			logger.String("trip_id", trip.ID),
			logger.String("shoemaker_id", shoemaker.ID),
			logger.Err(err))
		return false
	}

	if !u.gw.OfferShoemaker(shoemaker.ID, payload) {
		u.gw.PushOffer(ctx, shoemaker.FCMToken, payload)
	}
	if u.metrics != nil {
		u.metrics.OffersSent.Inc()
	}
	return true
}

// armOfferTimeout treats a shoemaker who never responded to an expired
// offer as having declined, so later rounds skip them. A round closed
// in the meantime clears the offered set and makes this a no-op.
func (u *DispatchUC) armOfferTimeout(tripID, shoemakerID string, offerTTL time.Duration) *time.Timer {
	return time.AfterFunc(offerTTL, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		offered, err := u.offers.WasOffered(ctx, tripID, shoemakerID)
		if err != nil || !offered {
			return
		}
		interacted, err := u.offers.InteractedShoemakers(ctx, tripID)
		if err != nil {
			return
		}
		for _, id := range interacted {
			if id == shoemakerID {
				return
			}
		}

		if err := u.offers.MarkInteracted(ctx, tripID, shoemakerID); err != nil {
			logger.Warn("Failed to mark expired offer",
				logger.String("trip_id", tripID),
				logger.String("shoemaker_id", shoemakerID),
				logger.Err(err))
		}
		if err := u.tripRepo.AppendCancellation(ctx, &models.TripCancellation{
			TripID:      tripID,
			ShoemakerID: &shoemakerID,
			Reason:      "offer expired",
		}); err != nil {
			logger.Warn("Failed to record expired offer",
				logger.String("trip_id", tripID),
				logger.String("shoemaker_id", shoemakerID),
				logger.Err(err))
		}
	})
}

// waitForOutcome polls the round until a winner appears, everyone
// declines, the customer cancels or the window closes.
func (u *DispatchUC) waitForOutcome(ctx context.Context, trip *models.Trip, window time.Duration) roundOutcome {
	deadline := time.NewTimer(window)
	defer deadline.Stop()
	ticker := time.NewTicker(u.pollEvery)
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			// worker shutdown, not a customer cancel
			return outcomeInterrupted
		case <-deadline.C:
			return outcomeLost
		case <-ticker.C:
			ticks++

			winner, err := u.offers.Winner(ctx, trip.ID)
			if err != nil {
				logger.Warn("Failed to poll round winner",
					logger.String("trip_id", trip.ID),
					logger.Err(err))
				continue
			}
			if winner != "" {
				return outcomeAccepted
			}

			// every offered shoemaker declined: no point waiting
			offered, err1 := u.offers.OfferedShoemakers(ctx, trip.ID)
			interacted, err2 := u.offers.InteractedShoemakers(ctx, trip.ID)
			if err1 == nil && err2 == nil && len(offered) > 0 && len(interacted) >= len(offered) {
				return outcomeLost
			}

			// cancellations land in the database, check occasionally
			if ticks%10 == 0 {
				current, err := u.tripRepo.GetTrip(ctx, trip.ID)
				if err != nil {
					continue
				}
				switch current.Status {
				case models.TripStatusCustomerCancel:
					return outcomeCanceled
				case models.TripStatusAccepted:
					return outcomeAccepted
				}
			}
		}
	}
}

// resolveLostRound handles a round without a winner. A scheduled trip
// that had candidates is retried shortly; everything else tells the
// customer nobody was found.
func (u *DispatchUC) resolveLostRound(ctx context.Context, trip *models.Trip, customer *models.Customer, hadCandidates bool) error {
	offered, _ := u.offers.OfferedShoemakers(ctx, trip.ID)
	if err := u.offers.CloseRound(ctx, trip.ID, offered); err != nil {
		logger.Warn("Failed to close round",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	if trip.IsScheduled() && hadCandidates {
		return u.requeueScheduled(ctx, trip)
	}

	if err := u.offers.SetRoundStatus(ctx, trip.ID, constants.RoundStatusNotFound); err != nil {
		logger.Warn("Failed to mark round not found",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	u.gw.NotifyUser(trip.CustomerID, constants.EventCustomerNotFound, map[string]interface{}{
		"trip_id": trip.ID,
	})
	u.gw.PushTo(ctx, customer.FCMToken, "No shoemaker found",
		"We could not find a shoemaker nearby, please try again later",
		map[string]string{"trip_id": trip.ID})
	if err := u.tripRepo.SaveNotification(ctx, &models.Notification{
		CustomerID: &trip.CustomerID,
		Title:      "No shoemaker found",
		Content:    fmt.Sprintf("We could not find a shoemaker for order %s", trip.OrderID),
		Data:       fmt.Sprintf(`{"trip_id":%q}`, trip.ID),
	}); err != nil {
		logger.Warn("Failed to save not-found notification",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	return u.tripRepo.UpdateJobID(ctx, trip.ID, nil)
}

// requeueScheduled puts the same logical dispatch job back on the
// queue a few seconds out, so a scheduled trip keeps searching until
// it is accepted or canceled.
func (u *DispatchUC) requeueScheduled(ctx context.Context, trip *models.Trip) error {
	jobID := fmt.Sprintf(constants.JobIDTripSearch, trip.ID)
	if err := u.jobs.Cancel(ctx, jobID); err != nil {
		logger.Warn("Failed to cancel dispatch job before requeue",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	delay := time.Duration(u.cfg.Dispatch.RetryDelaySeconds) * time.Second
	_, err := u.jobs.Enqueue(ctx, constants.JobFindClosestShoemakers,
		models.TripRequestJob{TripID: trip.ID, CustomerID: trip.CustomerID},
		scheduler.WithJobID(jobID),
		scheduler.WithDelay(delay))
	if err != nil && !errors.Is(err, scheduler.ErrDuplicateJob) {
		return fmt.Errorf("failed to requeue scheduled dispatch: %w", err)
	}

	logger.Info("Scheduled trip requeued for dispatch",
		logger.String("trip_id", trip.ID),
		logger.Duration("delay", delay))
	return nil
}

func requiresPrepayment(method models.PaymentMethod) bool {
	return method == models.PaymentMethodWallet || method == models.PaymentMethodCard
}

func (u *DispatchUC) countRound(outcome string, start time.Time) {
	if u.metrics == nil {
		return
	}
	u.metrics.DispatchRounds.WithLabelValues(outcome).Inc()
	u.metrics.DispatchDuration.Observe(time.Since(start).Seconds())
}
