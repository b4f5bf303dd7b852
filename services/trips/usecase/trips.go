package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/pkg/observability"
	"github.com/takerapp/taker-go/internal/pkg/scheduler"
	"github.com/takerapp/taker-go/internal/utils"
	"github.com/takerapp/taker-go/services/trips"
)

const orderIDAttempts = 3

// TripUC implements the trip lifecycle use cases
type TripUC struct {
	cfg        *models.Config
	tripRepo   trips.TripRepo
	walletRepo trips.WalletRepo
	gw         trips.TripGW
	jobs       trips.Jobs
	metrics    *observability.Metrics
}

// NewTripUC creates a new trip usecase
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	walletRepo trips.WalletRepo,
	gw trips.TripGW,
	jobs trips.Jobs,
	metrics *observability.Metrics,
) *TripUC {
	return &TripUC{
		cfg:        cfg,
		tripRepo:   tripRepo,
		walletRepo: walletRepo,
		gw:         gw,
		jobs:       jobs,
		metrics:    metrics,
	}
}

// CreateTrip validates the request, persists the trip (taking the
// wallet hold for wallet payments) and hands it to the dispatcher,
// immediately or at the scheduled time.
func (uc *TripUC) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.CreateTripResponse, error) {
	if req.CustomerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if req.TotalPrice <= 0 || req.Income < 0 || req.Income > req.TotalPrice {
		return nil, fmt.Errorf("invalid trip pricing")
	}
	if req.ScheduleTime > 0 && req.ScheduleTime <= time.Now().UnixMilli() {
		return nil, fmt.Errorf("schedule time must be in the future")
	}

	active, err := uc.tripRepo.HasActiveTrip(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active trips: %w", err)
	}
	if active {
		return nil, trips.ErrActiveTripExists
	}

	paymentStatus := models.PaymentStatusPending
	if req.PaymentMethod == models.PaymentMethodWallet {
		balance, err := uc.walletRepo.GetBalance(ctx, req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check wallet balance: %w", err)
		}
		if balance < req.TotalPrice {
			return nil, trips.ErrInsufficientBalance
		}
		paymentStatus = models.PaymentStatusPaid
	}

	trip := &models.Trip{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		Status:        models.TripStatusSearching,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		AddressNote:   req.AddressNote,
		TotalPrice:    req.TotalPrice,
		Income:        req.Income,
		Fee:           req.TotalPrice - req.Income,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: paymentStatus,
		ScheduleTime:  req.ScheduleTime,
	}

	// order references collide rarely; retry with a fresh one
	for attempt := 0; ; attempt++ {
		trip.OrderID = utils.GenerateOrderID()
		err = uc.tripRepo.CreateTrip(ctx, trip)
		if err == nil {
			break
		}
		if !errors.Is(err, trips.ErrOrderIDTaken) || attempt >= orderIDAttempts-1 {
			return nil, fmt.Errorf("failed to create trip: %w", err)
		}
	}

	if trip.IsScheduled() {
		if err := uc.scheduleDispatch(ctx, trip); err != nil {
			return nil, fmt.Errorf("failed to schedule dispatch: %w", err)
		}
	} else {
		jobID := fmt.Sprintf(constants.JobIDTripSearch, trip.ID)
		_, err := uc.jobs.Enqueue(ctx, constants.JobFindClosestShoemakers,
			models.TripRequestJob{TripID: trip.ID, CustomerID: trip.CustomerID},
			scheduler.WithJobID(jobID))
		if err != nil && !errors.Is(err, scheduler.ErrDuplicateJob) {
			return nil, fmt.Errorf("failed to queue dispatch: %w", err)
		}
		if err := uc.tripRepo.UpdateJobID(ctx, trip.ID, &jobID); err != nil {
			return nil, fmt.Errorf("failed to store job reference: %w", err)
		}
	}

	if err := uc.gw.PublishTripCreated(ctx, models.TripCreatedEvent{
		TripID:     trip.ID,
		CustomerID: trip.CustomerID,
		Scheduled:  trip.IsScheduled(),
	}); err != nil {
		logger.Warn("Failed to publish trip created event",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
	uc.gw.NotifyAdmins(constants.EventAdminTripCreated, trip)

	if uc.metrics != nil {
		uc.metrics.TripsCreated.WithLabelValues(string(req.PaymentMethod)).Inc()
	}

	logger.Info("Trip created",
		logger.String("trip_id", trip.ID),
		logger.String("order_id", trip.OrderID),
		logger.String("customer_id", trip.CustomerID),
		logger.Bool("scheduled", trip.IsScheduled()))

	return &models.CreateTripResponse{
		TripID:       trip.ID,
		OrderID:      trip.OrderID,
		Status:       trip.Status,
		PaymentState: trip.PaymentStatus,
	}, nil
}

// scheduleDispatch queues the delayed dispatch job for a scheduled
// trip. The deterministic job ID keeps a retried creation from
// duplicating it. The reminder job is armed later, once a shoemaker
// accepts.
func (uc *TripUC) scheduleDispatch(ctx context.Context, trip *models.Trip) error {
	delay := time.Until(time.UnixMilli(trip.ScheduleTime))

	jobID := fmt.Sprintf(constants.JobIDTripSearch, trip.ID)
	_, err := uc.jobs.Enqueue(ctx, constants.JobFindClosestShoemakers,
		models.TripRequestJob{TripID: trip.ID, CustomerID: trip.CustomerID},
		scheduler.WithJobID(jobID),
		scheduler.WithDelay(delay))
	if err != nil && !errors.Is(err, scheduler.ErrDuplicateJob) {
		return err
	}
	return uc.tripRepo.UpdateJobID(ctx, trip.ID, &jobID)
}

// CancelTrip cancels a searching or accepted trip on behalf of the
// customer, refunding wallet payments and releasing the shoemaker.
func (uc *TripUC) CancelTrip(ctx context.Context, req models.CancelTripRequest) error {
	trip, err := uc.tripRepo.GetTripForCustomer(ctx, req.TripID, req.CustomerID)
	if err != nil {
		return err
	}
	if !IsCancelable(trip.Status) {
		return trips.ErrInvalidTransition
	}

	if err := uc.tripRepo.CancelTrip(ctx, trip, req.Reason); err != nil {
		return fmt.Errorf("failed to cancel trip: %w", err)
	}

	// the dispatch and reminder jobs are no longer wanted
	if err := uc.jobs.Cancel(ctx, fmt.Sprintf(constants.JobIDTripSearch, trip.ID)); err != nil {
		logger.Warn("Failed to cancel dispatch job",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
	if trip.IsScheduled() {
		if err := uc.jobs.Cancel(ctx, fmt.Sprintf(constants.JobIDTripReminder, trip.ID)); err != nil {
			logger.Warn("Failed to cancel reminder job",
				logger.String("trip_id", trip.ID),
				logger.Err(err))
		}
	}

	ev := models.TripStatusEvent{
		TripID:     trip.ID,
		CustomerID: trip.CustomerID,
		Status:     models.TripStatusCustomerCancel,
	}
	if trip.ShoemakerID != nil {
		ev.ShoemakerID = *trip.ShoemakerID
		uc.notifyShoemakerCanceled(ctx, trip)
		uc.gw.LeaveTripRoom(*trip.ShoemakerID, trip.ID)
	}
	uc.gw.LeaveTripRoom(trip.CustomerID, trip.ID)

	if err := uc.gw.PublishTripStatus(ctx, ev); err != nil {
		logger.Warn("Failed to publish trip status event",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
	uc.gw.NotifyAdmins(constants.EventAdminTripStatus, ev)

	if uc.metrics != nil {
		uc.metrics.TripsCanceled.Inc()
	}

	logger.Info("Trip canceled by customer",
		logger.String("trip_id", trip.ID),
		logger.String("customer_id", trip.CustomerID))
	return nil
}

func (uc *TripUC) notifyShoemakerCanceled(ctx context.Context, trip *models.Trip) {
	uc.gw.NotifyUser(*trip.ShoemakerID, constants.EventShoemakerCanceled, map[string]interface{}{
		"trip_id":   trip.ID,
		"scheduled": trip.IsScheduled(),
	})

	shoemaker, err := uc.tripRepo.GetShoemaker(ctx, *trip.ShoemakerID)
	if err != nil {
		logger.Warn("Failed to load shoemaker for cancel push",
			logger.String("shoemaker_id", *trip.ShoemakerID),
			logger.Err(err))
		return
	}
	uc.gw.PushToToken(ctx, shoemaker.FCMToken, "Trip canceled",
		"The customer canceled the trip", map[string]string{"trip_id": trip.ID})
}

// UpdateTripStatus advances a trip through its post-accept lifecycle
// on behalf of the assigned shoemaker. Completion settles the
// shoemaker's income.
func (uc *TripUC) UpdateTripStatus(ctx context.Context, tripID, shoemakerID string, status models.TripStatus) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.ShoemakerID == nil || *trip.ShoemakerID != shoemakerID {
		return trips.ErrNotTripOwner
	}
	if !CanTransition(trip.Status, status) {
		return trips.ErrInvalidTransition
	}

	if status == models.TripStatusCompleted {
		err = uc.tripRepo.CompleteTrip(ctx, trip)
	} else {
		err = uc.tripRepo.UpdateTripStatus(ctx, tripID, trip.Status, status)
	}
	if err != nil {
		return err
	}

	ev := models.TripStatusEvent{
		TripID:      trip.ID,
		CustomerID:  trip.CustomerID,
		ShoemakerID: shoemakerID,
		Status:      status,
	}
	if err := uc.gw.PublishTripStatus(ctx, ev); err != nil {
		logger.Warn("Failed to publish trip status event",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
	uc.gw.NotifyTripRoom(trip.ID, constants.EventTripStatus, ev)
	uc.gw.NotifyAdmins(constants.EventAdminTripStatus, ev)

	if IsTerminal(status) {
		uc.gw.LeaveTripRoom(trip.CustomerID, trip.ID)
		uc.gw.LeaveTripRoom(shoemakerID, trip.ID)
	}

	logger.Info("Trip status updated",
		logger.String("trip_id", trip.ID),
		logger.String("status", string(status)))
	return nil
}

// RateTrip records a one-time rating for a completed trip and folds it
// into the shoemaker's running average.
func (uc *TripUC) RateTrip(ctx context.Context, req models.RateTripRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	trip, err := uc.tripRepo.GetTripForCustomer(ctx, req.TripID, req.CustomerID)
	if err != nil {
		return err
	}
	if trip.Status != models.TripStatusCompleted {
		return trips.ErrTripNotCompleted
	}
	if trip.Rating != nil {
		return trips.ErrAlreadyRated
	}

	if err := uc.tripRepo.RateTrip(ctx, trip, req.Rating, req.Comment); err != nil {
		return fmt.Errorf("failed to rate trip: %w", err)
	}

	logger.Info("Trip rated",
		logger.String("trip_id", trip.ID),
		logger.Int("rating", req.Rating))
	return nil
}

// GetTripDetail returns a trip with its assigned shoemaker, if any
func (uc *TripUC) GetTripDetail(ctx context.Context, tripID, customerID string) (*models.TripDetail, error) {
	trip, err := uc.tripRepo.GetTripForCustomer(ctx, tripID, customerID)
	if err != nil {
		return nil, err
	}

	detail := &models.TripDetail{Trip: trip}
	if trip.ShoemakerID != nil {
		shoemaker, err := uc.tripRepo.GetShoemaker(ctx, *trip.ShoemakerID)
		if err != nil {
			logger.Warn("Failed to load shoemaker for trip detail",
				logger.String("trip_id", tripID),
				logger.Err(err))
		} else {
			detail.Shoemaker = shoemaker
		}
	}
	return detail, nil
}

// GetPaymentStatus returns the settlement state of a trip payment
func (uc *TripUC) GetPaymentStatus(ctx context.Context, tripID, customerID string) (models.PaymentStatus, error) {
	trip, err := uc.tripRepo.GetTripForCustomer(ctx, tripID, customerID)
	if err != nil {
		return "", err
	}
	return trip.PaymentStatus, nil
}
