package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/pkg/scheduler"
	"github.com/takerapp/taker-go/services/dispatch"
)

// scheduleReminder arms the reminder job for an accepted scheduled
// trip, firing a reminder lead ahead of the time slot.
func (u *DispatchUC) scheduleReminder(ctx context.Context, trip *models.Trip) {
	lead := time.Duration(u.cfg.Dispatch.ReminderLeadMin) * time.Minute
	delay := time.Until(time.UnixMilli(trip.ScheduleTime)) - lead
	if delay < 0 {
		delay = 0
	}

	jobID := fmt.Sprintf(constants.JobIDTripReminder, trip.ID)
	_, err := u.jobs.Enqueue(ctx, constants.JobTripReminder,
		models.TripReminderJob{TripID: trip.ID},
		scheduler.WithJobID(jobID),
		scheduler.WithDelay(delay))
	if err != nil && !errors.Is(err, scheduler.ErrDuplicateJob) {
		logger.Error("Failed to queue trip reminder",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
}

// SendReminder notifies both parties of a scheduled trip shortly
// before its time slot.
func (u *DispatchUC) SendReminder(ctx context.Context, tripID string) error {
	trip, err := u.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, dispatch.ErrTripNotFound) {
			logger.Warn("Reminder job for unknown trip", logger.String("trip_id", tripID))
			return nil
		}
		return err
	}
	if trip.Status != models.TripStatusSearching && trip.Status != models.TripStatusAccepted {
		logger.Info("Trip no longer active, skipping reminder",
			logger.String("trip_id", trip.ID),
			logger.String("status", string(trip.Status)))
		return nil
	}

	scheduleAt := time.UnixMilli(trip.ScheduleTime).Format("15:04")
	content := fmt.Sprintf("Your order %s is scheduled for %s", trip.OrderID, scheduleAt)

	u.gw.NotifyUser(trip.CustomerID, constants.EventCustomerReminder, map[string]interface{}{
		"trip_id":       trip.ID,
		"schedule_time": trip.ScheduleTime,
	})
	if customer, err := u.tripRepo.GetCustomer(ctx, trip.CustomerID); err == nil {
		u.gw.PushTo(ctx, customer.FCMToken, "Upcoming trip", content,
			map[string]string{"trip_id": trip.ID})
	}
	if err := u.tripRepo.SaveNotification(ctx, &models.Notification{
		CustomerID: &trip.CustomerID,
		Title:      "Upcoming trip",
		Content:    content,
		Data:       fmt.Sprintf(`{"trip_id":%q}`, trip.ID),
	}); err != nil {
		logger.Warn("Failed to save customer reminder",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	if trip.ShoemakerID == nil {
		return nil
	}

	shoemakerID := *trip.ShoemakerID
	u.gw.NotifyUser(shoemakerID, constants.EventShoemakerReminder, map[string]interface{}{
		"trip_id":       trip.ID,
		"schedule_time": trip.ScheduleTime,
	})
	if shoemaker, err := u.shoemakerRepo.GetShoemaker(ctx, shoemakerID); err == nil {
		u.gw.PushTo(ctx, shoemaker.FCMToken, "Upcoming trip",
			fmt.Sprintf("Order %s is scheduled for %s", trip.OrderID, scheduleAt),
			map[string]string{"trip_id": trip.ID})
	}
	if err := u.tripRepo.SaveNotification(ctx, &models.Notification{
		ShoemakerID: trip.ShoemakerID,
		Title:       "Upcoming trip",
		Content:     fmt.Sprintf("Order %s is scheduled for %s", trip.OrderID, scheduleAt),
		Data:        fmt.Sprintf(`{"trip_id":%q}`, trip.ID),
	}); err != nil {
		logger.Warn("Failed to save shoemaker reminder",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	// both parties join the trip room so live location sharing starts
	// ahead of the appointment
	u.gw.JoinTripRoom(trip.CustomerID, trip.ID)
	u.gw.JoinTripRoom(shoemakerID, trip.ID)

	return nil
}
