package handler

import (
	"context"
	"fmt"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/pkg/observability"
	"github.com/takerapp/taker-go/internal/pkg/scheduler"
	"github.com/takerapp/taker-go/services/dispatch"
)

// RegisterJobHandlers binds the dispatch jobs to the queue
func RegisterJobHandlers(queue *scheduler.Queue, uc dispatch.DispatchUC, metrics *observability.Metrics) {
	queue.Handle(constants.JobFindClosestShoemakers, func(ctx context.Context, job *scheduler.Job) error {
		var req models.TripRequestJob
		if err := job.UnmarshalPayload(&req); err != nil {
			return fmt.Errorf("failed to decode dispatch job: %w", err)
		}
		err := uc.Dispatch(ctx, req)
		countJob(metrics, constants.JobFindClosestShoemakers, err)
		return err
	})

	queue.Handle(constants.JobTripReminder, func(ctx context.Context, job *scheduler.Job) error {
		var req models.TripReminderJob
		if err := job.UnmarshalPayload(&req); err != nil {
			return fmt.Errorf("failed to decode reminder job: %w", err)
		}
		err := uc.SendReminder(ctx, req.TripID)
		countJob(metrics, constants.JobTripReminder, err)
		return err
	})
}

func countJob(metrics *observability.Metrics, name string, err error) {
	if metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.JobsProcessed.WithLabelValues(name, result).Inc()
}
