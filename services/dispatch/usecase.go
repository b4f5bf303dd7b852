package dispatch

import (
	"context"

	"github.com/takerapp/taker-go/internal/pkg/models"
)

// DispatchUC defines the dispatch round use cases
type DispatchUC interface {
	Dispatch(ctx context.Context, req models.TripRequestJob) error
	HandleAccept(ctx context.Context, tripID, shoemakerID string) error
	HandleDecline(ctx context.Context, tripID, shoemakerID string) error
	HandleReconnect(ctx context.Context, shoemakerID string) error
	SendReminder(ctx context.Context, tripID string) error
}
