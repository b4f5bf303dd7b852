package trips

import (
	"context"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/pkg/scheduler"
)

// TripGW defines the outbound side effects of the trips service:
// event publishing, realtime notifications and push delivery.
type TripGW interface {
	PublishTripCreated(ctx context.Context, ev models.TripCreatedEvent) error
	PublishTripStatus(ctx context.Context, ev models.TripStatusEvent) error
	NotifyUser(userID, event string, data interface{})
	NotifyTripRoom(tripID, event string, data interface{})
	NotifyAdmins(event string, data interface{})
	LeaveTripRoom(userID, tripID string)
	PushToToken(ctx context.Context, token, title, body string, data map[string]string)
}

// Jobs defines the durable job queue operations the service relies on.
// Implemented by the scheduler queue.
type Jobs interface {
	Enqueue(ctx context.Context, name string, payload interface{}, opts ...scheduler.Option) (string, error)
	Get(ctx context.Context, id string) (*scheduler.Job, error)
	Cancel(ctx context.Context, id string) error
}
