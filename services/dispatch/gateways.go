package dispatch

import (
	"context"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/internal/pkg/scheduler"
)

// DispatchGW defines the outbound side effects of the dispatcher
type DispatchGW interface {
	// OfferShoemaker delivers an offer over the realtime channel and
	// reports whether the shoemaker was connected.
	OfferShoemaker(shoemakerID string, payload *models.TripOfferPayload) bool
	PushOffer(ctx context.Context, token string, payload *models.TripOfferPayload)
	NotifyUser(userID, event string, data interface{})
	NotifyAdmins(event string, data interface{})
	JoinTripRoom(userID, tripID string)
	PublishTripStatus(ctx context.Context, ev models.TripStatusEvent) error
	PushTo(ctx context.Context, token, title, body string, data map[string]string)
}

// Jobs defines the job queue operations the dispatcher relies on
type Jobs interface {
	Enqueue(ctx context.Context, name string, payload interface{}, opts ...scheduler.Option) (string, error)
	Get(ctx context.Context, id string) (*scheduler.Job, error)
	Cancel(ctx context.Context, id string) error
}
