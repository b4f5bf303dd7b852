package dispatch

import (
	"context"
	"time"

	"github.com/takerapp/taker-go/internal/pkg/models"
)

// CandidateQuery carries the filters of a candidate search
type CandidateQuery struct {
	TripID         string   // cancellations for this trip are excluded
	Scheduled      bool     // selects the engagement flag to filter on
	Exclude        []string // shoemaker IDs already offered this round
	RequireBalance bool     // enforce a wallet balance floor (cash trips)
	MinBalance     int64
	Limit          int
}

// TripRepo defines the trip persistence operations of the dispatcher
type TripRepo interface {
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	AcceptTrip(ctx context.Context, trip *models.Trip, shoemakerID string) error
	UpdateJobID(ctx context.Context, tripID string, jobID *string) error
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
	AppendCancellation(ctx context.Context, cancellation *models.TripCancellation) error
	SaveNotification(ctx context.Context, notification *models.Notification) error
}

// ShoemakerRepo defines candidate lookup operations
type ShoemakerRepo interface {
	FindAvailableInCells(ctx context.Context, cells []string, q CandidateQuery) ([]*models.Shoemaker, error)
	HasScheduledTripBetween(ctx context.Context, shoemakerID string, fromMillis, toMillis int64) (bool, error)
	GetShoemaker(ctx context.Context, shoemakerID string) (*models.Shoemaker, error)
}

// OfferStore holds the transient state of a dispatch round. The winner
// claim is atomic: exactly one claim per trip succeeds, store-side.
type OfferStore interface {
	OpenRound(ctx context.Context, tripID string, ttl time.Duration) error
	AddOffered(ctx context.Context, tripID, shoemakerID string) error
	OfferedShoemakers(ctx context.Context, tripID string) ([]string, error)
	WasOffered(ctx context.Context, tripID, shoemakerID string) (bool, error)
	MarkInteracted(ctx context.Context, tripID, shoemakerID string) error
	InteractedShoemakers(ctx context.Context, tripID string) ([]string, error)
	TryClaimWinner(ctx context.Context, tripID, shoemakerID string) (bool, error)
	Winner(ctx context.Context, tripID string) (string, error)
	SetRoundStatus(ctx context.Context, tripID, status string) error
	SavePendingOffer(ctx context.Context, shoemakerID string, payload *models.TripOfferPayload, ttl time.Duration) error
	PendingOffer(ctx context.Context, shoemakerID string) (*models.TripOfferPayload, time.Duration, error)
	ClearPendingOffer(ctx context.Context, shoemakerID string) error
	CloseRound(ctx context.Context, tripID string, shoemakerIDs []string) error
}
