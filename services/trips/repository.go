package trips

import (
	"context"

	"github.com/takerapp/taker-go/internal/pkg/models"
)

// TripRepo defines trip persistence operations. Multi-row operations
// (create with wallet hold, cancel with refund, complete with payout)
// run inside a single database transaction.
type TripRepo interface {
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetTripForCustomer(ctx context.Context, tripID, customerID string) (*models.Trip, error)
	HasActiveTrip(ctx context.Context, customerID string) (bool, error)
	CreateTrip(ctx context.Context, trip *models.Trip) error
	CancelTrip(ctx context.Context, trip *models.Trip, reason string) error
	CompleteTrip(ctx context.Context, trip *models.Trip) error
	UpdateTripStatus(ctx context.Context, tripID string, from, to models.TripStatus) error
	UpdateJobID(ctx context.Context, tripID string, jobID *string) error
	RateTrip(ctx context.Context, trip *models.Trip, rating int, comment string) error
	GetShoemaker(ctx context.Context, shoemakerID string) (*models.Shoemaker, error)
}

// WalletRepo defines wallet read operations. Balance movements happen
// inside TripRepo transactions.
type WalletRepo interface {
	GetBalance(ctx context.Context, ownerID string) (int64, error)
}
