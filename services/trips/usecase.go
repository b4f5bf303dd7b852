package trips

import (
	"context"

	"github.com/takerapp/taker-go/internal/pkg/models"
)

// TripUC defines the trip lifecycle use cases
type TripUC interface {
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.CreateTripResponse, error)
	CancelTrip(ctx context.Context, req models.CancelTripRequest) error
	RateTrip(ctx context.Context, req models.RateTripRequest) error
	UpdateTripStatus(ctx context.Context, tripID, shoemakerID string, status models.TripStatus) error
	GetTripDetail(ctx context.Context, tripID, customerID string) (*models.TripDetail, error)
	GetPaymentStatus(ctx context.Context, tripID, customerID string) (models.PaymentStatus, error)
}
