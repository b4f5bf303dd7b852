package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/dispatch"
)

// TripRepo implements the dispatcher's trip persistence on PostgreSQL
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, `
		SELECT id, order_id, customer_id, shoemaker_id, status, latitude, longitude,
		       address, address_note, total_price, income, fee, payment_method,
		       payment_status, schedule_time, job_id, rating, created_at, updated_at
		FROM trips WHERE id = $1`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// AcceptTrip assigns the winning shoemaker and engages them, guarded
// against a concurrent cancel. The trip and shoemaker updates share
// one transaction.
func (r *TripRepo) AcceptTrip(ctx context.Context, trip *models.Trip, shoemakerID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE trips SET status = $1, shoemaker_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`,
		models.TripStatusAccepted, shoemakerID, trip.ID, models.TripStatusSearching)
	if err != nil {
		return fmt.Errorf("failed to accept trip: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return dispatch.ErrTripUnavailable
	}

	column := "is_trip"
	if trip.IsScheduled() {
		column = "is_schedule"
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE shoemakers SET %s = TRUE, updated_at = NOW() WHERE id = $1`, column),
		shoemakerID); err != nil {
		return fmt.Errorf("failed to engage shoemaker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	trip.Status = models.TripStatusAccepted
	trip.ShoemakerID = &shoemakerID
	return nil
}

// UpdateJobID stores or clears the scheduler job bound to the trip
func (r *TripRepo) UpdateJobID(ctx context.Context, tripID string, jobID *string) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE trips SET job_id = $1, updated_at = NOW() WHERE id = $2`,
		jobID, tripID); err != nil {
		return fmt.Errorf("failed to update trip job id: %w", err)
	}
	return nil
}

// GetCustomer retrieves a customer by ID
func (r *TripRepo) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, `
		SELECT id, full_name, phone, avatar, fcm_token
		FROM customers WHERE id = $1`, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %s not found", customerID)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// AppendCancellation records a cancellation row. Shoemaker rows double
// as dispatch exclusions for the trip.
func (r *TripRepo) AppendCancellation(ctx context.Context, cancellation *models.TripCancellation) error {
	if cancellation.ID == "" {
		cancellation.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO trip_cancellations (id, trip_id, customer_id, shoemaker_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		cancellation.ID, cancellation.TripID, cancellation.CustomerID,
		cancellation.ShoemakerID, cancellation.Reason)
	if err != nil {
		return fmt.Errorf("failed to insert cancellation: %w", err)
	}
	return nil
}

// SaveNotification persists an in-app notification row
func (r *TripRepo) SaveNotification(ctx context.Context, notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, customer_id, shoemaker_id, title, content, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		notification.ID, notification.CustomerID, notification.ShoemakerID,
		notification.Title, notification.Content, notification.Data)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
