package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/trips"
)

// pgUniqueViolation is the postgres error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// TripRepo implements trip persistence on PostgreSQL
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{cfg: cfg, db: db}
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
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// GetTripForCustomer retrieves a trip owned by the given customer
func (r *TripRepo) GetTripForCustomer(ctx context.Context, tripID, customerID string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, `
		SELECT id, order_id, customer_id, shoemaker_id, status, latitude, longitude,
		       address, address_note, total_price, income, fee, payment_method,
		       payment_status, schedule_time, job_id, rating, created_at, updated_at
		FROM trips WHERE id = $1 AND customer_id = $2`, tripID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// HasActiveTrip reports whether the customer has a trip that is not
// yet finished.
func (r *TripRepo) HasActiveTrip(ctx context.Context, customerID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM trips
			WHERE customer_id = $1
			  AND status IN ($2, $3, $4, $5)
		)`, customerID,
		models.TripStatusSearching, models.TripStatusAccepted,
		models.TripStatusInProgress, models.TripStatusMeeting)
	if err != nil {
		return false, fmt.Errorf("failed to check active trips: %w", err)
	}
	return exists, nil
}

// CreateTrip inserts the trip and, for wallet payments, takes the
// wallet hold in the same transaction.
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO trips (
			id, order_id, customer_id, status, latitude, longitude, address,
			address_note, total_price, income, fee, payment_method,
			payment_status, schedule_time, created_at, updated_at
		) VALUES (
			:id, :order_id, :customer_id, :status, :latitude, :longitude, :address,
			:address_note, :total_price, :income, :fee, :payment_method,
			:payment_status, :schedule_time, NOW(), NOW()
		)`, trip)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return trips.ErrOrderIDTaken
		}
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	if trip.PaymentMethod == models.PaymentMethodWallet {
		if err := moveWalletBalance(ctx, tx, walletMovement{
			OwnerID:     trip.CustomerID,
			Amount:      -trip.TotalPrice,
			Type:        models.TransactionTypeWithdraw,
			TripID:      trip.ID,
			OrderID:     trip.OrderID,
			Description: fmt.Sprintf("Payment for order %s", trip.OrderID),
		}); err != nil {
			return err
		}
		if err := insertNotification(ctx, tx, &models.Notification{
			CustomerID: &trip.CustomerID,
			Title:      "Payment received",
			Content:    fmt.Sprintf("Your wallet was charged for order %s", trip.OrderID),
			Data:       fmt.Sprintf(`{"trip_id":%q}`, trip.ID),
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CancelTrip marks the trip canceled by its customer, records the
// cancellation, refunds wallet payments and releases the assigned
// shoemaker. All writes share one transaction.
func (r *TripRepo) CancelTrip(ctx context.Context, trip *models.Trip, reason string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// guard against a concurrent accept or double cancel; the bound
	// scheduler job is canceled by the caller, so drop the reference
	res, err := tx.ExecContext(ctx, `
		UPDATE trips SET status = $1, job_id = NULL, updated_at = NOW()
		WHERE id = $2 AND status = $3`,
		models.TripStatusCustomerCancel, trip.ID, trip.Status)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return trips.ErrTripStatusChanged
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trip_cancellations (id, trip_id, customer_id, reason, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		uuid.New().String(), trip.ID, trip.CustomerID, reason)
	if err != nil {
		return fmt.Errorf("failed to insert cancellation: %w", err)
	}

	if trip.ShoemakerID != nil {
		if err := releaseShoemaker(ctx, tx, *trip.ShoemakerID, trip.IsScheduled()); err != nil {
			return err
		}
	}

	if trip.PaymentMethod == models.PaymentMethodWallet && trip.PaymentStatus == models.PaymentStatusPaid {
		if err := moveWalletBalance(ctx, tx, walletMovement{
			OwnerID:     trip.CustomerID,
			Amount:      trip.TotalPrice,
			Type:        models.TransactionTypeDeposit,
			TripID:      trip.ID,
			OrderID:     trip.OrderID,
			Description: fmt.Sprintf("Refund for order %s", trip.OrderID),
		}); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE trips SET payment_status = $1, updated_at = NOW() WHERE id = $2`,
			models.PaymentStatusRefunded, trip.ID); err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}
		trip.PaymentStatus = models.PaymentStatusRefunded
	}

	if err := insertNotification(ctx, tx, &models.Notification{
		CustomerID: &trip.CustomerID,
		Title:      "Trip canceled",
		Content:    fmt.Sprintf("Your trip %s was canceled", trip.OrderID),
		Data:       fmt.Sprintf(`{"trip_id":%q}`, trip.ID),
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	trip.Status = models.TripStatusCustomerCancel
	return nil
}

// CompleteTrip finishes a meeting-stage trip, paying the shoemaker's
// income for wallet-paid trips and releasing their engagement flags.
func (r *TripRepo) CompleteTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ShoemakerID == nil {
		return fmt.Errorf("trip %s has no shoemaker assigned", trip.ID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE trips SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`,
		models.TripStatusCompleted, trip.ID, models.TripStatusMeeting)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return trips.ErrTripStatusChanged
	}

	if trip.PaymentMethod == models.PaymentMethodWallet {
		if err := moveWalletBalance(ctx, tx, walletMovement{
			OwnerID:     *trip.ShoemakerID,
			Amount:      trip.Income,
			Type:        models.TransactionTypeDeposit,
			TripID:      trip.ID,
			OrderID:     trip.OrderID,
			Description: fmt.Sprintf("Income for order %s", trip.OrderID),
		}); err != nil {
			return err
		}
	}

	if err := releaseShoemaker(ctx, tx, *trip.ShoemakerID, trip.IsScheduled()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	trip.Status = models.TripStatusCompleted
	return nil
}

// UpdateTripStatus performs a guarded status transition
func (r *TripRepo) UpdateTripStatus(ctx context.Context, tripID string, from, to models.TripStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE trips SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`, to, tripID, from)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return trips.ErrTripStatusChanged
	}
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

// RateTrip stores a one-time rating and folds it into the shoemaker's
// running average.
func (r *TripRepo) RateTrip(ctx context.Context, trip *models.Trip, rating int, comment string) error {
	if trip.ShoemakerID == nil {
		return fmt.Errorf("trip %s has no shoemaker assigned", trip.ID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE trips SET rating = $1, updated_at = NOW()
		WHERE id = $2 AND rating IS NULL`, rating, trip.ID)
	if err != nil {
		return fmt.Errorf("failed to store rating: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return trips.ErrAlreadyRated
	}

	if comment != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO trip_ratings (id, trip_id, customer_id, shoemaker_id, rating, comment, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
			uuid.New().String(), trip.ID, trip.CustomerID, *trip.ShoemakerID, rating, comment)
		if err != nil {
			return fmt.Errorf("failed to insert rating comment: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE shoemakers
		SET rating_avg = (rating_avg * rating_num + $1) / (rating_num + 1),
		    rating_num = rating_num + 1,
		    updated_at = NOW()
		WHERE id = $2`, rating, *trip.ShoemakerID)
	if err != nil {
		return fmt.Errorf("failed to update shoemaker rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetShoemaker retrieves a shoemaker by ID
func (r *TripRepo) GetShoemaker(ctx context.Context, shoemakerID string) (*models.Shoemaker, error) {
	var shoemaker models.Shoemaker
	err := r.db.GetContext(ctx, &shoemaker, `
		SELECT id, full_name, phone, avatar, fcm_token, latitude, longitude, cell,
		       is_online, is_on_duty, is_trip, is_schedule, rating_avg, rating_num, updated_at
		FROM shoemakers WHERE id = $1`, shoemakerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shoemaker %s not found", shoemakerID)
		}
		return nil, fmt.Errorf("failed to get shoemaker: %w", err)
	}
	return &shoemaker, nil
}

// releaseShoemaker clears the engagement flag matching the trip mode
func releaseShoemaker(ctx context.Context, tx *sqlx.Tx, shoemakerID string, scheduled bool) error {
	column := "is_trip"
	if scheduled {
		column = "is_schedule"
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE shoemakers SET %s = FALSE, updated_at = NOW() WHERE id = $1`, column),
		shoemakerID); err != nil {
		return fmt.Errorf("failed to release shoemaker: %w", err)
	}
	return nil
}

// insertNotification persists an in-app notification row
func insertNotification(ctx context.Context, tx *sqlx.Tx, n *models.Notification) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO notifications (id, customer_id, shoemaker_id, title, content, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		uuid.New().String(), n.CustomerID, n.ShoemakerID, n.Title, n.Content, n.Data)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
