package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/dispatch"
)

// ShoemakerRepo implements candidate lookups on PostgreSQL
type ShoemakerRepo struct {
	db *sqlx.DB
}

// NewShoemakerRepo creates a new shoemaker repository
func NewShoemakerRepo(db *sqlx.DB) *ShoemakerRepo {
	return &ShoemakerRepo{db: db}
}

// FindAvailableInCells returns shoemakers located in the given cells
// that are online, on duty, free for the trip's mode, not excluded by
// a cancellation of this trip and, for cash trips, above the balance
// floor. Most recently active first.
func (r *ShoemakerRepo) FindAvailableInCells(ctx context.Context, cells []string, q dispatch.CandidateQuery) ([]*models.Shoemaker, error) {
	engagement := "s.is_trip = FALSE"
	if q.Scheduled {
		engagement = "s.is_schedule = FALSE"
	}

	exclude := q.Exclude
	if exclude == nil {
		exclude = []string{}
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.full_name, s.phone, s.avatar, s.fcm_token,
		       s.latitude, s.longitude, s.cell, s.is_online, s.is_on_duty,
		       s.is_trip, s.is_schedule, s.rating_avg, s.rating_num, s.updated_at
		FROM shoemakers s
		WHERE s.cell = ANY($1)
		  AND s.is_online = TRUE
		  AND s.is_on_duty = TRUE
		  AND %s
		  AND s.id != ALL($2)
		  AND NOT EXISTS (
			SELECT 1 FROM trip_cancellations tc
			WHERE tc.trip_id = $3 AND tc.shoemaker_id = s.id
		  )
		  AND ($4::boolean = FALSE OR EXISTS (
			SELECT 1 FROM wallets w
			WHERE w.owner_id = s.id AND w.balance >= $5
		  ))
		ORDER BY s.updated_at DESC
		LIMIT $6`, engagement)

	var shoemakers []*models.Shoemaker
	err := r.db.SelectContext(ctx, &shoemakers, query,
		pq.Array(cells), pq.Array(exclude), q.TripID,
		q.RequireBalance, q.MinBalance, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidates: %w", err)
	}
	return shoemakers, nil
}

// HasScheduledTripBetween reports whether the shoemaker holds an
// accepted scheduled trip inside the given window.
func (r *ShoemakerRepo) HasScheduledTripBetween(ctx context.Context, shoemakerID string, fromMillis, toMillis int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM trips t
			WHERE t.shoemaker_id = $1
			  AND t.status = $2
			  AND t.schedule_time BETWEEN $3 AND $4
		)`, shoemakerID, models.TripStatusAccepted, fromMillis, toMillis)
	if err != nil {
		return false, fmt.Errorf("failed to check schedule conflicts: %w", err)
	}
	return exists, nil
}

// GetShoemaker retrieves a shoemaker by ID
func (r *ShoemakerRepo) GetShoemaker(ctx context.Context, shoemakerID string) (*models.Shoemaker, error) {
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
