package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/database"
	"github.com/takerapp/taker-go/internal/pkg/models"
)

// OfferStore keeps dispatch round state in Redis. Round keys expire on
// their own; CloseRound merely drops them early.
type OfferStore struct {
	redis *database.RedisClient
}

// NewOfferStore creates a new offer store
func NewOfferStore(redisClient *database.RedisClient) *OfferStore {
	return &OfferStore{redis: redisClient}
}

// OpenRound initializes the round hash with a pending status and puts
// a TTL on it so abandoned rounds clean themselves up.
func (s *OfferStore) OpenRound(ctx context.Context, tripID string, ttl time.Duration) error {
	key := s.roundKey(tripID)
	if err := s.redis.HSet(ctx, key, constants.FieldRoundStatus, constants.RoundStatusPending); err != nil {
		return fmt.Errorf("failed to open round: %w", err)
	}
	return s.redis.Expire(ctx, key, ttl)
}

// AddOffered records that a shoemaker received an offer this round
func (s *OfferStore) AddOffered(ctx context.Context, tripID, shoemakerID string) error {
	return s.redis.SAdd(ctx, s.offeredKey(tripID), shoemakerID)
}

// OfferedShoemakers lists every shoemaker offered this round
func (s *OfferStore) OfferedShoemakers(ctx context.Context, tripID string) ([]string, error) {
	return s.redis.SMembers(ctx, s.offeredKey(tripID))
}

// WasOffered reports whether the shoemaker received an offer this round
func (s *OfferStore) WasOffered(ctx context.Context, tripID, shoemakerID string) (bool, error) {
	return s.redis.SIsMember(ctx, s.offeredKey(tripID), shoemakerID)
}

// MarkInteracted records that the shoemaker responded to the offer
func (s *OfferStore) MarkInteracted(ctx context.Context, tripID, shoemakerID string) error {
	return s.redis.SAdd(ctx, s.interactedKey(tripID), shoemakerID)
}

// InteractedShoemakers lists every shoemaker that responded this round
func (s *OfferStore) InteractedShoemakers(ctx context.Context, tripID string) ([]string, error) {
	return s.redis.SMembers(ctx, s.interactedKey(tripID))
}

// TryClaimWinner atomically claims the round for the shoemaker.
// HSETNX guarantees exactly one claim succeeds per trip.
func (s *OfferStore) TryClaimWinner(ctx context.Context, tripID, shoemakerID string) (bool, error) {
	return s.redis.HSetNX(ctx, s.roundKey(tripID), constants.FieldRoundWinner, shoemakerID)
}

// Winner returns the winning shoemaker of the round, or empty when the
// round is still open.
func (s *OfferStore) Winner(ctx context.Context, tripID string) (string, error) {
	winner, err := s.redis.HGet(ctx, s.roundKey(tripID), constants.FieldRoundWinner)
	if err != nil {
		if database.IsNil(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read round winner: %w", err)
	}
	return winner, nil
}

// SetRoundStatus updates the round status field
func (s *OfferStore) SetRoundStatus(ctx context.Context, tripID, status string) error {
	return s.redis.HSet(ctx, s.roundKey(tripID), constants.FieldRoundStatus, status)
}

// SavePendingOffer stores the live offer payload for a shoemaker with
// the response window as TTL.
func (s *OfferStore) SavePendingOffer(ctx context.Context, shoemakerID string, payload *models.TripOfferPayload, ttl time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal pending offer: %w", err)
	}
	return s.redis.Set(ctx, s.pendingKey(shoemakerID), raw, ttl)
}

// PendingOffer returns the live offer of a shoemaker and its remaining
// TTL, or nil when none is pending.
func (s *OfferStore) PendingOffer(ctx context.Context, shoemakerID string) (*models.TripOfferPayload, time.Duration, error) {
	key := s.pendingKey(shoemakerID)
	raw, err := s.redis.Get(ctx, key)
	if err != nil {
		if database.IsNil(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to read pending offer: %w", err)
	}

	var payload models.TripOfferPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal pending offer: %w", err)
	}

	ttl, err := s.redis.TTL(ctx, key)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read pending offer ttl: %w", err)
	}
	return &payload, ttl, nil
}

// ClearPendingOffer removes the live offer of a shoemaker
func (s *OfferStore) ClearPendingOffer(ctx context.Context, shoemakerID string) error {
	return s.redis.Delete(ctx, s.pendingKey(shoemakerID))
}

// CloseRound drops the offered and interacted sets and the pending
// offers of every shoemaker in the round. The round hash stays behind
// until its TTL so late responses can still be classified.
func (s *OfferStore) CloseRound(ctx context.Context, tripID string, shoemakerIDs []string) error {
	keys := []string{s.offeredKey(tripID), s.interactedKey(tripID)}
	for _, id := range shoemakerIDs {
		keys = append(keys, s.pendingKey(id))
	}
	return s.redis.Delete(ctx, keys...)
}

func (s *OfferStore) roundKey(tripID string) string {
	return fmt.Sprintf(constants.KeyTripRound, tripID)
}

func (s *OfferStore) offeredKey(tripID string) string {
	return fmt.Sprintf(constants.KeyTripOffered, tripID)
}

func (s *OfferStore) interactedKey(tripID string) string {
	return fmt.Sprintf(constants.KeyTripInteracted, tripID)
}

func (s *OfferStore) pendingKey(shoemakerID string) string {
	return fmt.Sprintf(constants.KeyPendingOffer, shoemakerID)
}
