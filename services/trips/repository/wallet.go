package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/trips"
)

// WalletRepo implements wallet reads on PostgreSQL
type WalletRepo struct {
	db *sqlx.DB
}

// NewWalletRepo creates a new wallet repository
func NewWalletRepo(db *sqlx.DB) *WalletRepo {
	return &WalletRepo{db: db}
}

// GetBalance returns the current balance of an owner's wallet
func (r *WalletRepo) GetBalance(ctx context.Context, ownerID string) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance,
		`SELECT balance FROM wallets WHERE owner_id = $1`, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("wallet for owner %s not found", ownerID)
		}
		return 0, fmt.Errorf("failed to get wallet balance: %w", err)
	}
	return balance, nil
}

// walletMovement describes a single balance change
type walletMovement struct {
	OwnerID     string
	Amount      int64 // negative to withdraw
	Type        models.TransactionType
	TripID      string
	OrderID     string
	Description string
}

// moveWalletBalance applies a balance change under a row lock and
// writes the transaction and audit log rows. Withdrawals that would
// take the balance below zero fail with ErrInsufficientBalance.
func moveWalletBalance(ctx context.Context, tx *sqlx.Tx, mv walletMovement) error {
	var wallet models.Wallet
	err := tx.GetContext(ctx, &wallet, `
		SELECT id, owner_id, balance, updated_at
		FROM wallets WHERE owner_id = $1 FOR UPDATE`, mv.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("wallet for owner %s not found", mv.OwnerID)
		}
		return fmt.Errorf("failed to lock wallet: %w", err)
	}

	newBalance := wallet.Balance + mv.Amount
	if mv.Type == models.TransactionTypeWithdraw && newBalance < 0 {
		return trips.ErrInsufficientBalance
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE wallets SET balance = $1, updated_at = NOW() WHERE id = $2`,
		newBalance, wallet.ID); err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}

	// transaction rows store the magnitude; the type carries direction
	amount := mv.Amount
	if amount < 0 {
		amount = -amount
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (id, wallet_id, trip_id, order_id, amount, type, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		uuid.New().String(), wallet.ID, mv.TripID, mv.OrderID,
		amount, mv.Type, models.TransactionStatusSuccess, mv.Description); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO wallet_logs (id, wallet_id, previous_balance, current_balance, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		uuid.New().String(), wallet.ID, wallet.Balance, newBalance,
		mv.Amount, mv.Description); err != nil {
		return fmt.Errorf("failed to insert wallet log: %w", err)
	}

	return nil
}
