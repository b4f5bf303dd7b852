package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/trips"
)

func setupMockTx(t *testing.T) (*sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	return tx, mock
}

func walletRows(balance int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "balance", "updated_at"}).
		AddRow("w-1", "cust-1", balance, time.Now())
}

// withdrawals store the transaction amount as a magnitude; the type
// column carries the direction
func TestMoveWalletBalance_WithdrawStoresMagnitude(t *testing.T) {
	tx, mock := setupMockTx(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, balance, updated_at")).
		WithArgs("cust-1").
		WillReturnRows(walletRows(150000))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets SET balance")).
		WithArgs(int64(50000), "w-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "w-1", "trip-1", "T240101123456",
			int64(100000), models.TransactionTypeWithdraw,
			models.TransactionStatusSuccess, "Payment for order T240101123456").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_logs")).
		WithArgs(sqlmock.AnyArg(), "w-1", int64(150000), int64(50000),
			int64(-100000), "Payment for order T240101123456").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := moveWalletBalance(context.Background(), tx, walletMovement{
		OwnerID:     "cust-1",
		Amount:      -100000,
		Type:        models.TransactionTypeWithdraw,
		TripID:      "trip-1",
		OrderID:     "T240101123456",
		Description: "Payment for order T240101123456",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveWalletBalance_InsufficientBalance(t *testing.T) {
	tx, mock := setupMockTx(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, balance, updated_at")).
		WithArgs("cust-1").
		WillReturnRows(walletRows(50000))

	err := moveWalletBalance(context.Background(), tx, walletMovement{
		OwnerID: "cust-1",
		Amount:  -100000,
		Type:    models.TransactionTypeWithdraw,
	})
	assert.ErrorIs(t, err, trips.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveWalletBalance_DepositKeepsAmount(t *testing.T) {
	tx, mock := setupMockTx(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, balance, updated_at")).
		WithArgs("cust-1").
		WillReturnRows(walletRows(50000))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets SET balance")).
		WithArgs(int64(150000), "w-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), "w-1", "trip-1", "T240101123456",
			int64(100000), models.TransactionTypeDeposit,
			models.TransactionStatusSuccess, "Refund for order T240101123456").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_logs")).
		WithArgs(sqlmock.AnyArg(), "w-1", int64(50000), int64(150000),
			int64(100000), "Refund for order T240101123456").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := moveWalletBalance(context.Background(), tx, walletMovement{
		OwnerID:     "cust-1",
		Amount:      100000,
		Type:        models.TransactionTypeDeposit,
		TripID:      "trip-1",
		OrderID:     "T240101123456",
		Description: "Refund for order T240101123456",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
