package models

import "time"

// TransactionType distinguishes wallet debits from credits
type TransactionType string

const (
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
)

// TransactionStatus represents the settlement state of a wallet transaction
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Wallet represents a stored-value balance owned by a customer or shoemaker
type Wallet struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Balance   int64     `json:"balance" db:"balance"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Transaction represents a single wallet movement tied to a trip
type Transaction struct {
	ID          string            `json:"id" db:"id"`
	WalletID    string            `json:"wallet_id" db:"wallet_id"`
	TripID      *string           `json:"trip_id,omitempty" db:"trip_id"`
	OrderID     string            `json:"order_id" db:"order_id"`
	Amount      int64             `json:"amount" db:"amount"`
	Type        TransactionType   `json:"type" db:"type"`
	Status      TransactionStatus `json:"status" db:"status"`
	Description string            `json:"description" db:"description"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// WalletLog is an audit row recording a balance change
type WalletLog struct {
	ID              string    `json:"id" db:"id"`
	WalletID        string    `json:"wallet_id" db:"wallet_id"`
	PreviousBalance int64     `json:"previous_balance" db:"previous_balance"`
	CurrentBalance  int64     `json:"current_balance" db:"current_balance"`
	Amount          int64     `json:"amount" db:"amount"`
	Description     string    `json:"description" db:"description"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
