package trips

import "errors"

// Sentinel errors shared between repository, usecase and handlers
var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrActiveTripExists    = errors.New("customer already has an active trip")
	ErrInsufficientBalance = errors.New("wallet balance is insufficient")
	ErrInvalidTransition   = errors.New("invalid trip status transition")
	ErrNotTripOwner        = errors.New("trip does not belong to this user")
	ErrAlreadyRated        = errors.New("trip has already been rated")
	ErrTripNotCompleted    = errors.New("trip is not completed")
	ErrTripStatusChanged   = errors.New("trip status changed concurrently")
	ErrOrderIDTaken        = errors.New("order id already exists")
)
