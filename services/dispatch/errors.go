package dispatch

import "errors"

// Sentinel errors shared between repository and usecase
var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrTripUnavailable = errors.New("trip is no longer available")
)
