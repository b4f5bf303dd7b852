package usecase

import (
	"github.com/takerapp/taker-go/internal/pkg/models"
)

// transitions is the trip state machine. Statuses absent from the map
// are terminal.
var transitions = map[models.TripStatus]map[models.TripStatus]bool{
	models.TripStatusSearching: {
		models.TripStatusAccepted:       true,
		models.TripStatusCustomerCancel: true,
	},
	models.TripStatusAccepted: {
		models.TripStatusInProgress:     true,
		models.TripStatusCustomerCancel: true,
	},
	models.TripStatusInProgress: {
		models.TripStatusMeeting: true,
	},
	models.TripStatusMeeting: {
		models.TripStatusCompleted: true,
	},
}

// CanTransition reports whether a trip may move from one status to
// another.
func CanTransition(from, to models.TripStatus) bool {
	return transitions[from][to]
}

// IsTerminal reports whether a status has no outgoing transitions
func IsTerminal(status models.TripStatus) bool {
	return len(transitions[status]) == 0
}

// IsCancelable reports whether a customer may still cancel the trip
func IsCancelable(status models.TripStatus) bool {
	return CanTransition(status, models.TripStatusCustomerCancel)
}
