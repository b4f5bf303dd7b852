package constants

// Redis key patterns for dispatch round state
const (
	// KeyTripOffered is the set of shoemaker IDs already offered a trip.
	// Format: trips:request:{tripID}
	KeyTripOffered = "trips:request:%s"

	// KeyTripRound is the hash holding round status and the winning
	// shoemaker. Format: trips:info:{tripID}
	KeyTripRound = "trips:info:%s"

	// KeyTripInteracted is the set of shoemaker IDs that responded to the
	// offer. Format: trips:interactive:%s
	KeyTripInteracted = "trips:interactive:%s"

	// KeyPendingOffer holds the live offer payload for a shoemaker, with a
	// TTL equal to the response window. Format: pending-trip:{shoemakerID}
	KeyPendingOffer = "pending-trip:%s"
)

// Fields of the KeyTripRound hash
const (
	FieldRoundStatus = "status"
	FieldRoundWinner = "shoemaker_id"
)

// Round status values stored in FieldRoundStatus
const (
	RoundStatusPending  = "pending"
	RoundStatusAccepted = "accepted"
	RoundStatusNotFound = "not-found"
	RoundStatusCanceled = "canceled"
)

// QueueDispatch is the queue shared by the trips service (producer)
// and the dispatch service (consumer).
const QueueDispatch = "dispatch"

// Scheduler key patterns
const (
	// KeyJob holds a serialized job. Format: scheduler:{queue}:job:{jobID}
	KeyJob = "scheduler:%s:job:%s"

	// KeyJobWaiting is the list of job IDs ready to run.
	// Format: scheduler:{queue}:waiting
	KeyJobWaiting = "scheduler:%s:waiting"

	// KeyJobDelayed is the sorted set of delayed job IDs scored by run
	// time. Format: scheduler:{queue}:delayed
	KeyJobDelayed = "scheduler:%s:delayed"

	// KeyJobDead is the set of job IDs that exhausted their attempts.
	// Format: scheduler:{queue}:dead
	KeyJobDead = "scheduler:%s:dead"
)
