package constants

// Websocket events sent to shoemakers
const (
	EventShoemakerOffer     = "shoemaker-request-trip"
	EventShoemakerTripTaken = "trip-taken"
	EventShoemakerCanceled  = "customer-cancel"
	EventShoemakerReminder  = "trip-reminder"
)

// Websocket events sent to customers
const (
	EventCustomerMatched  = "find-closest-shoemakers"
	EventCustomerNotFound = "shoemaker-not-found"
	EventCustomerReminder = "trip-reminder"
	EventTripStatus       = "trip-status"
)

// Websocket events sent to the admin room
const (
	EventAdminTripCreated = "trip-create"
	EventAdminTripStatus  = "update-trip-status"
)

// Websocket rooms
const (
	RoomAdmins = "admins"

	// RoomTrip is the per-trip room joined by both parties of an active
	// trip. Format: trip:{tripID}
	RoomTrip = "trip:%s"
)

// Job names on the dispatch queue
const (
	JobFindClosestShoemakers = "find-closest-shoemakers"
	JobTripReminder          = "trip-send-notice"
)

// Job ID patterns. Deterministic IDs keep retries and cancellations
// addressed to the same logical job.
const (
	JobIDTripSearch   = "QUEUE-%s"
	JobIDTripReminder = "NOTICE-%s"
)
