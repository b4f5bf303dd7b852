package constants

// NATS subjects
const (
	SubjectTripCreated        = "trip.created"
	SubjectTripStatusChanged  = "trip.status_changed"
	SubjectShoemakerAccept    = "shoemaker.trip.accept"
	SubjectShoemakerDecline   = "shoemaker.trip.decline"
	SubjectShoemakerReconnect = "shoemaker.reconnected"
)

// Realtime relay subjects. The trips service owns the websocket
// connections, so the dispatch service publishes realtime traffic here
// and the trips service forwards it to the connected clients.
const (
	// SubjectWSOffer is a request-reply subject: the reply reports
	// whether the shoemaker had a live connection.
	SubjectWSOffer = "ws.offer"

	SubjectWSNotifyUser = "ws.user.notify"
	SubjectWSNotifyRoom = "ws.room.notify"
	SubjectWSJoinRoom   = "ws.room.join"
)

// NATS queue groups
const (
	QueueGroupDispatch = "dispatch-service"
)
