package models

// TripRequestJob is the payload of a dispatch round job
type TripRequestJob struct {
	TripID     string `json:"trip_id"`
	CustomerID string `json:"customer_id"`
}

// TripReminderJob is the payload of a schedule reminder job
type TripReminderJob struct {
	TripID string `json:"trip_id"`
}

// TripCreatedEvent is published when a trip enters dispatch
type TripCreatedEvent struct {
	TripID     string `json:"trip_id"`
	CustomerID string `json:"customer_id"`
	Scheduled  bool   `json:"scheduled"`
}

// ShoemakerResponseEvent is published when a shoemaker accepts or declines an offer
type ShoemakerResponseEvent struct {
	TripID      string `json:"trip_id"`
	ShoemakerID string `json:"shoemaker_id"`
}

// ShoemakerReconnectEvent is published when a shoemaker's realtime channel comes back
type ShoemakerReconnectEvent struct {
	ShoemakerID string `json:"shoemaker_id"`
}

// OfferDeliveryEvent asks the websocket owner to deliver an offer.
// The reply body is "1" when the shoemaker was connected, "0" otherwise.
type OfferDeliveryEvent struct {
	ShoemakerID string            `json:"shoemaker_id"`
	Payload     *TripOfferPayload `json:"payload"`
}

// UserNotifyEvent relays a realtime event to a single connected user
type UserNotifyEvent struct {
	UserID string      `json:"user_id"`
	Event  string      `json:"event"`
	Data   interface{} `json:"data"`
}

// RoomNotifyEvent relays a realtime event to every member of a room
type RoomNotifyEvent struct {
	Room  string      `json:"room"`
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// RoomJoinEvent asks the websocket owner to add a user to a room
type RoomJoinEvent struct {
	UserID string `json:"user_id"`
	Room   string `json:"room"`
}

// TripStatusEvent is published on every trip status transition
type TripStatusEvent struct {
	TripID      string     `json:"trip_id"`
	CustomerID  string     `json:"customer_id"`
	ShoemakerID string     `json:"shoemaker_id,omitempty"`
	Status      TripStatus `json:"status"`
}
