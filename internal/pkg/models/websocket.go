package models

import "encoding/json"

// WSMessage represents a websocket frame exchanged with clients
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error frame sent to clients
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TripOfferPayload is pushed to a shoemaker when a trip is offered to them
type TripOfferPayload struct {
	TripID       string  `json:"trip_id"`
	OrderID      string  `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	Avatar       string  `json:"avatar,omitempty"`
	Address      string  `json:"address"`
	AddressNote  string  `json:"address_note,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	TotalPrice   int64   `json:"total_price"`
	Income       int64   `json:"income"`
	Payment      string  `json:"payment_method"`
	ScheduleTime int64   `json:"schedule_time,omitempty"`
	DistanceKm   float64 `json:"distance_km"`
	TimeMinutes  float64 `json:"time_minutes"`
	RemainingSec int     `json:"remaining_sec,omitempty"` // set on re-delivery after reconnect
}

// TripMatchedPayload is pushed to a customer when a shoemaker accepts
type TripMatchedPayload struct {
	TripID      string  `json:"trip_id"`
	ShoemakerID string  `json:"shoemaker_id"`
	FullName    string  `json:"full_name"`
	Phone       string  `json:"phone"`
	Avatar      string  `json:"avatar,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	TimeMinutes float64 `json:"time_minutes"`
}
