package models

import (
	"time"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusSearching      TripStatus = "SEARCHING"
	TripStatusAccepted       TripStatus = "ACCEPTED"
	TripStatusInProgress     TripStatus = "INPROGRESS"
	TripStatusMeeting        TripStatus = "MEETING"
	TripStatusCompleted      TripStatus = "COMPLETED"
	TripStatusCustomerCancel TripStatus = "CUSTOMER_CANCEL"
)

// PaymentMethod represents how the customer pays for a trip
type PaymentMethod string

const (
	PaymentMethodWallet  PaymentMethod = "DIGITAL_WALLET"
	PaymentMethodCard    PaymentMethod = "CREDIT_CARD"
	PaymentMethodOffline PaymentMethod = "OFFLINE_PAYMENT"
)

// PaymentStatus represents the settlement state of a trip payment
type PaymentStatus string

const (
	PaymentStatusPending      PaymentStatus = "PENDING"
	PaymentStatusPaid         PaymentStatus = "PAID"
	PaymentStatusRefunded     PaymentStatus = "REFUNDED"
	PaymentStatusRefundFailed PaymentStatus = "REFUND_FAILED"
)

// Trip represents a customer trip request and its lifecycle
type Trip struct {
	ID            string        `json:"id" db:"id"`
	OrderID       string        `json:"order_id" db:"order_id"`
	CustomerID    string        `json:"customer_id" db:"customer_id"`
	ShoemakerID   *string       `json:"shoemaker_id,omitempty" db:"shoemaker_id"`
	Status        TripStatus    `json:"status" db:"status"`
	Latitude      float64       `json:"latitude" db:"latitude"`
	Longitude     float64       `json:"longitude" db:"longitude"`
	Address       string        `json:"address" db:"address"`
	AddressNote   string        `json:"address_note" db:"address_note"`
	TotalPrice    int64         `json:"total_price" db:"total_price"`
	Income        int64         `json:"income" db:"income"`
	Fee           int64         `json:"fee" db:"fee"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	ScheduleTime  int64         `json:"schedule_time" db:"schedule_time"` // epoch millis, 0 for immediate trips
	JobID         *string       `json:"job_id,omitempty" db:"job_id"`
	Rating        *int          `json:"rating,omitempty" db:"rating"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// IsScheduled reports whether the trip was booked for a future time slot.
func (t *Trip) IsScheduled() bool {
	return t.ScheduleTime > 0
}

// TripCancellation records a cancellation of a trip by either party.
// A shoemaker row also acts as a dispatch exclusion for that trip.
type TripCancellation struct {
	ID          string    `json:"id" db:"id"`
	TripID      string    `json:"trip_id" db:"trip_id"`
	CustomerID  *string   `json:"customer_id,omitempty" db:"customer_id"`
	ShoemakerID *string   `json:"shoemaker_id,omitempty" db:"shoemaker_id"`
	Reason      string    `json:"reason" db:"reason"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateTripRequest is the payload to create a trip
type CreateTripRequest struct {
	CustomerID    string        `json:"customer_id"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	Address       string        `json:"address"`
	AddressNote   string        `json:"address_note"`
	TotalPrice    int64         `json:"total_price"`
	Income        int64         `json:"income"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ScheduleTime  int64         `json:"schedule_time"` // epoch millis, 0 for immediate
}

// CreateTripResponse is returned after a trip is created
type CreateTripResponse struct {
	TripID       string        `json:"trip_id"`
	OrderID      string        `json:"order_id"`
	Status       TripStatus    `json:"status"`
	PaymentState PaymentStatus `json:"payment_status"`
}

// CancelTripRequest is the payload to cancel a trip
type CancelTripRequest struct {
	TripID     string `json:"trip_id"`
	CustomerID string `json:"customer_id"`
	Reason     string `json:"reason"`
}

// RateTripRequest is the payload to rate a completed trip
type RateTripRequest struct {
	TripID     string `json:"trip_id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// TripDetail combines a trip with the assigned shoemaker, if any
type TripDetail struct {
	Trip      *Trip      `json:"trip"`
	Shoemaker *Shoemaker `json:"shoemaker,omitempty"`
}
