package models

import "time"

// Shoemaker represents a field worker who fulfils trips
type Shoemaker struct {
	ID         string    `json:"id" db:"id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Phone      string    `json:"phone" db:"phone"`
	Avatar     string    `json:"avatar" db:"avatar"`
	FCMToken   string    `json:"fcm_token" db:"fcm_token"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Cell       string    `json:"cell" db:"cell"`             // geohash cell of the last reported location
	IsOnline   bool      `json:"is_online" db:"is_online"`   // connected to the realtime channel
	IsOnDuty   bool      `json:"is_on_duty" db:"is_on_duty"` // accepting work
	IsTrip     bool      `json:"is_trip" db:"is_trip"`       // engaged on an immediate trip
	IsSchedule bool      `json:"is_schedule" db:"is_schedule"`
	RatingAvg  float64   `json:"rating_avg" db:"rating_avg"`
	RatingNum  int64     `json:"rating_num" db:"rating_num"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Customer represents a customer requesting trips
type Customer struct {
	ID       string `json:"id" db:"id"`
	FullName string `json:"full_name" db:"full_name"`
	Phone    string `json:"phone" db:"phone"`
	Avatar   string `json:"avatar" db:"avatar"`
	FCMToken string `json:"fcm_token" db:"fcm_token"`
}

// Candidate is a ranked shoemaker considered for a dispatch round
type Candidate struct {
	Shoemaker   *Shoemaker `json:"shoemaker"`
	DistanceKm  float64    `json:"distance_km"`
	TimeMinutes float64    `json:"time_minutes"`
}
