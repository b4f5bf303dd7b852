package models

import "time"

// Notification is a persisted in-app notification for a customer or shoemaker
type Notification struct {
	ID          string    `json:"id" db:"id"`
	CustomerID  *string   `json:"customer_id,omitempty" db:"customer_id"`
	ShoemakerID *string   `json:"shoemaker_id,omitempty" db:"shoemaker_id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Data        string    `json:"data" db:"data"` // JSON payload for the client
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
