package model

import "time"

const (
	EntityName = "payment"
)

const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusRefunded = "refunded"
	StatusFailed   = "failed"
)

type Payment struct {
	ID        string    `json:"_id"`
	BookingID string    `json:"bookingId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Method    string    `json:"method,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
