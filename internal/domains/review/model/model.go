package model

import "time"

const (
	EntityName = "review"
)

// Review is the one-to-one review of a completed booking, keyed by booking id
// on the wire.
type Review struct {
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
