package model

import (
	"time"

	"crewlink/shared/constant"
)

const (
	EntityName = "booking"
)

// Booking is the client's view of a booking as served by the backend. Field
// names follow the wire format; the client never writes most of them.
type Booking struct {
	ID              string    `json:"_id"`
	Status          string    `json:"status"`
	WorkflowStatus  string    `json:"workFlowStatus"`
	ClosureRequest  string    `json:"closureRequest,omitempty"`
	ContentTitle    string    `json:"contentTitle,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	EntityType      string    `json:"entityType"`
	EntityID        string    `json:"entityId"`
	StudioID        string    `json:"studioId,omitempty"`
	FreelancerID    string    `json:"freelancerId,omitempty"`
	CustomBookingID string    `json:"customBookingId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Completed reports whether the booking reached its terminal lifecycle state.
func (b Booking) Completed() bool {
	return b.Status == constant.BookingStatusCompleted
}

// InClosure reports whether the closure workflow phase is active.
func (b Booking) InClosure() bool {
	return b.WorkflowStatus == constant.WorkflowStatusClosure
}
