package dto

import (
	bookingModel "crewlink/internal/domains/booking/model"
	"crewlink/internal/domains/review/model"
)

// SubmitReviewRequest creates or updates the review for a booking. The
// cross-reference ids always come from the booking object itself, never from
// user input.
type SubmitReviewRequest struct {
	EntityType      string `json:"entityType"             validate:"required,oneof=studio freelancer"`
	EntityID        string `json:"entityId"               validate:"required"`
	StudioID        string `json:"studioId,omitempty"`
	FreelancerID    string `json:"freelancerId,omitempty"`
	CustomBookingID string `json:"customBookingId"        validate:"required"`
	Title           string `json:"title"                  validate:"required,trimmin=5,trimmax=100"`
	Review          string `json:"review"                 validate:"required,trimmin=20,trimmax=1000"`
	Rating          int    `json:"rating"                 validate:"required,min=1,max=5"`
}

// FromBooking copies the cross-reference ids from the booking being reviewed.
func (r *SubmitReviewRequest) FromBooking(booking bookingModel.Booking) {
	r.EntityType = booking.EntityType
	r.EntityID = booking.EntityID
	r.StudioID = booking.StudioID
	r.FreelancerID = booking.FreelancerID
	r.CustomBookingID = booking.CustomBookingID
}

// GetReviewResponse wraps the review payload; the review field is null when
// no review exists yet.
type GetReviewResponse struct {
	Review *model.Review `json:"review"`
}

type SubmitReviewResponse struct {
	Success bool `json:"success"`
}
